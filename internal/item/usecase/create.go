package usecase

import (
	"context"

	"item-store-api/internal/item"
	repo "item-store-api/internal/item/repository"
)

// Create assigns a new id and timestamps, then persists the Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if input.Category == "" {
		return item.CreateItemOutput{}, item.ErrCategoryRequired
	}

	now := uc.now().UTC()
	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Item: item.Item{
			ID:          uc.newID(),
			Category:    input.Category,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	})
	if err != nil {
		return item.CreateItemOutput{}, uc.toDomainError(err)
	}

	return item.CreateItemOutput{Item: it}, nil
}
