package usecase

import (
	"context"

	"item-store-api/internal/item"
	repo "item-store-api/internal/item/repository"
)

// ListByCategory returns all Items of one category. No matches is an empty list, not an error.
func (uc *implUseCase) ListByCategory(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	if input.Category == "" {
		return item.ListItemsOutput{}, item.ErrCategoryRequired
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Category: input.Category})
	if err != nil {
		return item.ListItemsOutput{}, uc.toDomainError(err)
	}
	if items == nil {
		items = []item.Item{}
	}

	return item.ListItemsOutput{Items: items}, nil
}
