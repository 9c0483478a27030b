package usecase

import (
	"context"
	"errors"

	"item-store-api/internal/item"
	repo "item-store-api/internal/item/repository"
)

// Detail retrieves a single Item by id and category. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, input item.DetailItemInput) (item.DetailItemOutput, error) {
	if err := validateAddress(input.ID, input.Category); err != nil {
		return item.DetailItemOutput{}, err
	}

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID, Category: input.Category})
	if err != nil {
		return item.DetailItemOutput{}, uc.toDomainError(err)
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update overwrites the mutable fields of an existing Item. The Item is looked up in
// input.Category, so the category itself can never change. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	if err := validateAddress(input.ID, input.Category); err != nil {
		return item.UpdateItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID, Category: input.Category})
	if err != nil {
		return item.UpdateItemOutput{}, uc.toDomainError(err)
	}

	merged := existing
	merged.Name = input.Name
	merged.Description = input.Description
	merged.Price = input.Price
	merged.Quantity = input.Quantity
	merged.UpdatedAt = uc.timestamp(existing.UpdatedAt)

	it, err := uc.repo.ReplaceItem(ctx, repo.ReplaceItemOptions{Item: merged})
	if err != nil {
		if errors.Is(err, repo.ErrVersionMismatch) {
			uc.l.Warnf(ctx, "uc.Update: item %s changed since it was read", input.ID)
		}
		return item.UpdateItemOutput{}, uc.toDomainError(err)
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by id and category. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, input item.DeleteItemInput) error {
	if err := validateAddress(input.ID, input.Category); err != nil {
		return err
	}

	if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{ID: input.ID, Category: input.Category}); err != nil {
		return uc.toDomainError(err)
	}
	return nil
}

func validateAddress(id, category string) error {
	if id == "" {
		return item.ErrItemIDRequired
	}
	if category == "" {
		return item.ErrCategoryRequired
	}
	return nil
}
