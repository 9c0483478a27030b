package http

import (
	"errors"

	"item-store-api/internal/item"
	pkgErrors "item-store-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as 500.
func (h *handler) mapError(err error) error {
	var writeErr *item.StoreWriteError
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewNotFoundError("Item not found")
	case errors.As(err, &writeErr):
		return pkgErrors.NewBadRequestError(writeErr.Reason)
	case errors.Is(err, item.ErrStoreWrite):
		return pkgErrors.NewBadRequestError(err.Error())
	case errors.Is(err, item.ErrConcurrentUpdate):
		return pkgErrors.NewConflictError("Item was modified by another request, retry the update")
	case errors.Is(err, item.ErrCategoryRequired),
		errors.Is(err, item.ErrItemIDRequired):
		return pkgErrors.NewUnprocessableEntityError(err.Error())
	default:
		return err
	}
}
