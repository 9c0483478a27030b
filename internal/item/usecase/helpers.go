package usecase

import (
	"errors"
	"time"

	"item-store-api/internal/item"
	repo "item-store-api/internal/item/repository"
)

// timestamp returns the current UTC time, never earlier than floor.
func (uc *implUseCase) timestamp(floor time.Time) time.Time {
	now := uc.now().UTC()
	if now.Before(floor) {
		return floor
	}
	return now
}

// toDomainError translates repository errors into item-domain errors.
// Unknown errors are returned unchanged.
func (uc *implUseCase) toDomainError(err error) error {
	var rejected *repo.WriteRejectedError
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return item.ErrItemNotFound
	case errors.Is(err, repo.ErrVersionMismatch):
		return item.ErrConcurrentUpdate
	case errors.As(err, &rejected):
		return &item.StoreWriteError{Reason: rejected.Reason}
	default:
		return err
	}
}
