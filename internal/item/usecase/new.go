package usecase

import (
	"time"

	"github.com/google/uuid"

	"item-store-api/internal/item/repository"
	"item-store-api/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	now   func() time.Time
	newID func() string
}

// Option customises the use case; tests use it to pin the clock and id generator.
type Option func(*implUseCase)

// WithClock overrides the time source used for created_at / updated_at.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator overrides the UUID generator used for new item ids.
func WithIDGenerator(newID func() string) Option {
	return func(uc *implUseCase) { uc.newID = newID }
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger, opts ...Option) *implUseCase {
	uc := &implUseCase{
		repo:  repo,
		l:     l,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
