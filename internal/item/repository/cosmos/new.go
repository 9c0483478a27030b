package cosmos

import (
	"fmt"

	"item-store-api/internal/item/repository"
	"item-store-api/pkg/cosmos"
	"item-store-api/pkg/log"
)

type implRepository struct {
	container cosmos.Container
	l         log.Logger
}

// New creates a new Cosmos DB-backed Repository for the item domain.
func New(container cosmos.Container, l log.Logger) repository.Repository {
	if container == nil {
		panic("item/repository/cosmos: container is required")
	}
	return &implRepository{container: container, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/cosmos.%s", method)
}
