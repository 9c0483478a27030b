package repository

import (
	"context"

	"item-store-api/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
// Every point operation is addressed by id plus category (the partition key).
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, error)
	ReplaceItem(ctx context.Context, opt ReplaceItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, opt DeleteItemOptions) error
}
