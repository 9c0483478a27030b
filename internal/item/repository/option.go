package repository

import "item-store-api/internal/item"

// CreateItemOptions holds the fully assembled Item to insert.
type CreateItemOptions struct {
	Item item.Item
}

// GetOneItemOptions addresses a single Item by id within its category partition.
type GetOneItemOptions struct {
	ID       string
	Category string
}

// ListItemsOptions holds filter parameters for listing Items.
type ListItemsOptions struct {
	Category string
}

// ReplaceItemOptions holds the merged Item to write back.
// Item.Meta.ETag, when set, guards the write against concurrent modification.
type ReplaceItemOptions struct {
	Item item.Item
}

// DeleteItemOptions addresses the Item to delete.
type DeleteItemOptions struct {
	ID       string
	Category string
}
