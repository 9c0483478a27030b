package item

import (
	"encoding/json"
	"time"
)

// --- Item Domain Model ---

// Item is the core domain entity managed by this module.
// Category is also the partition key and never changes after creation.
type Item struct {
	ID          string
	Category    string
	Name        string
	Description *string
	Price       float64
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Meta is opaque store metadata echoed by the last read; replaces carry it forward.
	Meta StoreMeta
}

// StoreMeta holds the document store's system properties for one document.
type StoreMeta struct {
	ETag        string
	RID         string
	Self        string
	Attachments string
	Timestamp   int64

	// Extra holds stored fields the Item does not model (e.g. ttl, or fields written by other
	// clients). Replaces write them back unchanged.
	Extra map[string]json.RawMessage
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Category    string
	Description *string
	Price       float64
	Quantity    int
}

type DetailItemInput struct {
	ID       string
	Category string
}

type ListItemsInput struct {
	Category string
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Category    string
	Description *string
	Price       float64
	Quantity    int
}

type DeleteItemInput struct {
	ID       string
	Category string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type DetailItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type UpdateItemOutput struct {
	Item Item
}
