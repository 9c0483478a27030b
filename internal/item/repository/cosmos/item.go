package cosmos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"item-store-api/internal/item"
	repo "item-store-api/internal/item/repository"
	"item-store-api/pkg/cosmos"
)

const queryItemsByCategory = `SELECT * FROM c WHERE c.category = @category`

// CreateItem inserts a new document and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	doc := toDocument(opt.Item)
	doc.ETag = ""

	body, err := json.Marshal(doc)
	if err != nil {
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	stored, err := r.container.CreateItem(ctx, opt.Item.Category, body)
	if err != nil {
		var cErr *cosmos.Error
		if errors.As(err, &cErr) && cosmos.IsClientError(err) {
			r.l.Warnf(ctx, "%s: rejected: %v", r.dsn("CreateItem"), err)
			return item.Item{}, &repo.WriteRejectedError{Reason: cErr.Message}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	// The store may be configured not to echo content on writes.
	if len(stored.Body) == 0 {
		created := opt.Item
		created.Meta = item.StoreMeta{ETag: stored.ETag}
		return created, nil
	}

	created, err := decodeItem(stored.Body, stored.ETag)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("CreateItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToDecode, err)
	}
	return created, nil
}

// GetOneItem point-reads a single Item by id inside its category partition.
// Returns repo.ErrNotFound when there is no such document in that partition.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	stored, err := r.container.ReadItem(ctx, opt.Category, opt.ID)
	if errors.Is(err, cosmos.ErrNotFound) {
		return item.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}

	it, err := decodeItem(stored.Body, stored.ETag)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToDecode, err)
	}
	return it, nil
}

// ListItems returns every Item of a category, in store order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	bodies, err := r.container.QueryItems(ctx, opt.Category, queryItemsByCategory, cosmos.QueryParam{
		Name:  "@category",
		Value: opt.Category,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	items := make([]item.Item, 0, len(bodies))
	for _, body := range bodies {
		it, err := decodeItem(body, "")
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToDecode, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// ReplaceItem overwrites an existing document, guarded by the ETag in opt.Item.Meta.
func (r *implRepository) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (item.Item, error) {
	body, err := encodeItem(opt.Item)
	if err != nil {
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	stored, err := r.container.ReplaceItem(ctx, opt.Item.Category, opt.Item.ID, body, opt.Item.Meta.ETag)
	switch {
	case errors.Is(err, cosmos.ErrNotFound):
		return item.Item{}, repo.ErrNotFound
	case errors.Is(err, cosmos.ErrPreconditionFailed):
		return item.Item{}, repo.ErrVersionMismatch
	case err != nil:
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	if len(stored.Body) == 0 {
		replaced := opt.Item
		replaced.Meta = item.StoreMeta{ETag: stored.ETag, Extra: opt.Item.Meta.Extra}
		return replaced, nil
	}

	replaced, err := decodeItem(stored.Body, stored.ETag)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ReplaceItem"), err)
		return item.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToDecode, err)
	}
	return replaced, nil
}

// DeleteItem removes an Item by id inside its category partition.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	err := r.container.DeleteItem(ctx, opt.Category, opt.ID)
	if errors.Is(err, cosmos.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

// Ping checks the container is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.container.Ping(ctx)
}
