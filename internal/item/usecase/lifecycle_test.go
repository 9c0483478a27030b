package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"item-store-api/internal/item"
	itemCosmos "item-store-api/internal/item/repository/cosmos"
	"item-store-api/internal/item/usecase"
	"item-store-api/pkg/cosmos/cosmostest"
)

// TestItemLifecycle walks create → read → list → update → delete against the in-memory container.
func TestItemLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
	clock := stepClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), time.Second)
	uc := usecase.New(repo, &mockLogger{}, usecase.WithClock(clock))

	created, err := uc.Create(ctx, item.CreateItemInput{Name: "Widget", Category: "tools", Price: 9.99, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, created.Item.CreatedAt, created.Item.UpdatedAt)

	read, err := uc.Detail(ctx, item.DetailItemInput{ID: created.Item.ID, Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, created.Item, read.Item)

	_, err = uc.Detail(ctx, item.DetailItemInput{ID: created.Item.ID, Category: "wrong"})
	assert.ErrorIs(t, err, item.ErrItemNotFound)

	listed, err := uc.ListByCategory(ctx, item.ListItemsInput{Category: "tools"})
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, created.Item.ID, listed.Items[0].ID)

	updated, err := uc.Update(ctx, item.UpdateItemInput{
		ID: created.Item.ID, Category: "tools", Name: "Widget2", Price: 12.5, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget2", updated.Item.Name)
	assert.Equal(t, created.Item.CreatedAt, updated.Item.CreatedAt)
	assert.True(t, updated.Item.UpdatedAt.After(created.Item.UpdatedAt))

	require.NoError(t, uc.Delete(ctx, item.DeleteItemInput{ID: created.Item.ID, Category: "tools"}))

	_, err = uc.Detail(ctx, item.DetailItemInput{ID: created.Item.ID, Category: "tools"})
	assert.ErrorIs(t, err, item.ErrItemNotFound)

	listed, err = uc.ListByCategory(ctx, item.ListItemsInput{Category: "tools"})
	require.NoError(t, err)
	assert.Empty(t, listed.Items)
}
