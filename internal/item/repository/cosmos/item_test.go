package cosmos_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"item-store-api/internal/item"
	"item-store-api/internal/item/repository"
	itemCosmos "item-store-api/internal/item/repository/cosmos"
	"item-store-api/pkg/cosmos"
	"item-store-api/pkg/cosmos/cosmostest"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// countingLogger records how often each level is hit.
type countingLogger struct {
	mockLogger
	warns, errs int
}

func (m *countingLogger) Warnf(ctx context.Context, format string, args ...any)  { m.warns++ }
func (m *countingLogger) Errorf(ctx context.Context, format string, args ...any) { m.errs++ }

func newItem(id, category string) item.Item {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	desc := "a widget"
	return item.Item{
		ID:          id,
		Category:    category,
		Name:        "Widget",
		Description: &desc,
		Price:       9.99,
		Quantity:    5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCosmosRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateItem", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})

		created, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-1", "tools")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created.ID != "id-1" || created.Category != "tools" || created.Quantity != 5 {
			t.Errorf("unexpected item: %+v", created)
		}
		if created.Meta.ETag == "" || created.Meta.RID == "" {
			t.Errorf("expected store metadata, got %+v", created.Meta)
		}
		if !created.CreatedAt.Equal(created.UpdatedAt) {
			t.Errorf("timestamps should round-trip unchanged")
		}
	})

	t.Run("CreateItem Duplicate Rejected", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
		if _, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("dup", "tools")}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		_, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("dup", "tools")})
		var rejected *repository.WriteRejectedError
		if !errors.As(err, &rejected) {
			t.Fatalf("expected WriteRejectedError, got %v", err)
		}
		if rejected.Reason == "" {
			t.Errorf("expected the store reason to be kept")
		}
	})

	t.Run("CreateItem Rejection Logged As Warning", func(t *testing.T) {
		container := cosmostest.NewContainer()
		container.Fail = &cosmos.Error{StatusCode: http.StatusBadRequest, Message: "Request size is too large"}
		l := &countingLogger{}
		repo := itemCosmos.New(container, l)

		_, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-4", "tools")})
		var rejected *repository.WriteRejectedError
		if !errors.As(err, &rejected) {
			t.Fatalf("expected WriteRejectedError, got %v", err)
		}
		if l.warns != 1 || l.errs != 0 {
			t.Errorf("expected 1 warning and no errors, got warns=%d errs=%d", l.warns, l.errs)
		}
	})

	t.Run("CreateItem Without Echoed Content", func(t *testing.T) {
		container := cosmostest.NewContainer()
		container.OmitWriteContent = true
		repo := itemCosmos.New(container, &mockLogger{})

		created, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-2", "tools")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created.ID != "id-2" || created.Meta.ETag == "" {
			t.Errorf("unexpected item: %+v", created)
		}
	})

	t.Run("CreateItem Server Error", func(t *testing.T) {
		container := cosmostest.NewContainer()
		container.Fail = &cosmos.Error{StatusCode: http.StatusServiceUnavailable, Message: "unavailable"}
		repo := itemCosmos.New(container, &mockLogger{})

		_, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-3", "tools")})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})

	t.Run("GetOneItem", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
		created, _ := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-1", "tools")})

		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "id-1", Category: "tools"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != created.Name || *got.Description != *created.Description || got.Meta.ETag != created.Meta.ETag {
			t.Errorf("read %+v differs from created %+v", got, created)
		}

		_, err = repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "id-1", Category: "wrong"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound for wrong category, got %v", err)
		}

		_, err = repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "missing", Category: "tools"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown id, got %v", err)
		}
	})

	t.Run("ListItems", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
		repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("a", "tools")})
		repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("b", "tools")})
		repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("c", "garden")})

		items, err := repo.ListItems(ctx, repository.ListItemsOptions{Category: "tools"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
			t.Errorf("unexpected items: %+v", items)
		}

		empty, err := repo.ListItems(ctx, repository.ListItemsOptions{Category: "none"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if empty == nil || len(empty) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", empty)
		}
	})

	t.Run("ReplaceItem", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
		created, _ := repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-1", "tools")})

		changed := created
		changed.Name = "Widget2"
		changed.UpdatedAt = created.UpdatedAt.Add(time.Second)

		replaced, err := repo.ReplaceItem(ctx, repository.ReplaceItemOptions{Item: changed})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if replaced.Name != "Widget2" || replaced.Meta.ETag == created.Meta.ETag {
			t.Errorf("unexpected replaced item: %+v", replaced)
		}

		// Stale ETag from the first read must be refused.
		_, err = repo.ReplaceItem(ctx, repository.ReplaceItemOptions{Item: changed})
		if !errors.Is(err, repository.ErrVersionMismatch) {
			t.Errorf("expected ErrVersionMismatch, got %v", err)
		}

		missing := newItem("missing", "tools")
		_, err = repo.ReplaceItem(ctx, repository.ReplaceItemOptions{Item: missing})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ReplaceItem Keeps Unmodelled Fields", func(t *testing.T) {
		container := cosmostest.NewContainer()
		repo := itemCosmos.New(container, &mockLogger{})

		seed := `{"id":"x1","category":"tools","name":"Widget","description":null,"price":1.5,"quantity":2,` +
			`"created_at":"2024-05-01T10:00:00Z","updated_at":"2024-05-01T10:00:00Z","ttl":3600,"sku":"ABC"}`
		if _, err := container.CreateItem(ctx, "tools", []byte(seed)); err != nil {
			t.Fatalf("seed: %v", err)
		}

		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "x1", Category: "tools"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got.Name = "Widget2"
		if _, err := repo.ReplaceItem(ctx, repository.ReplaceItemOptions{Item: got}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		stored, err := container.ReadItem(ctx, "tools", "x1")
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(stored.Body, &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if doc["name"] != "Widget2" {
			t.Errorf("expected name to be updated, got %v", doc["name"])
		}
		if doc["ttl"] != float64(3600) || doc["sku"] != "ABC" {
			t.Errorf("expected ttl and sku to survive the replace, got %v", doc)
		}
	})

	t.Run("DeleteItem", func(t *testing.T) {
		repo := itemCosmos.New(cosmostest.NewContainer(), &mockLogger{})
		repo.CreateItem(ctx, repository.CreateItemOptions{Item: newItem("id-1", "tools")})

		err := repo.DeleteItem(ctx, repository.DeleteItemOptions{ID: "id-1", Category: "wrong"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound for wrong category, got %v", err)
		}

		if err := repo.DeleteItem(ctx, repository.DeleteItemOptions{ID: "id-1", Category: "tools"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		err = repo.DeleteItem(ctx, repository.DeleteItemOptions{ID: "id-1", Category: "tools"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		container := cosmostest.NewContainer()
		repo := itemCosmos.New(container, &mockLogger{})
		if err := repo.Ping(ctx); err != nil {
			t.Errorf("unexpected err: %v", err)
		}

		container.Fail = errors.New("connection refused")
		if err := repo.Ping(ctx); err == nil {
			t.Errorf("expected ping error")
		}
	})
}
