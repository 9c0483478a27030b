package usecase_test

import (
	"context"
	"sync"
	"time"

	"item-store-api/internal/item"
	"item-store-api/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingLogger records how often Error level is hit.
type countingLogger struct {
	mockLogger
	errs int
}

func (m *countingLogger) Error(ctx context.Context, arg ...any)                   { m.errs++ }
func (m *countingLogger) Errorf(ctx context.Context, template string, arg ...any) { m.errs++ }

// mockRepo implements repository.Repository with overridable funcs.
type mockRepo struct {
	createFunc  func(opt repository.CreateItemOptions) (item.Item, error)
	getFunc     func(opt repository.GetOneItemOptions) (item.Item, error)
	listFunc    func(opt repository.ListItemsOptions) ([]item.Item, error)
	replaceFunc func(opt repository.ReplaceItemOptions) (item.Item, error)
	deleteFunc  func(opt repository.DeleteItemOptions) error

	calls int
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return opt.Item, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return item.Item{}, repository.ErrNotFound
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]item.Item, error) {
	m.calls++
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) ReplaceItem(ctx context.Context, opt repository.ReplaceItemOptions) (item.Item, error) {
	m.calls++
	if m.replaceFunc != nil {
		return m.replaceFunc(opt)
	}
	return opt.Item, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, opt repository.DeleteItemOptions) error {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

// stepClock returns a clock that advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := current
		current = current.Add(step)
		return t
	}
}

func strPtr(s string) *string { return &s }
