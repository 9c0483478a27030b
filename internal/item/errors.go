package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrStoreWrite       = errors.New("store rejected write")
	ErrConcurrentUpdate = errors.New("item was modified concurrently")
	ErrCategoryRequired = errors.New("category is required")
	ErrItemIDRequired   = errors.New("item id is required")
)

// StoreWriteError carries the document store's reason for rejecting a write.
// It matches ErrStoreWrite with errors.Is.
type StoreWriteError struct {
	Reason string
}

func (e *StoreWriteError) Error() string {
	return e.Reason
}

func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}
