package repository

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionMismatch = errors.New("record version mismatch")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToDecode  = errors.New("failed to decode record")
)

// WriteRejectedError is returned when the store refuses a write for a client-side reason
// (duplicate id, throughput limits, malformed partition key).
type WriteRejectedError struct {
	Reason string
}

func (e *WriteRejectedError) Error() string {
	return e.Reason
}
