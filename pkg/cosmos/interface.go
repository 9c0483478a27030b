package cosmos

import "context"

// Container is the document-level contract of a single partitioned container.
// Every point operation needs the partition key value.
type Container interface {
	CreateItem(ctx context.Context, partitionKey string, body []byte) (Document, error)
	ReadItem(ctx context.Context, partitionKey, id string) (Document, error)
	// ReplaceItem fails with ErrPreconditionFailed when etag is set and no longer matches.
	ReplaceItem(ctx context.Context, partitionKey, id string, body []byte, etag string) (Document, error)
	DeleteItem(ctx context.Context, partitionKey, id string) error
	QueryItems(ctx context.Context, partitionKey, query string, params ...QueryParam) ([][]byte, error)
	Ping(ctx context.Context) error
}
