package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Detail(ctx context.Context, input DetailItemInput) (DetailItemOutput, error)
	ListByCategory(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, input DeleteItemInput) error
}
