package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document does not exist
var ErrNotFound = errors.New("not found")

// CollectionRepository is the uniform CRUD contract over one document collection
type CollectionRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, filter map[string]interface{}) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
