package dao

import (
	"context"
)

// Service stores records of type T keyed by K. Implementations keep
// insertion order for List and apply the supplied parameters as filters.
type Service[K comparable, T any] interface {
	// Save inserts or replaces the record; a replaced record keeps its position.
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
