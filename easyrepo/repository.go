package easyrepo

import (
	"context"

	"github.com/raywall/fast-items-service/dyndb"
)

// EasyRepository manages direct communication with the DynamoDB driver (dyndb).
// Its methods are internal to the package, encouraging use through EasyService
type EasyRepository[T any] struct {
	Store      dyndb.Store[T]
	Projection []string
}

// NewRepository wraps an already configured store for type T
func NewRepository[T any](store dyndb.Store[T], projection ...string) *EasyRepository[T] {
	return &EasyRepository[T]{
		Store:      store,
		Projection: projection,
	}
}

// list performs a single bounded Scan on the table
func (r *EasyRepository[T]) list(ctx context.Context, limit int32) ([]T, error) {
	opts := []dyndb.ScanOption{dyndb.WithLimit(limit)}
	if len(r.Projection) > 0 {
		opts = append(opts, dyndb.WithProjection(r.Projection...))
	}
	return r.Store.Scan(ctx, opts...)
}

// create uses the PutItem operation to persist the struct in the database.
// An existing item with the same key is overwritten (last write wins).
func (r *EasyRepository[T]) create(ctx context.Context, item *T) error {
	return r.Store.Put(ctx, *item)
}

// get searches for a specific item by its hash key
func (r *EasyRepository[T]) get(ctx context.Context, pk any) (*T, error) {
	return r.Store.Get(ctx, pk)
}
