// dyndb/mock_store.go
package dyndb

import "context"

// MockStore é um mock da interface Store[T] para testes de quem consome o pacote.
//
// Os campos de função (`GetFn`, `PutFn`, `ScanFn`) simulam o comportamento
// desejado do DynamoDB. Sem função definida, Get retorna ErrNotFound e
// Scan retorna uma lista vazia.
type MockStore[T any] struct {
	GetFn  func(ctx context.Context, hashKey any) (*T, error)
	PutFn  func(ctx context.Context, item T) error
	ScanFn func(ctx context.Context, opts ScanOptions) ([]T, error)
}

func (m *MockStore[T]) Get(ctx context.Context, hashKey any) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, hashKey)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Put(ctx context.Context, item T) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, item)
	}
	return nil
}

func (m *MockStore[T]) Scan(ctx context.Context, opts ...ScanOption) ([]T, error) {
	if m.ScanFn != nil {
		return m.ScanFn(ctx, ApplyScanOptions(opts...))
	}
	return []T{}, nil
}
