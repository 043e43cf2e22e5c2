package handler

import (
	"context"
	"sync"

	"github.com/raywall/fast-items-service/dyndb"
	"github.com/raywall/fast-items-service/pkg/models"
)

// memStore é um store em memória para exercitar os handlers sem DynamoDB.
type memStore struct {
	mu    sync.Mutex
	items map[string]models.Item
	order []string
	puts  int

	// scans guarda as opções recebidas, para checar limite e projeção.
	scans []dyndb.ScanOptions
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]models.Item)}
}

func (s *memStore) Get(_ context.Context, hashKey any) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[hashKey.(string)]
	if !ok {
		return nil, dyndb.ErrNotFound
	}
	return &item, nil
}

func (s *memStore) Put(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	s.puts++
	return nil
}

func (s *memStore) Scan(_ context.Context, opts ...dyndb.ScanOption) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := dyndb.ApplyScanOptions(opts...)
	s.scans = append(s.scans, o)

	out := []models.Item{}
	for _, id := range s.order {
		if o.Limit > 0 && int32(len(out)) >= o.Limit {
			break
		}
		out = append(out, s.items[id])
	}
	return out, nil
}
