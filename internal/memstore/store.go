// Package memstore is an in-process Products collection for local runs and tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ariefcatur/inventory-api/internal/catalog"
)

type Store struct {
	mu sync.RWMutex
	m  map[string]catalog.Product
}

func New(products ...catalog.Product) *Store {
	s := &Store{m: make(map[string]catalog.Product, len(products))}
	for _, p := range products {
		s.m[p.ID] = p.Clone()
	}
	return s
}

func (s *Store) FindByID(_ context.Context, id string) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p.Clone(), nil
}

// ListAll returns every product ordered by id.
func (s *Store) ListAll(_ context.Context) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
