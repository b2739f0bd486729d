package store

import (
	"context"
	"sync"

	"catalog/internal/model"
)

// ProductStore is the in-memory ordered collection of products. A single
// mutex guards the sequence: the host runtime serves requests concurrently
// and unsynchronized slice mutation would lose updates or tear iteration.
type ProductStore struct {
	mu       sync.Mutex
	products []model.Product
}

// NewProductStore creates a store holding the given initial records.
// The slice is copied; callers keep no alias into the store.
func NewProductStore(initial []model.Product) *ProductStore {
	products := make([]model.Product, len(initial))
	copy(products, initial)

	return &ProductStore{products: products}
}

// SeedProducts returns the three records every fresh catalog starts with.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Laptop", Description: "High performance laptop", Price: 1200, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model smartphone", Price: 800, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Automatic drip coffee maker", Price: 90, Category: "kitchen", InStock: false},
	}
}

// ListProducts returns a copy of the sequence in insertion order.
func (s *ProductStore) ListProducts(_ context.Context) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// GetProduct linear-searches for the first record with the given ID.
func (s *ProductStore) GetProduct(_ context.Context, id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// AppendProduct appends the record to the end of the sequence. Append is the
// only insertion point, so insertion order is list order.
func (s *ProductStore) AppendProduct(_ context.Context, product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)
}

// ReplaceProduct overwrites the record with the given ID in place, keeping
// its position in the sequence. It reports whether the ID was found.
func (s *ProductStore) ReplaceProduct(_ context.Context, id string, product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products[i] = product
			return true
		}
	}
	return false
}

// DeleteProduct removes the record with the given ID, preserving the relative
// order of the rest. It reports whether the ID was found.
func (s *ProductStore) DeleteProduct(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
