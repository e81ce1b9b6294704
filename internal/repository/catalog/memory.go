package catalog

import (
	"context"
	"sort"
	"sync"

	"kaikari-xpress/internal/domain"
)

// memoryRepo serves the catalog without a database. Backs the sqlite and
// memory storage drivers, which have no Postgres pool to query.
type memoryRepo struct {
	mu       sync.RWMutex
	products map[int]domain.Product
}

func NewMemory(products []domain.Product) Repository {
	repo := &memoryRepo{products: make(map[int]domain.Product, len(products))}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(domain.Product) bool { return true }), nil
}

func (r *memoryRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(p domain.Product) bool { return p.Category == category }), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return &product, nil
}

func (r *memoryRepo) sorted(keep func(domain.Product) bool) []domain.Product {
	var products []domain.Product
	for _, p := range r.products {
		if keep(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
