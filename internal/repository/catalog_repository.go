package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gold-store/internal/domain"
	"gold-store/internal/storage"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Add(ctx context.Context, product domain.Product) error
	Remove(ctx context.Context, id int64) error
}

type catalogRepository struct {
	mu       sync.Mutex
	store    *storage.Store
	products []domain.Product
}

// NewCatalogRepository loads the persisted catalog, seeding the built-in
// product list when nothing usable is stored.
func NewCatalogRepository(store *storage.Store) CatalogRepository {
	r := &catalogRepository{store: store}
	if !store.Load(keyProducts, &r.products) || r.products == nil {
		r.products = domain.SeedCatalog()
	}
	return r
}

// List returns the current catalog, newest entries last.
func (r *catalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns the product with the given id.
func (r *catalogRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Add appends a product and rewrites the persisted catalog.
func (r *catalogRepository) Add(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, product)
	if err := r.store.Save(keyProducts, r.products); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// Remove filters the product out. Removing an id that is not present is a
// no-op, not an error.
func (r *catalogRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	r.products = filtered

	if err := r.store.Save(keyProducts, r.products); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}
