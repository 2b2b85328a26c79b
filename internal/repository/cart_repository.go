package repository

import (
	"context"
	"fmt"
	"sync"

	"gold-store/internal/domain"
	"gold-store/internal/storage"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, product domain.Product) error
	Remove(ctx context.Context, id int64) error
	UpdateQuantity(ctx context.Context, id int64, delta int) error
	Clear(ctx context.Context) error
}

type cartRepository struct {
	mu    sync.Mutex
	store *storage.Store
	items []domain.CartItem
}

// NewCartRepository loads the persisted cart, starting empty when nothing
// usable is stored.
func NewCartRepository(store *storage.Store) CartRepository {
	r := &cartRepository{store: store}
	if !store.Load(keyCart, &r.items) || r.items == nil {
		r.items = []domain.CartItem{}
	}
	return r
}

// Items returns the current cart lines.
func (r *cartRepository) Items(ctx context.Context) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.CartItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Add increments the existing line for the product, or appends a new line
// with quantity 1. At most one line exists per product id.
func (r *cartRepository) Add(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.items {
		if r.items[i].ID == product.ID {
			r.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		r.items = append(r.items, domain.CartItem{Product: product, Quantity: 1})
	}

	return r.persist()
}

// Remove deletes the whole line regardless of quantity. Removing an id that
// is not in the cart is a no-op.
func (r *cartRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := r.items[:0]
	for _, item := range r.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	r.items = filtered

	return r.persist()
}

// UpdateQuantity adjusts the line quantity by delta, flooring at 1. The
// quantity never drops below 1 through this operation; removal is explicit.
func (r *cartRepository) UpdateQuantity(ctx context.Context, id int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			q := r.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			r.items[i].Quantity = q
			break
		}
	}

	return r.persist()
}

// Clear empties the cart.
func (r *cartRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = []domain.CartItem{}
	return r.persist()
}

func (r *cartRepository) persist() error {
	if err := r.store.Save(keyCart, r.items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
