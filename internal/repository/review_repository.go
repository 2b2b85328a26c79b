package repository

import (
	"context"
	"fmt"
	"sync"

	"gold-store/internal/domain"
	"gold-store/internal/storage"
)

// ReviewRepository defines the interface for review board data access.
// Reviews accumulate across sessions; nothing ever deletes them.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Prepend(ctx context.Context, review domain.Review) error
}

type reviewRepository struct {
	mu      sync.Mutex
	store   *storage.Store
	reviews []domain.Review
}

// NewReviewRepository loads the persisted review list, starting empty when
// nothing usable is stored.
func NewReviewRepository(store *storage.Store) ReviewRepository {
	r := &reviewRepository{store: store}
	if !store.Load(keyReviews, &r.reviews) || r.reviews == nil {
		r.reviews = []domain.Review{}
	}
	return r
}

// List returns the reviews newest-first.
func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// Prepend puts the review at the head of the list, keeping the
// newest-first order, and rewrites the persisted list.
func (r *reviewRepository) Prepend(ctx context.Context, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews = append([]domain.Review{review}, r.reviews...)
	if err := r.store.Save(keyReviews, r.reviews); err != nil {
		return fmt.Errorf("failed to persist reviews: %w", err)
	}
	return nil
}
