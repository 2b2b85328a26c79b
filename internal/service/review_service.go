package service

import (
	"context"
	"fmt"
	"time"

	"gold-store/internal/domain"
	"gold-store/internal/repository"
)

// ReviewService defines the interface for the public review board. There
// is no edit and no delete; the board only grows.
type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Submit(ctx context.Context, user, text string, rating int) (*domain.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// List returns the reviews newest-first.
func (s *reviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Submit records a review at the head of the board with the fixed display
// date. Rating bounds are enforced at the transport layer.
func (s *reviewService) Submit(ctx context.Context, user, text string, rating int) (*domain.Review, error) {
	review := domain.Review{
		ID:     time.Now().UnixMilli(),
		User:   user,
		Text:   text,
		Rating: rating,
		Date:   domain.ReviewDateToday,
	}

	if err := s.reviewRepo.Prepend(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	}
	return &review, nil
}
