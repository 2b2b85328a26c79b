package service

import (
	"context"
	"fmt"

	"gold-store/internal/domain"
	"gold-store/internal/repository"
)

// CartSummary is everything the cart surface shows: the lines, the
// subtotal, the applied promo state and the bonus progress meter.
type CartSummary struct {
	Items           []domain.CartItem `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	PromoCode       string            `json:"promo_code,omitempty"`
	DiscountPercent int               `json:"discount_percent"`
	DiscountAmount  int64             `json:"discount_amount"`
	Total           int64             `json:"total"`
	BonusProgress   float64           `json:"bonus_progress"`
	BonusRemaining  float64           `json:"bonus_remaining"`
}

// CartService defines the interface for cart business logic
type CartService interface {
	Add(ctx context.Context, productID int64) error
	Remove(ctx context.Context, productID int64) error
	UpdateQuantity(ctx context.Context, productID int64, delta int) error
	ApplyPromo(ctx context.Context, code string) (int, error)
	Summary(ctx context.Context) (*CartSummary, error)
	Clear(ctx context.Context) error
}

type cartService struct {
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	promo       *PromoEngine
}

// NewCartService creates a new instance of CartService
func NewCartService(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	promo *PromoEngine,
) CartService {
	return &cartService{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		promo:       promo,
	}
}

// Add puts one unit of the product into the cart, incrementing the
// existing line when the product is already there.
func (s *cartService) Add(ctx context.Context, productID int64) error {
	product, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.Add(ctx, *product); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}

// Remove deletes the whole cart line. An id that is not in the cart is a
// no-op.
func (s *cartService) Remove(ctx context.Context, productID int64) error {
	if err := s.cartRepo.Remove(ctx, productID); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}

// UpdateQuantity adjusts a line by delta, never below 1.
func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, delta int) error {
	if err := s.cartRepo.UpdateQuantity(ctx, productID, delta); err != nil {
		return fmt.Errorf("failed to update quantity: %w", err)
	}
	return nil
}

// ApplyPromo validates the code against the static table and makes it the
// applied code for this session.
func (s *cartService) ApplyPromo(ctx context.Context, code string) (int, error) {
	return s.promo.Apply(code)
}

// Summary computes the current cart view.
func (s *cartService) Summary(ctx context.Context) (*CartSummary, error) {
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	subtotal := Subtotal(items)
	code, percent := s.promo.Applied()

	return &CartSummary{
		Items:           items,
		Subtotal:        subtotal,
		PromoCode:       code,
		DiscountPercent: percent,
		DiscountAmount:  DiscountAmount(subtotal, percent),
		Total:           RoundTotal(FinalTotal(subtotal, percent)),
		BonusProgress:   BonusProgress(subtotal),
		BonusRemaining:  BonusRemaining(subtotal),
	}, nil
}

// Clear empties the cart. Called after a successful order submission.
func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cartRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Subtotal sums price times quantity over the cart lines.
func Subtotal(items []domain.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
