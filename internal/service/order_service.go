package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gold-store/internal/notify"
	"gold-store/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderService defines the interface for order submission
type OrderService interface {
	Submit(ctx context.Context, playerID, email, paymentMethod string) (int64, error)
}

type orderService struct {
	cartRepo repository.CartRepository
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(cartRepo repository.CartRepository, notifier notify.Notifier, logger *zap.Logger) OrderService {
	return &orderService{
		cartRepo: cartRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit totals the cart, forwards the order summary to the admin chat and
// clears the cart on delivery success. On failure the cart stays as it is
// and the caller gets the error; there is no retry and no idempotency key,
// so resubmitting after a transport failure can duplicate the alert if the
// first message actually arrived.
//
// The total uses the order surface's flat volume rule, not the cart
// surface's promo state. See pricing.go.
func (s *orderService) Submit(ctx context.Context, playerID, email, paymentMethod string) (int64, error) {
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	subtotal := Subtotal(items)
	discount := VolumeDiscountPercent(subtotal)
	total := RoundTotal(FinalTotal(subtotal, discount))

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}

	msg := fmt.Sprintf(
		"<b>💰 NEW ORDER!</b>\n\n👤 ID: <code>%s</code>\n📧 Email: %s\n💳 Method: %s\n🛒 Items:\n%s\n💵 TOTAL: %d ₽",
		playerID, email, paymentMethod, strings.Join(lines, "\n"), total,
	)

	if err := s.notifier.Send(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to deliver order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx); err != nil {
		// The order is already on its way to the admin; report the
		// inconsistency instead of pretending the submission failed.
		s.logger.Error("Order delivered but cart could not be cleared", zap.Error(err))
		return total, fmt.Errorf("failed to clear cart after order: %w", err)
	}

	s.logger.Info("Order submitted",
		zap.String("player_id", playerID),
		zap.Int("items", len(items)),
		zap.Int64("total", total),
	)
	return total, nil
}
