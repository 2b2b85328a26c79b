package service

import (
	"errors"
	"math"
	"strings"
	"sync"
)

const (
	// BonusGoal is the subtotal at which the order bonus unlocks. The bonus
	// is a display incentive only; nothing grants it at fulfillment time.
	BonusGoal = 5000.0

	// The order surface applies its own flat volume discount, independent
	// of any promo code applied on the cart surface. The two rules coexist
	// on purpose: unifying them would silently change charged totals.
	volumeDiscountThreshold = 10000.0
	volumeDiscountPercent   = 10
)

// promoCodes maps an uppercase promo code to its discount percentage.
// The table is compiled in and not configurable at runtime.
var promoCodes = map[string]int{
	"GIFT10":  10,
	"SO2GOLD": 15,
	"ADMIN":   50,
}

var (
	ErrPromoNotFound = errors.New("promo code not found")
)

// PromoEngine tracks the single promo code applied to the current cart
// session. Applying a new code replaces the previous one; codes never
// stack. The applied state is in-memory only and does not survive a
// restart.
type PromoEngine struct {
	mu      sync.Mutex
	code    string
	percent int
}

// NewPromoEngine creates a promo engine with no code applied.
func NewPromoEngine() *PromoEngine {
	return &PromoEngine{}
}

// Apply normalizes the code (uppercase, trimmed) and looks it up. On a hit
// the code becomes the applied one and its percentage is returned. On a
// miss the applied state is left unchanged.
func (e *PromoEngine) Apply(code string) (int, error) {
	clean := strings.ToUpper(strings.TrimSpace(code))

	percent, ok := promoCodes[clean]
	if !ok {
		return 0, ErrPromoNotFound
	}

	e.mu.Lock()
	e.code = clean
	e.percent = percent
	e.mu.Unlock()

	return percent, nil
}

// Applied returns the currently applied code and its percentage, or
// ("", 0) when no code is applied.
func (e *PromoEngine) Applied() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.code, e.percent
}

// FinalTotal applies a percentage discount to a subtotal.
func FinalTotal(subtotal float64, discountPercent int) float64 {
	return subtotal * (1 - float64(discountPercent)/100)
}

// RoundTotal rounds a computed total to the nearest currency unit for
// display and for the order summary.
func RoundTotal(total float64) int64 {
	return int64(math.Round(total))
}

// DiscountAmount is the discount line shown next to the total.
func DiscountAmount(subtotal float64, discountPercent int) int64 {
	return int64(math.Round(subtotal - FinalTotal(subtotal, discountPercent)))
}

// BonusProgress maps a subtotal onto 0–100% progress toward the bonus
// goal, clamped at 100.
func BonusProgress(subtotal float64) float64 {
	progress := subtotal / BonusGoal * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// BonusRemaining is how much more must be spent to unlock the bonus, zero
// once the goal is reached.
func BonusRemaining(subtotal float64) float64 {
	if subtotal >= BonusGoal {
		return 0
	}
	return BonusGoal - subtotal
}

// VolumeDiscountPercent is the order surface's flat discount rule.
func VolumeDiscountPercent(subtotal float64) int {
	if subtotal > volumeDiscountThreshold {
		return volumeDiscountPercent
	}
	return 0
}
