package service

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoEngine_ApplyKnownCode(t *testing.T) {
	promo := NewPromoEngine()

	percent, err := promo.Apply("GIFT10")
	require.NoError(t, err)
	assert.Equal(t, 10, percent)

	assert.Equal(t, int64(900), RoundTotal(FinalTotal(1000, percent)))
}

func TestPromoEngine_ApplyNormalizesInput(t *testing.T) {
	promo := NewPromoEngine()

	percent, err := promo.Apply("  gift10 ")
	require.NoError(t, err)
	assert.Equal(t, 10, percent)

	code, _ := promo.Applied()
	assert.Equal(t, "GIFT10", code)
}

func TestPromoEngine_UnknownCodeLeavesStateUnchanged(t *testing.T) {
	promo := NewPromoEngine()

	_, err := promo.Apply("GIFT10")
	require.NoError(t, err)

	_, err = promo.Apply("BOGUS")
	assert.ErrorIs(t, err, ErrPromoNotFound)

	code, percent := promo.Applied()
	assert.Equal(t, "GIFT10", code)
	assert.Equal(t, 10, percent)
}

func TestPromoEngine_SecondCodeReplacesNotStacks(t *testing.T) {
	promo := NewPromoEngine()

	_, err := promo.Apply("GIFT10")
	require.NoError(t, err)

	percent, err := promo.Apply("SO2GOLD")
	require.NoError(t, err)
	assert.Equal(t, 15, percent)

	// 15% off 1000 is 850, not the stacked 25% (750)
	assert.Equal(t, int64(850), RoundTotal(FinalTotal(1000, percent)))
}

func TestBonusProgress(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"empty cart", 0, 0},
		{"halfway", 2500, 50},
		{"exactly at goal", 5000, 100},
		{"past goal clamps", 6000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BonusProgress(tt.subtotal))
		})
	}
}

func TestBonusRemaining(t *testing.T) {
	assert.Equal(t, 2500.0, BonusRemaining(2500))
	assert.Equal(t, 0.0, BonusRemaining(5000))
	assert.Equal(t, 0.0, BonusRemaining(9000))
}

func TestVolumeDiscountPercent(t *testing.T) {
	assert.Equal(t, 0, VolumeDiscountPercent(10000))
	assert.Equal(t, 10, VolumeDiscountPercent(10001))
	assert.Equal(t, 0, VolumeDiscountPercent(0))
}

func TestProperty_DiscountAmountMatchesFinalTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("discount line plus rounded final never loses money", prop.ForAll(
		func(subtotal int, percent int) bool {
			s := float64(subtotal)
			final := FinalTotal(s, percent)
			if final < 0 || final > s {
				return false
			}
			return DiscountAmount(s, percent) == RoundTotal(s-final)
		},
		gen.IntRange(0, 100000),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
