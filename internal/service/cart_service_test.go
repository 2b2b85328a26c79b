package service

import (
	"context"
	"testing"

	"gold-store/internal/domain"
	"gold-store/internal/repository"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repositories for testing
type mockCatalogRepository struct {
	products map[int64]domain.Product
}

func newMockCatalogRepository(products ...domain.Product) *mockCatalogRepository {
	m := &mockCatalogRepository{products: make(map[int64]domain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockCatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockCatalogRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockCatalogRepository) Add(ctx context.Context, product domain.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockCatalogRepository) Remove(ctx context.Context, id int64) error {
	delete(m.products, id)
	return nil
}

type mockCartRepository struct {
	items []domain.CartItem
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{items: []domain.CartItem{}}
}

func (m *mockCartRepository) Items(ctx context.Context) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *mockCartRepository) Add(ctx context.Context, product domain.Product) error {
	for i := range m.items {
		if m.items[i].ID == product.ID {
			m.items[i].Quantity++
			return nil
		}
	}
	m.items = append(m.items, domain.CartItem{Product: product, Quantity: 1})
	return nil
}

func (m *mockCartRepository) Remove(ctx context.Context, id int64) error {
	filtered := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	m.items = filtered
	return nil
}

func (m *mockCartRepository) UpdateQuantity(ctx context.Context, id int64, delta int) error {
	for i := range m.items {
		if m.items[i].ID == id {
			q := m.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			m.items[i].Quantity = q
			break
		}
	}
	return nil
}

func (m *mockCartRepository) Clear(ctx context.Context) error {
	m.items = []domain.CartItem{}
	return nil
}

func testProduct(id int64, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Test Pack", Amount: 100, Price: price}
}

func TestProperty_RepeatedAddsAccumulateInSingleLine(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("N adds of the same product yield one line with quantity N", prop.ForAll(
		func(n int) bool {
			product := testProduct(1, 89)
			cartRepo := newMockCartRepository()
			svc := NewCartService(newMockCatalogRepository(product), cartRepo, NewPromoEngine())
			ctx := context.Background()

			for i := 0; i < n; i++ {
				if err := svc.Add(ctx, product.ID); err != nil {
					return false
				}
			}

			items, _ := cartRepo.Items(ctx)
			return len(items) == 1 && items[0].Quantity == n
		},
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

func TestProperty_QuantityNeverDropsBelowOne(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("updateQuantity floors at 1 for any negative delta", prop.ForAll(
		func(start int, delta int) bool {
			product := testProduct(1, 89)
			cartRepo := newMockCartRepository()
			svc := NewCartService(newMockCatalogRepository(product), cartRepo, NewPromoEngine())
			ctx := context.Background()

			for i := 0; i < start; i++ {
				if err := svc.Add(ctx, product.ID); err != nil {
					return false
				}
			}

			if err := svc.UpdateQuantity(ctx, product.ID, delta); err != nil {
				return false
			}

			items, _ := cartRepo.Items(ctx)
			if len(items) != 1 || items[0].Quantity < 1 {
				return false
			}

			expected := start + delta
			if expected < 1 {
				expected = 1
			}
			return items[0].Quantity == expected
		},
		gen.IntRange(1, 20),
		gen.IntRange(-1000, 10),
	))

	properties.TestingRun(t)
}

func TestProperty_SubtotalIsSumOfPriceTimesQuantity(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("subtotal equals the sum over all lines", prop.ForAll(
		func(quantities []int) bool {
			var items []domain.CartItem
			var expected float64
			for i, q := range quantities {
				price := float64(100 * (i + 1))
				items = append(items, domain.CartItem{
					Product:  testProduct(int64(i+1), price),
					Quantity: q,
				})
				expected += price * float64(q)
			}
			return Subtotal(items) == expected
		},
		gen.SliceOf(gen.IntRange(1, 10)),
	))

	properties.TestingRun(t)
}

func TestCartService_ZeroPriceProductDoesNotChangeTotal(t *testing.T) {
	items := []domain.CartItem{
		{Product: testProduct(1, 799), Quantity: 2},
	}
	before := RoundTotal(FinalTotal(Subtotal(items), 10))

	items = append(items, domain.CartItem{Product: testProduct(2, 0), Quantity: 5})
	after := RoundTotal(FinalTotal(Subtotal(items), 10))

	assert.Equal(t, before, after)
}

func TestCartService_RemoveNonexistentIsNoOp(t *testing.T) {
	product := testProduct(1, 89)
	cartRepo := newMockCartRepository()
	svc := NewCartService(newMockCatalogRepository(product), cartRepo, NewPromoEngine())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, product.ID))
	require.NoError(t, svc.Remove(ctx, 999))

	items, _ := cartRepo.Items(ctx)
	assert.Len(t, items, 1)
}

func TestCartService_RemoveDeletesWholeLine(t *testing.T) {
	product := testProduct(1, 89)
	cartRepo := newMockCartRepository()
	svc := NewCartService(newMockCatalogRepository(product), cartRepo, NewPromoEngine())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Add(ctx, product.ID))
	}
	require.NoError(t, svc.Remove(ctx, product.ID))

	items, _ := cartRepo.Items(ctx)
	assert.Empty(t, items)
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	svc := NewCartService(newMockCatalogRepository(), newMockCartRepository(), NewPromoEngine())

	err := svc.Add(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCartService_SummaryReflectsPromoAndBonus(t *testing.T) {
	product := testProduct(1, 500)
	cartRepo := newMockCartRepository()
	svc := NewCartService(newMockCatalogRepository(product), cartRepo, NewPromoEngine())
	ctx := context.Background()

	// 5 x 500 = 2500 subtotal
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Add(ctx, product.ID))
	}

	percent, err := svc.ApplyPromo(ctx, "GIFT10")
	require.NoError(t, err)
	assert.Equal(t, 10, percent)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2500.0, summary.Subtotal)
	assert.Equal(t, "GIFT10", summary.PromoCode)
	assert.Equal(t, int64(250), summary.DiscountAmount)
	assert.Equal(t, int64(2250), summary.Total)
	assert.Equal(t, 50.0, summary.BonusProgress)
	assert.Equal(t, 2500.0, summary.BonusRemaining)
}
