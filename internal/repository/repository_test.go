package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gold-store/internal/domain"
	"gold-store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestStore(t *testing.T) (*storage.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, path
}

func reopen(t *testing.T, store *storage.Store, path string) *storage.Store {
	t.Helper()

	require.NoError(t, store.Close())
	reopened, err := storage.Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	return reopened
}

func TestCatalogRepository_SeedsDefaultCatalog(t *testing.T) {
	store, _ := openTestStore(t)
	repo := NewCatalogRepository(store)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Equal(t, "Starter Pack", products[0].Name)
}

func TestCatalogRepository_SeedsOnUnreadableData(t *testing.T) {
	store, _ := openTestStore(t)
	require.NoError(t, store.Save(keyProducts, "corrupted"))

	repo := NewCatalogRepository(store)
	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestCatalogRepository_MutationsPersistAcrossReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	repo := NewCatalogRepository(store)
	added := domain.Product{ID: 100, Name: "Mega Pack", Amount: 9000, Price: 4999, Badge: domain.NewProductBadge}
	require.NoError(t, repo.Add(ctx, added))
	require.NoError(t, repo.Remove(ctx, 1))

	store = reopen(t, store, path)
	repo = NewCatalogRepository(store)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6) // 6 seeded - 1 removed + 1 added

	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	found, err := repo.FindByID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "Mega Pack", found.Name)
}

func TestCatalogRepository_RemoveUnknownIsNoOp(t *testing.T) {
	store, _ := openTestStore(t)
	repo := NewCatalogRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, 424242))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestCartRepository_PersistsAcrossReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	product := domain.Product{ID: 1, Name: "Starter Pack", Amount: 100, Price: 89}
	repo := NewCartRepository(store)
	require.NoError(t, repo.Add(ctx, product))
	require.NoError(t, repo.Add(ctx, product))

	store = reopen(t, store, path)
	repo = NewCartRepository(store)

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartRepository_QuantityFloor(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	repo := NewCartRepository(store)
	require.NoError(t, repo.Add(ctx, domain.Product{ID: 1, Price: 89}))
	require.NoError(t, repo.UpdateQuantity(ctx, 1, -100))

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestReviewRepository_OrderSurvivesReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	repo := NewReviewRepository(store)
	require.NoError(t, repo.Prepend(ctx, domain.Review{ID: 1, User: "older", Rating: 5, Date: "Today"}))
	require.NoError(t, repo.Prepend(ctx, domain.Review{ID: 2, User: "newer", Rating: 4, Date: "Today"}))

	store = reopen(t, store, path)
	repo = NewReviewRepository(store)

	reviews, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "newer", reviews[0].User)
	assert.Equal(t, "older", reviews[1].User)
}

func TestTicketRepository_LifecyclePersists(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	repo := NewTicketRepository(store)
	require.NoError(t, repo.Prepend(ctx, domain.SupportMessage{ID: 1, Contact: "a@example.com", Status: domain.TicketStatusNew}))
	require.NoError(t, repo.Prepend(ctx, domain.SupportMessage{ID: 2, Contact: "a@example.com", Status: domain.TicketStatusNew}))
	require.NoError(t, repo.MarkReplied(ctx, 1))

	store = reopen(t, store, path)
	repo = NewTicketRepository(store)

	unread, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, repo.Delete(ctx, 2))
	assert.ErrorIs(t, repo.Delete(ctx, 2), ErrTicketNotFound)

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.TicketStatusReplied, tickets[0].Status)
}

func TestSettingsRepository_ThemeDefaultsToDark(t *testing.T) {
	store, _ := openTestStore(t)
	repo := NewSettingsRepository(store)

	theme, err := repo.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestSettingsRepository_ThemePersists(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	repo := NewSettingsRepository(store)
	require.NoError(t, repo.SetTheme(ctx, domain.ThemeLight))

	store = reopen(t, store, path)
	repo = NewSettingsRepository(store)

	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
