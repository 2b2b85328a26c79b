package repository

import (
	"context"
	"fmt"
	"sync"

	"gold-store/internal/domain"
	"gold-store/internal/storage"
)

// SettingsRepository defines the interface for session-wide preferences.
type SettingsRepository interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}

type settingsRepository struct {
	mu    sync.Mutex
	store *storage.Store
	theme domain.Theme
}

// NewSettingsRepository loads the persisted theme preference, defaulting
// to dark.
func NewSettingsRepository(store *storage.Store) SettingsRepository {
	r := &settingsRepository{store: store}
	if !store.Load(keyTheme, &r.theme) || !r.theme.Valid() {
		r.theme = domain.ThemeDark
	}
	return r
}

func (r *settingsRepository) Theme(ctx context.Context) (domain.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme, nil
}

func (r *settingsRepository) SetTheme(ctx context.Context, theme domain.Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = theme
	if err := r.store.Save(keyTheme, r.theme); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}
