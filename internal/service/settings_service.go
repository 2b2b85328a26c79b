package service

import (
	"context"
	"errors"
	"fmt"

	"gold-store/internal/domain"
	"gold-store/internal/repository"
)

var (
	ErrInvalidTheme = errors.New("invalid theme")
)

// SettingsService manages the persisted display preferences.
type SettingsService interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Theme(ctx context.Context) (domain.Theme, error) {
	return s.settingsRepo.Theme(ctx)
}

func (s *settingsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	if err := s.settingsRepo.SetTheme(ctx, theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	return nil
}
