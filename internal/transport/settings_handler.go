package transport

import (
	"errors"
	"net/http"

	"gold-store/internal/domain"
	"gold-store/internal/middleware"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SetThemeRequest represents the theme preference payload
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

// ThemeResponse carries the stored theme preference
type ThemeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// SettingsHandler handles HTTP requests for display preferences
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", h.GetTheme)
		r.Put("/", h.SetTheme)
	})
}

// GetTheme returns the stored theme preference
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.settingsService.Theme(r.Context())
	if err != nil {
		h.logger.Error("Failed to read theme", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to read theme")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme stores a new theme preference
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Theme validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settingsService.SetTheme(r.Context(), domain.Theme(req.Theme)); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid theme")
			return
		}

		h.logger.Error("Failed to set theme", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to set theme")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ThemeResponse{Theme: domain.Theme(req.Theme)})
}
