package transport

import (
	"errors"
	"net/http"

	"gold-store/internal/middleware"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the admin session token
type LoginResponse struct {
	Token string `json:"token"`
}

// AdminHandler handles the admin console login
type AdminHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(authService service.AuthService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/admin/login", h.Login)
}

// Login checks the shared secret and returns a session token. Wrong
// passwords are rejected with no lockout or backoff.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid password")
			return
		}

		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	h.logger.Info("Admin logged in")
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token})
}
