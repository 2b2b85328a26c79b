package transport

import (
	"errors"
	"net/http"
	"strconv"

	"gold-store/internal/middleware"
	"gold-store/internal/notify"
	"gold-store/internal/repository"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmitTicketRequest represents the support form payload
type SubmitTicketRequest struct {
	Contact string `json:"contact" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// TicketListResponse is the admin ticket view with the unread badge count
type TicketListResponse struct {
	Tickets     interface{} `json:"tickets"`
	UnreadCount int         `json:"unread_count"`
}

// SupportHandler handles HTTP requests for support tickets
type SupportHandler struct {
	supportService service.SupportService
	logger         *zap.Logger
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(supportService service.SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		logger:         logger,
	}
}

// RegisterRoutes registers support routes. Submission is public; reading
// and managing tickets is admin-only.
func (h *SupportHandler) RegisterRoutes(r chi.Router, adminAuth func(http.Handler) http.Handler) {
	r.Route("/api/support", func(r chi.Router) {
		r.Post("/", h.Submit)

		r.Group(func(r chi.Router) {
			r.Use(adminAuth)
			r.Get("/", h.List)
			r.Post("/{id}/replied", h.MarkReplied)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Submit forwards a support request to the admin chat and records the
// ticket on delivery success
func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitTicketRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Support request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := h.supportService.Submit(r.Context(), req.Contact, req.Text)
	if err != nil {
		if errors.Is(err, notify.ErrSendFailed) {
			middleware.RespondWithError(w, http.StatusBadGateway, "failed to send message, please try again")
			return
		}

		h.logger.Error("Failed to submit support request", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit support request")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, ticket)
}

// List returns all tickets with the unread count
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.supportService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list tickets", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list tickets")
		return
	}

	unread, err := h.supportService.UnreadCount(r.Context())
	if err != nil {
		h.logger.Error("Failed to count unread tickets", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list tickets")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, TicketListResponse{
		Tickets:     tickets,
		UnreadCount: unread,
	})
}

// MarkReplied transitions a ticket to replied
func (h *SupportHandler) MarkReplied(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	if err := h.supportService.MarkReplied(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "ticket not found")
			return
		}

		h.logger.Error("Failed to mark ticket replied", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update ticket")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "replied"})
}

// Delete removes a ticket
func (h *SupportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	if err := h.supportService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "ticket not found")
			return
		}

		h.logger.Error("Failed to delete ticket", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete ticket")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
