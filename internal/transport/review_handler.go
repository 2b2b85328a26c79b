package transport

import (
	"net/http"

	"gold-store/internal/middleware"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmitReviewRequest represents the review board submission payload
type SubmitReviewRequest struct {
	User   string `json:"user" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// ReviewHandler handles HTTP requests for the review board
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers review board routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Submit)
	})
}

// List returns all reviews, newest-first
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list reviews", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, reviews)
}

// Submit publishes a new review
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Review validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.Submit(r.Context(), req.User, req.Text, req.Rating)
	if err != nil {
		h.logger.Error("Failed to submit review", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit review")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, review)
}
