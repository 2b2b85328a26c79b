package transport

import (
	"errors"
	"net/http"

	"gold-store/internal/middleware"
	"gold-store/internal/notify"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmitOrderRequest represents the checkout payload
type SubmitOrderRequest struct {
	PlayerID      string `json:"player_id" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=SBP CARD QIWI CRYPTO"`
}

// SubmitOrderResponse reports the charged total after a successful
// submission
type SubmitOrderResponse struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// OrderHandler handles HTTP requests for order submission
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/orders", h.Submit)
}

// Submit forwards the order to the admin and clears the cart on success.
// A delivery failure leaves the cart untouched so the buyer can retry.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	total, err := h.orderService.Submit(r.Context(), req.PlayerID, req.Email, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		if errors.Is(err, notify.ErrSendFailed) {
			middleware.RespondWithError(w, http.StatusBadGateway, "failed to submit order, please try again")
			return
		}

		h.logger.Error("Order submission failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, SubmitOrderResponse{
		Status: "accepted",
		Total:  total,
	})
}
