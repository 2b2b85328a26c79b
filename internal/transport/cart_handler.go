package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gold-store/internal/middleware"
	"gold-store/internal/repository"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddCartItemRequest represents the add-to-cart payload
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest represents the quantity-adjust payload. Delta is
// usually +1 or -1 from the cart controls but any non-zero integer works.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ApplyPromoRequest represents the promo-code payload
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// ApplyPromoResponse reports the discount now in effect
type ApplyPromoResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Summary)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{id}", h.RemoveItem)
		r.Patch("/items/{id}", h.UpdateQuantity)
		r.Post("/promo", h.ApplyPromo)
	})
}

// Summary returns the cart lines, subtotal, promo state and bonus progress
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartService.Summary(r.Context())
	if err != nil {
		h.logger.Error("Failed to build cart summary", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to read cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// AddItem puts one unit of a product into the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.Add(r.Context(), req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to add to cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

// RemoveItem deletes a whole cart line
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.cartService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to remove from cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove from cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// UpdateQuantity adjusts a cart line quantity by delta
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update quantity validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.UpdateQuantity(r.Context(), id, req.Delta); err != nil {
		h.logger.Error("Failed to update quantity", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update quantity")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// ApplyPromo applies a promo code to the cart session
func (h *CartHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req ApplyPromoRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Apply promo validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	percent, err := h.cartService.ApplyPromo(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrPromoNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "promo code not found")
			return
		}

		h.logger.Error("Failed to apply promo", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to apply promo code")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ApplyPromoResponse{
		Code:            strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountPercent: percent,
	})
}
