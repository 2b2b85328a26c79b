package transport

import (
	"net/http"
	"strconv"

	"gold-store/internal/middleware"
	"gold-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddProductRequest represents the admin add-product payload. Amount and
// price must be positive numbers; malformed input is rejected here, never
// coerced.
type AddProductRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount int     `json:"amount" validate:"required,gt=0"`
	Price  float64 `json:"price" validate:"required,gt=0"`
}

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers catalog routes. Mutations sit behind the admin
// gate; listing is public.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, adminAuth func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)

		r.Group(func(r chi.Router) {
			r.Use(adminAuth)
			r.Post("/", h.Add)
			r.Delete("/{id}", h.Remove)
		})
	})
}

// List returns the full catalog
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list catalog", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// Add creates a new product
func (h *CatalogHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalogService.Add(r.Context(), req.Name, req.Amount, req.Price)
	if err != nil {
		h.logger.Error("Failed to add product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add product")
		return
	}

	h.logger.Info("Product added", zap.Int64("product_id", product.ID), zap.String("name", product.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Remove deletes a product from the catalog
func (h *CatalogHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.catalogService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to remove product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
