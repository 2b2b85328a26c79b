package service

import (
	"context"
	"fmt"
	"time"

	"gold-store/internal/domain"
	"gold-store/internal/repository"
)

// CatalogService defines the interface for catalog management
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Add(ctx context.Context, name string, amount int, price float64) (*domain.Product, error)
	Remove(ctx context.Context, id int64) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// List returns the current catalog.
func (s *catalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return products, nil
}

// Add creates a product with a fresh timestamp id and the admin badge.
// Input is validated at the transport layer; by the time it reaches here
// name is non-empty and amount/price are positive.
func (s *catalogService) Add(ctx context.Context, name string, amount int, price float64) (*domain.Product, error) {
	product := domain.Product{
		ID:     time.Now().UnixMilli(),
		Name:   name,
		Amount: amount,
		Price:  price,
		Image:  domain.NewProductImage,
		Badge:  domain.NewProductBadge,
	}

	if err := s.catalogRepo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	return &product, nil
}

// Remove deletes the product from the catalog. Unknown ids are a no-op.
func (s *catalogService) Remove(ctx context.Context, id int64) error {
	if err := s.catalogRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove product: %w", err)
	}
	return nil
}
