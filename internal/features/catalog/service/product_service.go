package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/features/catalog/domain"
	"storefront/internal/features/catalog/ports"
)

// ErrInvalidProductID is returned for ids that cannot exist in the catalog.
var ErrInvalidProductID = errors.New("invalid product id")

// ProductService serves catalog reads for the storefront.
type ProductService struct {
	// provider is the interface for fetching products from the storefront API.
	provider ports.ProductProvider
}

// NewProductService creates a new instance of ProductService.
func NewProductService(provider ports.ProductProvider) *ProductService {
	return &ProductService{
		provider: provider,
	}
}

// GetProduct retrieves a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}

	product, err := s.provider.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}

	return product, nil
}

// ListProducts retrieves one page of the catalog. Out-of-range paging
// parameters are normalized rather than rejected.
func (s *ProductService) ListProducts(ctx context.Context, page, limit int) (*domain.ProductPage, error) {
	page, limit = domain.NormalizePaging(page, limit)

	result, err := s.provider.ListProducts(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return result, nil
}
