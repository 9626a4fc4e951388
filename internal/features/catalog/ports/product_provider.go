package ports

import (
	"context"

	"storefront/internal/features/catalog/domain"
)

// ProductProvider retrieves products from the storefront API.
// This is a Secondary Port (Driven Port).
type ProductProvider interface {
	// GetProduct retrieves one product by id.
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	// ListProducts retrieves one page of the catalog.
	ListProducts(ctx context.Context, page, limit int) (*domain.ProductPage, error)
}
