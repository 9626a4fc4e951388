package ports

import (
	"context"
	"time"

	"storefront/internal/features/cart/domain"
	deliverydomain "storefront/internal/features/delivery/domain"
)

// CartRepository defines the secondary port for cart storage.
type CartRepository interface {
	Create() *domain.Cart
	Get(id string) (*domain.Cart, error)
	Delete(id string) error
}

// DeliveryResolver resolves a pincode for the checkout gate.
type DeliveryResolver interface {
	// Resolve validates pincode and looks up its carrier. Only validation
	// failures are errors.
	Resolve(ctx context.Context, pincode string) (*deliverydomain.Destination, error)
	// Now is the instant delivery rules are evaluated at.
	Now() time.Time
}
