package ports

import (
	"context"

	"storefront/internal/features/delivery/domain"
)

// PincodeProvider resolves a pincode to the carrier that serves it.
// This is a Secondary Port (Driven Port).
type PincodeProvider interface {
	// LookupPincode returns the carrier mapping for a validated pincode.
	LookupPincode(ctx context.Context, pincode string) (*domain.PincodeInfo, error)
}
