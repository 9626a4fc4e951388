package service

import (
	"context"
	"time"

	"storefront/internal/core/clock"
	"storefront/internal/core/logger"
	catalogdomain "storefront/internal/features/catalog/domain"
	catalogports "storefront/internal/features/catalog/ports"
	"storefront/internal/features/delivery/countdown"
	"storefront/internal/features/delivery/domain"
	"storefront/internal/features/delivery/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Check is the delivery verdict for one product and pincode.
type Check struct {
	Pincode     string             `json:"pincode"`
	ProductID   int                `json:"product_id"`
	InStock     bool               `json:"in_stock"`
	Provider    string             `json:"provider,omitempty"`
	TATDays     int                `json:"tat_days,omitempty"`
	Estimate    *domain.Estimate   `json:"estimate,omitempty"`
	Possibility domain.Possibility `json:"possibility"`
	// Countdown is the time left to the same-day cutoff, set only while
	// same-day delivery is still possible.
	Countdown *countdown.Snapshot `json:"countdown,omitempty"`
}

// Cutoff returns the same-day cutoff while it is still ahead, or nil.
func (c *Check) Cutoff() *time.Time {
	if c.Estimate == nil {
		return nil
	}
	return c.Estimate.Cutoff
}

// DeliveryService answers "when will this arrive" for the storefront.
type DeliveryService struct {
	products catalogports.ProductProvider
	pincodes ports.PincodeProvider
	clock    clock.Clock
	logger   *zap.Logger
}

// NewDeliveryService creates a new DeliveryService. clk determines both the
// evaluation instant and the timezone cutoffs are read in.
func NewDeliveryService(products catalogports.ProductProvider, pincodes ports.PincodeProvider, clk clock.Clock) *DeliveryService {
	return &DeliveryService{
		products: products,
		pincodes: pincodes,
		clock:    clk,
		logger:   logger.Named("delivery"),
	}
}

// Now returns the service's current time.
func (s *DeliveryService) Now() time.Time {
	return s.clock.Now()
}

// Clock returns the clock used for evaluations and countdowns.
func (s *DeliveryService) Clock() clock.Clock {
	return s.clock
}

// Resolve validates pincode and looks up its carrier. Only validation
// failures are returned as errors; a failed lookup is recorded on the
// destination.
func (s *DeliveryService) Resolve(ctx context.Context, pincode string) (*domain.Destination, error) {
	code := domain.NormalizePincode(pincode)
	if err := domain.ValidatePincode(code); err != nil {
		return nil, err
	}
	return s.lookup(ctx, code), nil
}

// Check evaluates delivery of productID to pincode. The pincode is
// validated before any upstream call; the product fetch and the pincode
// lookup then run concurrently.
func (s *DeliveryService) Check(ctx context.Context, pincode string, productID int) (*Check, error) {
	code := domain.NormalizePincode(pincode)
	if err := domain.ValidatePincode(code); err != nil {
		return nil, err
	}

	var (
		product *catalogdomain.Product
		dest    *domain.Destination
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.products.GetProduct(gctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return catalogdomain.ErrProductNotFound
		}
		product = p
		return nil
	})
	g.Go(func() error {
		dest = s.lookup(gctx, code)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	estimate, verdict := dest.Evaluate(now, product.InStock)

	check := &Check{
		Pincode:     code,
		ProductID:   product.ID,
		InStock:     product.InStock,
		Estimate:    estimate,
		Possibility: verdict,
	}
	if dest.Resolved() {
		check.Provider = dest.Info.ProviderName
		check.TATDays = dest.Info.TATDays
	}
	if estimate != nil && estimate.Cutoff != nil {
		snap := countdown.Remaining(estimate.Cutoff, now)
		check.Countdown = &snap
	}

	if verdict.Kind == domain.KindUnknownProvider {
		s.logger.Warn("No delivery rule for carrier",
			zap.String("pincode", code),
			zap.String("provider", check.Provider),
		)
	}

	return check, nil
}

func (s *DeliveryService) lookup(ctx context.Context, code string) *domain.Destination {
	dest := &domain.Destination{Pincode: code}

	info, err := s.pincodes.LookupPincode(ctx, code)
	if err != nil || info == nil {
		s.logger.Info("Pincode lookup failed",
			zap.String("pincode", code),
			zap.Error(err),
		)
		dest.LookupMessage = domain.ErrDeliveryUnavailable.Error()
		return dest
	}

	dest.Info = info
	return dest
}
