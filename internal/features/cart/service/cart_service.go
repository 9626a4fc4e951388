package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/logger"
	"storefront/internal/features/cart/domain"
	"storefront/internal/features/cart/ports"
	catalogdomain "storefront/internal/features/catalog/domain"
	catalogports "storefront/internal/features/catalog/ports"
	deliverydomain "storefront/internal/features/delivery/domain"

	"go.uber.org/zap"
)

// Checkout gate messages.
const (
	MsgProceed         = "Proceed to Checkout"
	MsgEnterPincode    = "Enter Valid Pincode to Continue"
	MsgEmptyCart       = "Your cart is empty"
	MsgItemsBlocking   = "Some items cannot be delivered"
	MsgPincodeUnserved = "Invalid pincode or service not available in this area"
)

// ErrInvalidProductID is returned for ids that cannot exist in the catalog.
var ErrInvalidProductID = errors.New("invalid product id")

// ItemDelivery is the delivery verdict for one cart line.
type ItemDelivery struct {
	ProductID   int                        `json:"product_id"`
	Name        string                     `json:"name"`
	Quantity    int                        `json:"quantity"`
	Estimate    *deliverydomain.Estimate   `json:"estimate,omitempty"`
	Possibility deliverydomain.Possibility `json:"possibility"`
}

// Checkout is the checkout gate for a cart and pincode.
type Checkout struct {
	CartID  string `json:"cart_id"`
	Pincode string `json:"pincode"`
	// Enabled reports whether the shopper may proceed.
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
	// PincodeError is the validation or lookup failure, if any.
	PincodeError string         `json:"pincode_error,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	TATDays      int            `json:"tat_days,omitempty"`
	Count        int            `json:"count"`
	Total        float64        `json:"total"`
	Items        []ItemDelivery `json:"items"`
}

// CartService manages shopper carts.
type CartService struct {
	repo     ports.CartRepository
	products catalogports.ProductProvider
	delivery ports.DeliveryResolver
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(repo ports.CartRepository, products catalogports.ProductProvider, delivery ports.DeliveryResolver) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		delivery: delivery,
		logger:   logger.Named("cart"),
	}
}

// Create starts a new empty cart.
func (s *CartService) Create(ctx context.Context) domain.View {
	cart := s.repo.Create()
	s.logger.Debug("Cart created", zap.String("cart_id", cart.ID()))
	return cart.View()
}

// Get returns a snapshot of the cart.
func (s *CartService) Get(ctx context.Context, cartID string) (domain.View, error) {
	cart, err := s.repo.Get(cartID)
	if err != nil {
		return domain.View{}, err
	}
	return cart.View(), nil
}

// AddProduct fetches the product and adds one unit of it to the cart.
func (s *CartService) AddProduct(ctx context.Context, cartID string, productID int) (domain.View, error) {
	if productID <= 0 {
		return domain.View{}, ErrInvalidProductID
	}

	cart, err := s.repo.Get(cartID)
	if err != nil {
		return domain.View{}, err
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.View{}, err
	}
	if product == nil {
		return domain.View{}, fmt.Errorf("%w: %d", catalogdomain.ErrProductNotFound, productID)
	}

	cart.Add(*product)
	return cart.View(), nil
}

// Remove deletes a product line from the cart.
func (s *CartService) Remove(ctx context.Context, cartID string, productID int) (domain.View, error) {
	cart, err := s.repo.Get(cartID)
	if err != nil {
		return domain.View{}, err
	}
	cart.Remove(productID)
	return cart.View(), nil
}

// SetQuantity overwrites a line's quantity; below 1 removes it.
func (s *CartService) SetQuantity(ctx context.Context, cartID string, productID, quantity int) (domain.View, error) {
	cart, err := s.repo.Get(cartID)
	if err != nil {
		return domain.View{}, err
	}
	cart.SetQuantity(productID, quantity)
	return cart.View(), nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, cartID string) (domain.View, error) {
	cart, err := s.repo.Get(cartID)
	if err != nil {
		return domain.View{}, err
	}
	cart.Clear()
	return cart.View(), nil
}

// Delete discards the cart.
func (s *CartService) Delete(ctx context.Context, cartID string) error {
	if err := s.repo.Delete(cartID); err != nil {
		return err
	}
	s.logger.Debug("Cart deleted", zap.String("cart_id", cartID))
	return nil
}

// Checkout decides whether the cart may proceed to checkout for pincode.
// Checkout is enabled only when the pincode is valid, its lookup
// succeeded, the cart is not empty, and no line has an impossible
// delivery. Past-cutoff warnings do not block.
func (s *CartService) Checkout(ctx context.Context, cartID, pincode string) (*Checkout, error) {
	cart, err := s.repo.Get(cartID)
	if err != nil {
		return nil, err
	}
	view := cart.View()

	result := &Checkout{
		CartID:  view.ID,
		Pincode: deliverydomain.NormalizePincode(pincode),
		Message: MsgEnterPincode,
		Count:   view.Count,
		Total:   view.Total,
		Items:   []ItemDelivery{},
	}

	dest, err := s.delivery.Resolve(ctx, pincode)
	if err != nil {
		result.PincodeError = err.Error()
		return result, nil
	}
	if !dest.Resolved() {
		s.logger.Debug("Checkout pincode lookup failed",
			zap.String("pincode", dest.Pincode),
			zap.String("reason", dest.LookupMessage),
		)
		result.PincodeError = MsgPincodeUnserved
		return result, nil
	}
	result.Provider = dest.Info.ProviderName
	result.TATDays = dest.Info.TATDays

	if len(view.Items) == 0 {
		result.Message = MsgEmptyCart
		return result, nil
	}

	now := s.delivery.Now()
	blocked := 0
	for _, it := range view.Items {
		estimate, verdict := dest.Evaluate(now, it.Product.InStock)
		result.Items = append(result.Items, ItemDelivery{
			ProductID:   it.Product.ID,
			Name:        it.Product.Name,
			Quantity:    it.Quantity,
			Estimate:    estimate,
			Possibility: verdict,
		})
		if !verdict.Possible {
			blocked++
		}
	}

	switch {
	case blocked == 1:
		for _, item := range result.Items {
			if !item.Possibility.Possible {
				result.Message = fmt.Sprintf("%s: %s", item.Name, item.Possibility.Message)
			}
		}
	case blocked > 1:
		result.Message = MsgItemsBlocking
	default:
		result.Enabled = true
		result.Message = MsgProceed
	}

	return result, nil
}
