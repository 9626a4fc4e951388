package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/logger"
	"storefront/internal/features/catalog/domain"
	deliverydomain "storefront/internal/features/delivery/domain"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// pincodeMaxTries allows one retry after the first pincode lookup attempt.
const pincodeMaxTries = 2

// defaultCallTimeout bounds a shared upstream call, retries included.
const defaultCallTimeout = 30 * time.Second

// StatusError carries a non-2xx response status from the storefront API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storefront API returned status: %d", e.StatusCode)
}

// StorefrontAPIAdapter implements the product and pincode ports against the
// storefront REST API. Concurrent requests for the same product id or
// pincode share one upstream call.
type StorefrontAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root, e.g. https://host/api.
	baseURL string
	// cache stores pincode lookups; nil disables caching.
	cache      cache.Cache
	pincodeTTL time.Duration
	retryDelay time.Duration
	// callTimeout bounds a coalesced call, which outlives its callers' contexts.
	callTimeout time.Duration
	group       singleflight.Group
	logger      *zap.Logger
}

// Option customizes a StorefrontAPIAdapter.
type Option func(*StorefrontAPIAdapter)

// WithCache enables pincode lookup caching for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(a *StorefrontAPIAdapter) {
		a.cache = c
		a.pincodeTTL = ttl
	}
}

// WithRetryDelay sets the pause before the pincode lookup retry.
func WithRetryDelay(d time.Duration) Option {
	return func(a *StorefrontAPIAdapter) {
		a.retryDelay = d
	}
}

// WithCallTimeout bounds each shared upstream call.
func WithCallTimeout(d time.Duration) Option {
	return func(a *StorefrontAPIAdapter) {
		a.callTimeout = d
	}
}

// NewStorefrontAPIAdapter creates a new adapter for the API at baseURL.
func NewStorefrontAPIAdapter(baseURL string, client *http.Client, opts ...Option) *StorefrontAPIAdapter {
	a := &StorefrontAPIAdapter{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		retryDelay:  500 * time.Millisecond,
		callTimeout: defaultCallTimeout,
		logger:      logger.Named("storefront-api"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetProduct fetches a product by id.
func (a *StorefrontAPIAdapter) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	v, shared, err := a.do(ctx, "product:"+strconv.Itoa(id), func(ctx context.Context) (interface{}, error) {
		var p domain.Product
		if err := a.getJSON(ctx, "/products/"+strconv.Itoa(id), nil, &p); err != nil {
			var se *StatusError
			if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrProductFetch, err)
		}
		return &p, nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) && !errors.Is(err, domain.ErrProductFetch) {
			return nil, fmt.Errorf("%w: %w", domain.ErrProductFetch, err)
		}
		return nil, err
	}
	if shared {
		a.logger.Debug("Coalesced product fetch", zap.Int("product_id", id))
	}

	p := *v.(*domain.Product)
	return &p, nil
}

// ListProducts fetches one page of the catalog.
func (a *StorefrontAPIAdapter) ListProducts(ctx context.Context, page, limit int) (*domain.ProductPage, error) {
	page, limit = domain.NormalizePaging(page, limit)
	key := fmt.Sprintf("products:%d:%d", page, limit)

	v, _, err := a.do(ctx, key, func(ctx context.Context) (interface{}, error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(limit))

		var p domain.ProductPage
		if err := a.getJSON(ctx, "/products", query, &p); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrProductsFetch, err)
		}
		if p.Items == nil {
			p.Items = []domain.Product{}
		}
		return &p, nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrProductsFetch) {
			return nil, fmt.Errorf("%w: %w", domain.ErrProductsFetch, err)
		}
		return nil, err
	}

	result := *v.(*domain.ProductPage)
	result.Items = append([]domain.Product{}, result.Items...)
	return &result, nil
}

// LookupPincode resolves a pincode to its carrier. Server errors and
// network failures are retried once; 4xx responses are final.
func (a *StorefrontAPIAdapter) LookupPincode(ctx context.Context, pincode string) (*deliverydomain.PincodeInfo, error) {
	pincode = deliverydomain.NormalizePincode(pincode)
	key := "pincode:" + pincode

	v, shared, err := a.do(ctx, key, func(ctx context.Context) (interface{}, error) {
		if info, ok := a.cachedPincode(ctx, key); ok {
			return info, nil
		}

		info, err := backoff.Retry(ctx, func() (*deliverydomain.PincodeInfo, error) {
			var info deliverydomain.PincodeInfo
			if err := a.getJSON(ctx, "/pincode/"+url.PathEscape(pincode), nil, &info); err != nil {
				var se *StatusError
				if errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError {
					return nil, backoff.Permanent(err)
				}
				return nil, err
			}
			return &info, nil
		},
			backoff.WithBackOff(backoff.NewConstantBackOff(a.retryDelay)),
			backoff.WithMaxTries(pincodeMaxTries),
			backoff.WithNotify(func(err error, d time.Duration) {
				a.logger.Warn("Retrying pincode lookup",
					zap.String("pincode", pincode),
					zap.Duration("after", d),
					zap.Error(err),
				)
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", deliverydomain.ErrDeliveryUnavailable, err)
		}

		a.storePincode(ctx, key, info)
		return info, nil
	})
	if err != nil {
		if !errors.Is(err, deliverydomain.ErrDeliveryUnavailable) {
			return nil, fmt.Errorf("%w: %w", deliverydomain.ErrDeliveryUnavailable, err)
		}
		return nil, err
	}
	if shared {
		a.logger.Debug("Coalesced pincode lookup", zap.String("pincode", pincode))
	}

	// Callers get their own copy of a shared result.
	info := *v.(*deliverydomain.PincodeInfo)
	return &info, nil
}

// do runs fn once per key for all concurrent callers. The shared call is
// detached from the caller that started it and bounded by callTimeout, so no
// caller's cancellation decides another caller's result. Each caller stops
// waiting when its own ctx is done.
func (a *StorefrontAPIAdapter) do(ctx context.Context, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	ch := a.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.callTimeout)
		defer cancel()
		return fn(callCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// HealthCheck verifies that the storefront API answers a minimal listing.
func (a *StorefrontAPIAdapter) HealthCheck(ctx context.Context) error {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("limit", "1")

	var page domain.ProductPage
	if err := a.getJSON(ctx, "/products", query, &page); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (a *StorefrontAPIAdapter) cachedPincode(ctx context.Context, key string) (*deliverydomain.PincodeInfo, bool) {
	if a.cache == nil {
		return nil, false
	}

	data, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			a.logger.Warn("Pincode cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var info deliverydomain.PincodeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		a.logger.Warn("Discarding corrupt pincode cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &info, true
}

func (a *StorefrontAPIAdapter) storePincode(ctx context.Context, key string, info *deliverydomain.PincodeInfo) {
	if a.cache == nil {
		return
	}

	data, err := json.Marshal(info)
	if err != nil {
		a.logger.Warn("Failed to encode pincode for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := a.cache.Set(ctx, key, data, a.pincodeTTL); err != nil {
		a.logger.Warn("Pincode cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// getJSON performs a GET against the API and decodes a 2xx JSON body into out.
func (a *StorefrontAPIAdapter) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := a.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
