package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"storefront/internal/core/clock"
	"storefront/internal/core/httperr"
	catalogdomain "storefront/internal/features/catalog/domain"
	"storefront/internal/features/delivery/countdown"
	"storefront/internal/features/delivery/domain"
	"storefront/internal/features/delivery/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductProvider is a mock implementation of ProductProvider for testing.
type mockProductProvider struct {
	product *catalogdomain.Product
	err     error
}

// GetProduct implements ProductProvider.
func (m *mockProductProvider) GetProduct(ctx context.Context, id int) (*catalogdomain.Product, error) {
	return m.product, m.err
}

// ListProducts implements ProductProvider.
func (m *mockProductProvider) ListProducts(ctx context.Context, page, limit int) (*catalogdomain.ProductPage, error) {
	return nil, errors.New("not used")
}

// mockPincodeProvider is a mock implementation of PincodeProvider for testing.
type mockPincodeProvider struct {
	info *domain.PincodeInfo
	err  error
}

// LookupPincode implements PincodeProvider.
func (m *mockPincodeProvider) LookupPincode(ctx context.Context, pincode string) (*domain.PincodeInfo, error) {
	return m.info, m.err
}

var kolkata, _ = time.LoadLocation("Asia/Kolkata")

func newTestApp(products *mockProductProvider, pincodes *mockPincodeProvider, clk clock.Clock) *fiber.App {
	app, _ := newTestHandlerApp(products, pincodes, clk)
	return app
}

func newTestHandlerApp(products *mockProductProvider, pincodes *mockPincodeProvider, clk clock.Clock) (*fiber.App, *DeliveryHandler) {
	h := NewDeliveryHandler(service.NewDeliveryService(products, pincodes, clk))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/delivery/estimate", h.GetEstimate)
	app.Get("/delivery/countdown", h.StreamCountdown)
	return app, h
}

func decodeError(t *testing.T, body io.Reader) httperr.ErrorResponse {
	t.Helper()
	var errResp httperr.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&errResp))
	return errResp
}

type sseEvent struct {
	name string
	snap countdown.Snapshot
}

func parseEvents(t *testing.T, body string) []sseEvent {
	t.Helper()
	var events []sseEvent
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		var ev sseEvent
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				ev.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev.snap))
			}
		}
		events = append(events, ev)
	}
	return events
}

// TestDeliveryHandler_GetEstimate_Success verifies a same-day estimate.
func TestDeliveryHandler_GetEstimate_Success(t *testing.T) {
	products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
	pincodes := &mockPincodeProvider{info: &domain.PincodeInfo{ProviderName: "Provider A"}}
	fake := clock.NewFake(time.Date(2025, 3, 10, 11, 15, 0, 0, kolkata))
	app := newTestApp(products, pincodes, fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/estimate?pincode=560001&product_id=8", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var check service.Check
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.Equal(t, "560001", check.Pincode)
	assert.Equal(t, "Provider A", check.Provider)
	assert.True(t, check.Possibility.Possible)
	assert.Equal(t, domain.SeveritySuccess, check.Possibility.Severity)
	require.NotNil(t, check.Estimate)
	assert.True(t, check.Estimate.SameDayEligible)
	assert.Equal(t, "Monday, March 10, 2025", check.Estimate.DisplayDate)
	require.NotNil(t, check.Countdown)
	assert.Equal(t, countdown.Snapshot{Hours: 5, Minutes: 45}, *check.Countdown)
}

// TestDeliveryHandler_GetEstimate_LookupFailed verifies a failed lookup is a 200 verdict.
func TestDeliveryHandler_GetEstimate_LookupFailed(t *testing.T) {
	products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
	pincodes := &mockPincodeProvider{err: domain.ErrDeliveryUnavailable}
	app := newTestApp(products, pincodes, clock.NewFake(time.Now()))

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/estimate?pincode=999999&product_id=8", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var check service.Check
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.Nil(t, check.Estimate)
	assert.False(t, check.Possibility.Possible)
	assert.Equal(t, "Delivery not available in this area", check.Possibility.Message)
}

// TestDeliveryHandler_GetEstimate_BadRequest verifies local validation failures.
func TestDeliveryHandler_GetEstimate_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"MissingProduct", "pincode=560001", "product_id must be a positive integer"},
		{"BadProduct", "pincode=560001&product_id=x", "product_id must be a positive integer"},
		{"MissingPincode", "product_id=8", "Pincode is required"},
		{"NonNumericPincode", "pincode=56OO01&product_id=8", "Pincode must contain only numbers"},
		{"ShortPincode", "pincode=5601&product_id=8", "Pincode must be 6 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
			app := newTestApp(products, &mockPincodeProvider{}, clock.NewFake(time.Now()))

			resp, err := app.Test(httptest.NewRequest("GET", "/delivery/estimate?"+tt.query, nil))

			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			errResp := decodeError(t, resp.Body)
			assert.Equal(t, tt.message, errResp.Message)
			assert.Equal(t, "test-ray-id", errResp.RayID)
		})
	}
}

// TestDeliveryHandler_GetEstimate_ProductErrors verifies product failure mapping.
func TestDeliveryHandler_GetEstimate_ProductErrors(t *testing.T) {
	pincodes := &mockPincodeProvider{info: &domain.PincodeInfo{ProviderName: "Provider A"}}

	t.Run("NotFound", func(t *testing.T) {
		app := newTestApp(&mockProductProvider{err: catalogdomain.ErrProductNotFound}, pincodes, clock.NewFake(time.Now()))

		resp, err := app.Test(httptest.NewRequest("GET", "/delivery/estimate?pincode=560001&product_id=8", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", decodeError(t, resp.Body).Message)
	})

	t.Run("Upstream", func(t *testing.T) {
		app := newTestApp(&mockProductProvider{err: catalogdomain.ErrProductFetch}, pincodes, clock.NewFake(time.Now()))

		resp, err := app.Test(httptest.NewRequest("GET", "/delivery/estimate?pincode=560001&product_id=8", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "Failed to fetch product", decodeError(t, resp.Body).Message)
	})
}

// TestDeliveryHandler_StreamCountdown_UntilExpiry verifies the stream ticks
// down and ends with an expired event.
func TestDeliveryHandler_StreamCountdown_UntilExpiry(t *testing.T) {
	products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
	pincodes := &mockPincodeProvider{info: &domain.PincodeInfo{ProviderName: "Provider A"}}
	fake := clock.NewFake(time.Date(2025, 3, 10, 16, 59, 57, 0, kolkata))
	app := newTestApp(products, pincodes, fake)

	// Drive the fake clock once the presenter has scheduled its refresh.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(5 * time.Millisecond):
				if fake.Pending() > 0 {
					fake.Advance(time.Second)
				}
			}
		}
	}()

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/countdown?pincode=560001&product_id=8", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := parseEvents(t, string(body))

	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, EventTick, events[0].name)
	assert.Equal(t, countdown.Snapshot{Seconds: 3}, events[0].snap)

	last := events[len(events)-1]
	assert.Equal(t, EventExpired, last.name)
	assert.True(t, last.snap.Expired)

	for i := 1; i < len(events)-1; i++ {
		assert.Equal(t, EventTick, events[i].name)
		assert.Less(t, events[i].snap.Seconds, events[i-1].snap.Seconds)
	}
	assert.Zero(t, fake.Pending())
}

// TestDeliveryHandler_StreamCountdown_NoCutoff verifies a single expired
// event when same-day delivery is unavailable.
func TestDeliveryHandler_StreamCountdown_NoCutoff(t *testing.T) {
	products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
	pincodes := &mockPincodeProvider{info: &domain.PincodeInfo{ProviderName: "Provider B"}}
	fake := clock.NewFake(time.Date(2025, 3, 10, 12, 0, 0, 0, kolkata))
	app := newTestApp(products, pincodes, fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/countdown?pincode=110001&product_id=8", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := parseEvents(t, string(body))

	require.Len(t, events, 1)
	assert.Equal(t, EventExpired, events[0].name)
	assert.Equal(t, countdown.Snapshot{Expired: true}, events[0].snap)
	assert.Zero(t, fake.Pending())
}

// TestDeliveryHandler_StreamCountdown_Close verifies that closing the handler
// ends an open stream long before its cutoff and cancels its refresh.
func TestDeliveryHandler_StreamCountdown_Close(t *testing.T) {
	products := &mockProductProvider{product: &catalogdomain.Product{ID: 8, InStock: true}}
	pincodes := &mockPincodeProvider{info: &domain.PincodeInfo{ProviderName: "Provider A"}}
	fake := clock.NewFake(time.Date(2025, 3, 10, 12, 0, 0, 0, kolkata))
	app, h := newTestHandlerApp(products, pincodes, fake)

	go func() {
		for fake.Pending() == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		h.Close()
	}()

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/countdown?pincode=560001&product_id=8", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "event: "+EventExpired)
	assert.Zero(t, fake.Pending())

	h.Close()
}

// TestDeliveryHandler_StreamCountdown_BadRequest verifies errors are JSON, not a stream.
func TestDeliveryHandler_StreamCountdown_BadRequest(t *testing.T) {
	app := newTestApp(&mockProductProvider{}, &mockPincodeProvider{}, clock.NewFake(time.Now()))

	resp, err := app.Test(httptest.NewRequest("GET", "/delivery/countdown?pincode=abc&product_id=8", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Pincode must contain only numbers", decodeError(t, resp.Body).Message)
}

func TestPublishLatest(t *testing.T) {
	ch := make(chan countdown.Snapshot, 1)

	publishLatest(ch, countdown.Snapshot{Seconds: 2})
	publishLatest(ch, countdown.Snapshot{Seconds: 1})

	assert.Equal(t, countdown.Snapshot{Seconds: 1}, <-ch)
	assert.Len(t, ch, 0)
}
