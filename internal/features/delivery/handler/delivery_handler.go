package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"storefront/internal/core/httperr"
	"storefront/internal/core/logger"
	catalogdomain "storefront/internal/features/catalog/domain"
	"storefront/internal/features/delivery/countdown"
	"storefront/internal/features/delivery/domain"
	"storefront/internal/features/delivery/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SSE event names.
const (
	EventTick    = "tick"
	EventExpired = "expired"
)

// DeliveryHandler handles HTTP requests for delivery estimates.
type DeliveryHandler struct {
	// service is the DeliveryService instance.
	service *service.DeliveryService
	// closing is closed by Close to end open countdown streams.
	closing   chan struct{}
	closeOnce sync.Once
}

// NewDeliveryHandler creates a new instance of DeliveryHandler.
func NewDeliveryHandler(s *service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		service: s,
		closing: make(chan struct{}),
	}
}

// Close ends every open countdown stream and releases its timer. Call it
// before shutting the server down; later calls are no-ops.
func (h *DeliveryHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}

// GetEstimate handles GET /delivery/estimate.
// @Summary Estimate delivery
// @Description Evaluates the delivery promise for a product shipped to a pincode.
// @Tags Delivery
// @Produce json
// @Param pincode query string true "Six-digit pincode"
// @Param product_id query int true "Product ID"
// @Success 200 {object} service.Check
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 502 {object} httperr.ErrorResponse
// @Router /delivery/estimate [get]
func (h *DeliveryHandler) GetEstimate(c *fiber.Ctx) error {
	check, err := h.check(c)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(check)
}

// StreamCountdown handles GET /delivery/countdown.
// @Summary Stream the same-day countdown
// @Description Server-sent events with the time left to the same-day cutoff, one per second.
// @Description The stream ends with an "expired" event once the cutoff passes, or immediately
// @Description when same-day delivery is not available.
// @Tags Delivery
// @Produce text/event-stream
// @Param pincode query string true "Six-digit pincode"
// @Param product_id query int true "Product ID"
// @Success 200 {object} countdown.Snapshot
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 502 {object} httperr.ErrorResponse
// @Router /delivery/countdown [get]
func (h *DeliveryHandler) StreamCountdown(c *fiber.Ctx) error {
	check, err := h.check(c)
	if err != nil {
		return h.respondError(c, err)
	}

	cutoff := check.Cutoff()
	clk := h.service.Clock()
	rayID := httperr.RayID(c)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		log := logger.Named("countdown").With(zap.String("ray_id", rayID))

		if cutoff == nil {
			if err := writeEvent(w, countdown.Remaining(nil, clk.Now())); err != nil {
				log.Debug("Countdown client went away", zap.Error(err))
			}
			return
		}

		updates := make(chan countdown.Snapshot, 1)
		session := countdown.NewSession(clk, func(s countdown.Snapshot) {
			publishLatest(updates, s)
		})
		defer session.Close()

		session.Replace(cutoff)
		for {
			select {
			case snap := <-updates:
				if err := writeEvent(w, snap); err != nil {
					log.Debug("Countdown client went away", zap.Error(err))
					return
				}
				if snap.Expired {
					return
				}
			case <-h.closing:
				log.Debug("Countdown stream closed for shutdown")
				return
			}
		}
	})

	return nil
}

func (h *DeliveryHandler) check(c *fiber.Ctx) (*service.Check, error) {
	productID := c.QueryInt("product_id", 0)
	if productID <= 0 {
		return nil, errInvalidProductID
	}
	return h.service.Check(c.UserContext(), c.Query("pincode"), productID)
}

var errInvalidProductID = errors.New("product_id must be a positive integer")

func (h *DeliveryHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidProductID),
		errors.Is(err, domain.ErrPincodeRequired),
		errors.Is(err, domain.ErrPincodeNotNumeric),
		errors.Is(err, domain.ErrPincodeLength):
		return httperr.Respond(c, http.StatusBadRequest, err.Error())
	}

	logger.Get().Error("Failed to check delivery",
		zap.String("pincode", c.Query("pincode")),
		zap.String("product_id", c.Query("product_id")),
		zap.String("ray_id", httperr.RayID(c)),
		zap.Error(err),
	)

	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		return httperr.Respond(c, http.StatusNotFound, "Product not found")
	}
	return httperr.Respond(c, http.StatusBadGateway, catalogdomain.ErrProductFetch.Error())
}

// publishLatest hands s to the stream without blocking the presenter,
// replacing an unsent older snapshot.
func publishLatest(ch chan countdown.Snapshot, s countdown.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// writeEvent writes one SSE event and flushes it to the client.
func writeEvent(w *bufio.Writer, s countdown.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	event := EventTick
	if s.Expired {
		event = EventExpired
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
