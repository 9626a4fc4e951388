package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"storefront/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "unavailable"
)

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// Report is the readiness result.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Checker runs the registered dependency probes.
type Checker struct {
	timeout time.Duration

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewChecker creates a Checker whose probes share timeout.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		timeout: timeout,
		checks:  make(map[string]CheckFunc),
	}
}

// Register adds a probe under name, replacing any previous one.
func (h *Checker) Register(name string, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = fn
}

// Names returns the registered probe names in order.
func (h *Checker) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs every probe concurrently.
func (h *Checker) Check(ctx context.Context) Report {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, fn := range h.checks {
		checks[name] = fn
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var mu sync.Mutex
	report := Report{Status: StatusOK, Checks: make(map[string]string, len(checks))}

	var g errgroup.Group
	for name, fn := range checks {
		g.Go(func() error {
			result := StatusOK
			if err := fn(ctx); err != nil {
				logger.Get().Warn("Health check failed", zap.String("check", name), zap.Error(err))
				result = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checks[name] = result
			if result != StatusOK {
				report.Status = StatusDegraded
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}

// Handle serves GET /healthz.
// @Summary Readiness probe
// @Description Reports whether the storefront API and the cache are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /healthz [get]
func (h *Checker) Handle(c *fiber.Ctx) error {
	report := h.Check(c.UserContext())

	status := http.StatusOK
	if report.Status != StatusOK {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}
