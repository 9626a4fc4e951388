package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Check(t *testing.T) {
	t.Run("AllHealthy", func(t *testing.T) {
		h := NewChecker(time.Second)
		h.Register("catalog", func(ctx context.Context) error { return nil })
		h.Register("cache", func(ctx context.Context) error { return nil })

		report := h.Check(context.Background())

		assert.Equal(t, StatusOK, report.Status)
		assert.Equal(t, map[string]string{"catalog": "ok", "cache": "ok"}, report.Checks)
		assert.Equal(t, []string{"cache", "catalog"}, h.Names())
	})

	t.Run("OneFailing", func(t *testing.T) {
		h := NewChecker(time.Second)
		h.Register("catalog", func(ctx context.Context) error { return nil })
		h.Register("cache", func(ctx context.Context) error { return errors.New("connection refused") })

		report := h.Check(context.Background())

		assert.Equal(t, StatusDegraded, report.Status)
		assert.Equal(t, "connection refused", report.Checks["cache"])
		assert.Equal(t, "ok", report.Checks["catalog"])
	})

	t.Run("Timeout", func(t *testing.T) {
		h := NewChecker(20 * time.Millisecond)
		h.Register("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})

		report := h.Check(context.Background())

		assert.Equal(t, StatusDegraded, report.Status)
		assert.Equal(t, context.DeadlineExceeded.Error(), report.Checks["slow"])
	})

	t.Run("NoChecks", func(t *testing.T) {
		report := NewChecker(time.Second).Check(context.Background())
		assert.Equal(t, StatusOK, report.Status)
		assert.Empty(t, report.Checks)
	})
}

func TestChecker_Handle(t *testing.T) {
	h := NewChecker(time.Second)
	healthy := true
	h.Register("catalog", func(ctx context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("down")
	})

	app := fiber.New()
	app.Get("/healthz", h.Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	healthy = false
	resp, err = app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "down", report.Checks["catalog"])
}
