package httpclient

import (
	"net/http"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound request with its outcome and latency.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client that traces, logs and optionally proxies requests.
func NewClient(timeout time.Duration, proxySettings proxy.Settings) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.Proxy = proxySettings.ProxyFunc()

	if proxySettings.HasProxy() {
		logger.Named("httpclient").Info("Outbound proxy enabled",
			zap.String("proxy", proxySettings.HostPort()),
		)
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: otelhttp.NewTransport(base),
		},
		Timeout: timeout,
	}
}
