package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/core/cache"
	"storefront/internal/core/clock"
	"storefront/internal/core/config"
	"storefront/internal/core/health"
	"storefront/internal/core/httpclient"
	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"
	"storefront/internal/core/server"
	"storefront/internal/core/telemetry"
	cartdomain "storefront/internal/features/cart/domain"
	carthandler "storefront/internal/features/cart/handler"
	cartservice "storefront/internal/features/cart/service"
	catalogadapter "storefront/internal/features/catalog/adapters"
	cataloghandler "storefront/internal/features/catalog/handler"
	catalogservice "storefront/internal/features/catalog/service"
	deliveryhandler "storefront/internal/features/delivery/handler"
	deliveryservice "storefront/internal/features/delivery/service"

	"go.uber.org/zap"
)

// @title Storefront API
// @version 1.0
// @description Product catalog, carts and delivery estimates for the storefront.
// @contact.name API Support
// @contact.email support@storefront.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("timezone", cfg.Timezone),
	)

	shutdownTracing, err := telemetry.Init(cfg.TracingEnabled)
	if err != nil {
		l.Fatal("Failed to init tracing", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checker := health.NewChecker(5 * time.Second)

	// Optional pincode cache
	var adapterOpts []catalogadapter.Option
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "storefront")
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Redis unreachable, pincode lookups will not be cached until it recovers", zap.Error(err))
		} else {
			l.Info("Redis connection verified")
		}

		adapterOpts = append(adapterOpts, catalogadapter.WithCache(redisCache, cfg.Redis.PincodeTTL()))
		checker.Register("cache", redisCache.Ping)
	}

	// Initialize Storefront API Adapter and run Health Check
	client := httpclient.NewClient(cfg.Catalog.Timeout(), proxy.FromConfig(cfg.Proxy))
	apiAdapter := catalogadapter.NewStorefrontAPIAdapter(cfg.Catalog.URL, client, adapterOpts...)
	if err := apiAdapter.HealthCheck(ctx); err != nil {
		l.Fatal("Storefront API Health Check Failed", zap.Error(err))
	}
	l.Info("Storefront API connection verified")
	checker.Register("catalog", apiAdapter.HealthCheck)

	// Initialize Services & Handlers
	clk := clock.InLocation(clock.Real{}, cfg.Location())

	productService := catalogservice.NewProductService(apiAdapter)
	productHandler := cataloghandler.NewProductHandler(productService)

	deliveryService := deliveryservice.NewDeliveryService(apiAdapter, apiAdapter, clk)
	deliveryHandler := deliveryhandler.NewDeliveryHandler(deliveryService)

	cartService := cartservice.NewCartService(cartdomain.NewRegistry(), apiAdapter, deliveryService)
	cartHandler := carthandler.NewCartHandler(cartService)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/healthz", checker.Handle)

	srv.App.Get("/products", productHandler.ListProducts)
	srv.App.Get("/products/:id", productHandler.GetProduct)

	srv.App.Get("/delivery/estimate", deliveryHandler.GetEstimate)
	srv.App.Get("/delivery/countdown", deliveryHandler.StreamCountdown)

	srv.App.Post("/carts", cartHandler.Create)
	srv.App.Get("/carts/:id", cartHandler.Get)
	srv.App.Delete("/carts/:id", cartHandler.Delete)
	srv.App.Post("/carts/:id/items", cartHandler.AddItem)
	srv.App.Delete("/carts/:id/items", cartHandler.Clear)
	srv.App.Put("/carts/:id/items/:productId", cartHandler.SetQuantity)
	srv.App.Delete("/carts/:id/items/:productId", cartHandler.RemoveItem)
	srv.App.Get("/carts/:id/checkout", cartHandler.Checkout)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Open countdown streams would otherwise hold the server until the timeout.
	deliveryHandler.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		l.Error("Tracer shutdown failed", zap.Error(err))
	}
	l.Info("Application stopped")
}
