package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockdash/config"
	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/api"
	"github.com/guttosm/stockdash/internal/cache"
	"github.com/guttosm/stockdash/internal/provider"
	"github.com/guttosm/stockdash/internal/service"
)

// providerCtor is an indirection for creating the market-data provider;
// overridden in tests to avoid real network calls.
var providerCtor = func(cfg config.Config) provider.History {
	return provider.NewYahooProvider(cfg.Provider.BaseURL, cfg.Provider.Timeout, cfg.Provider.MaxParallel)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market-data provider from configuration.
//   - Builds the TTL result cache.
//   - Wires aggregator, service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes (readiness pings the provider).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Market-data provider (external collaborator)
	hist := providerCtor(cfg)

	// Advisory TTL cache over aggregation results
	resultCache := cache.NewTTL(cfg.Cache.MaxEntries, cfg.Cache.TTL)

	// Core aggregation layer
	agg := aggregator.New(hist)

	// Business service layer
	svc := service.NewDashboardService(agg, resultCache)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hist.Ping(ctx)
	})
	healthHandler.Register(router)

	// No pooled resources to release; kept for symmetry with callers.
	cleanup := func() {}

	return router, cleanup, nil
}
