// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package main is the entry point for the Vendorscope server.
//
// Vendorscope scores and ranks suppliers from purchase order and quality
// event history stored in DuckDB. Six performance components (price,
// delivery, quality, fulfillment, payment flexibility, responsiveness)
// are normalized to a 0-100 scale, composed under a weight profile, and
// classified into tiers and risk levels. The REST API exposes rankings,
// per-supplier scorecards, trend tracking, side-by-side comparison, and
// weight profile discovery.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load from defaults, config.yaml, and
//     environment variables (Koanf v2)
//  2. Database: DuckDB with the supplier/order/quality schema
//  3. Metrics provider: optionally wrapped in a circuit breaker
//  4. Scoring engine: component scorers, result cache, alert sink
//  5. Event bus: in-process alert publishing and consumption
//  6. HTTP server: REST API under /api/v1 plus Prometheus /metrics
//  7. Supervisor tree: suture-managed service lifecycle
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, DUCKDB_PATH, SCORING_*, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the event bus and database connection
//
// # Example Usage
//
// Development with seeded data and console logs:
//
//	export DUCKDB_PATH=:memory:
//	export SEED_MOCK_DATA=true
//	export LOG_FORMAT=console
//	./vendorscope
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vendorscope/vendorscope/internal/api"
	"github.com/vendorscope/vendorscope/internal/cache"
	"github.com/vendorscope/vendorscope/internal/config"
	"github.com/vendorscope/vendorscope/internal/database"
	"github.com/vendorscope/vendorscope/internal/events"
	"github.com/vendorscope/vendorscope/internal/logging"
	"github.com/vendorscope/vendorscope/internal/scoring"
	"github.com/vendorscope/vendorscope/internal/scoring/scorers"
	"github.com/vendorscope/vendorscope/internal/supervisor"
	"github.com/vendorscope/vendorscope/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("default_profile", cfg.Scoring.DefaultProfile).
		Msg("Starting Vendorscope")

	db, err := database.New(&cfg.Database, logging.WithComponent("database"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		if err := db.SeedMockData(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed mock data")
		}
	}

	// Wrap the provider in a circuit breaker so a degraded DuckDB file
	// fails fast instead of stalling every scoring run.
	var provider scoring.MetricsProvider = db
	if cfg.Breaker.Enabled {
		provider = scoring.NewResilientProvider(db, scoring.BreakerConfig{
			Name:             "metrics-provider",
			MaxRequests:      cfg.Breaker.MaxRequests,
			Interval:         cfg.Breaker.Interval,
			Timeout:          cfg.Breaker.Timeout,
			FailureThreshold: cfg.Breaker.FailureThreshold,
		}, logging.WithComponent("breaker"))
		logging.Info().
			Uint32("failure_threshold", cfg.Breaker.FailureThreshold).
			Dur("timeout", cfg.Breaker.Timeout).
			Msg("Metrics provider circuit breaker enabled")
	}

	engine, err := scoring.NewEngine(cfg.Scoring.ToEngine(), provider, logging.WithComponent("scoring"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create scoring engine")
	}
	for _, s := range scorers.Default() {
		engine.RegisterScorer(s)
	}

	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.New(cfg.Cache.TTL, cfg.Cache.Capacity)
		defer resultCache.Close()
		engine.SetCache(resultCache)
		logging.Info().
			Dur("ttl", cfg.Cache.TTL).
			Int("capacity", cfg.Cache.Capacity).
			Msg("Scoring result cache enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	var bus *events.Bus
	if cfg.Events.Enabled {
		bus = events.NewBus(cfg.Events.BufferSize, logging.WithComponent("events"))
		defer func() {
			if err := bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing event bus")
			}
		}()
		engine.SetAlertSink(events.NewAlertPublisher(bus.Publisher(), logging.WithComponent("alert-publisher")))
		consumer := events.NewAlertConsumer(bus.Subscriber(), logging.WithComponent("alert-consumer"))
		tree.AddMessagingService(consumer)
		logging.Info().Int("buffer_size", cfg.Events.BufferSize).Msg("Alert event bus enabled")
	}

	handler := api.NewHandler(engine, db, cfg, logging.WithComponent("api"))
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler.NewRouter(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
