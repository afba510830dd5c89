// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Command api is the entry point for the gallery HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Connect to Redis when configured.
//  6. Wire stores, metrics and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/thinh77/trinhminhson-sub000/internal/api"
	"github.com/thinh77/trinhminhson-sub000/internal/core/gallery"
	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/config"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/constants"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/migration"
	pgstore "github.com/thinh77/trinhminhson-sub000/internal/platform/postgres"
	redisstore "github.com/thinh77/trinhminhson-sub000/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Int("page_size", cfg.Gallery.PageSize),
		slog.Int("feed_chunk_size", cfg.Gallery.ChunkSize),
	)

	// Root context for startup. A deadline catches misconfiguration quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DBMaxConns, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	checks := []api.HealthCheck{{
		Name:  "postgres",
		Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}}

	// ── 5. Catalog store (+ optional Redis cache) ─────────────────────────
	var catalogRepository taxonomy.Repository = taxonomy.NewPostgresRepository(pool)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		catalogRepository = taxonomy.NewCachedRepository(catalogRepository, rdb, cfg.CatalogCacheTTL, log)
		checks = append(checks, api.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	} else {
		log.Warn("catalog_cache_disabled")
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	windowMetrics := window.NewMetrics(registry)

	photoFetcher := window.NewBreakerFetcher(photo.NewPostgresRepository(pool), cfg.Breaker, log)
	checks = append(checks, api.HealthCheck{
		Name: "photo_store_breaker",
		Check: func(context.Context) error {
			if photoFetcher.State() == gobreaker.StateOpen {
				return errors.New("circuit open")
			}
			return nil
		},
	})

	catalogService := taxonomy.NewService(catalogRepository, log)
	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Categories: taxonomy.NewHandler(catalogService),
		Photos:     gallery.NewHandler(catalogService, photoFetcher, cfg.Gallery, windowMetrics),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
