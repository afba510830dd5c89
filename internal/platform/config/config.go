// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Page and chunk sizes live here because they are deployment-time choices, not
runtime state.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for the gallery API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Empty disables the catalog cache.
	RedisURL        string        `env:"REDIS_URL"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	// Gallery windowing
	Gallery GalleryConfig `envPrefix:"GALLERY_"`

	// Photo store circuit breaker
	Breaker BreakerConfig `envPrefix:"FETCH_BREAKER_"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// GalleryConfig sizes the two windowing strategies.
type GalleryConfig struct {
	PageSize  int `env:"PAGE_SIZE"        envDefault:"45"`
	ChunkSize int `env:"FEED_CHUNK_SIZE"  envDefault:"3"`
}

// BreakerConfig tunes the circuit breaker in front of the photo store.
type BreakerConfig struct {
	MaxRequests      uint32        `env:"MAX_REQUESTS"       envDefault:"3"`
	Interval         time.Duration `env:"INTERVAL"           envDefault:"1m"`
	Timeout          time.Duration `env:"TIMEOUT"            envDefault:"30s"`
	MinRequests      uint32        `env:"MIN_REQUESTS"       envDefault:"10"`
	FailureThreshold float64       `env:"FAILURE_THRESHOLD"  envDefault:"0.6"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks the ranges the environment parser cannot express.
func (c *Config) Validate() error {
	v := &validate.Validator{}
	return v.
		Range("GALLERY_PAGE_SIZE", c.Gallery.PageSize, 1, 500).
		Range("GALLERY_FEED_CHUNK_SIZE", c.Gallery.ChunkSize, 1, 500).
		Between("FETCH_BREAKER_FAILURE_THRESHOLD", c.Breaker.FailureThreshold, 0, 1).
		OneOf("ENVIRONMENT", c.Environment, "development", "staging", "production").
		Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
