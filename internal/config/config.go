// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package config loads and validates application configuration.
//
// Configuration is layered with Koanf v2, highest priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or the default search paths)
//  3. Environment variables
//
// Struct tags drive both unmarshaling (koanf) and validation (validate).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Scoring  ScoringConfig  `koanf:"scoring"`
	Cache    CacheConfig    `koanf:"cache"`
	Events   EventsConfig   `koanf:"events"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"min=0"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"min=0"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the database file path; ":memory:" runs fully in memory.
	Path      string `koanf:"path" validate:"required"`
	MaxMemory string `koanf:"max_memory"`
	// Threads bounds DuckDB's worker threads. Zero means runtime.NumCPU().
	Threads      int  `koanf:"threads" validate:"min=0"`
	SeedMockData bool `koanf:"seed_mock_data"`
}

// ScoringConfig holds scoring engine tunables. It mirrors scoring.Config
// plus the default weight profile selection.
type ScoringConfig struct {
	DefaultProfile            string        `koanf:"default_profile"`
	DeliveryGraceDays         float64       `koanf:"delivery_grace_days" validate:"min=0"`
	CriticalScoreFloor        float64       `koanf:"critical_score_floor" validate:"min=0,max=100"`
	MinVolumeFloor            float64       `koanf:"min_volume_floor" validate:"min=0"`
	MinTransactions           int           `koanf:"min_transactions" validate:"min=0"`
	ExcludeNeutralOnly        bool          `koanf:"exclude_neutral_only"`
	CacheTTL                  time.Duration `koanf:"cache_ttl" validate:"min=0"`
	MaxConcurrency            int           `koanf:"max_concurrency" validate:"min=0"`
	TopPartnerCount           int           `koanf:"top_partner_count" validate:"min=0"`
	ConcentrationThresholdPct float64       `koanf:"concentration_threshold_pct" validate:"min=0,max=100"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	TTL      time.Duration `koanf:"ttl" validate:"min=0"`
	Capacity int           `koanf:"capacity" validate:"min=0"`
}

// EventsConfig holds alert event bus settings.
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`
	// BufferSize is the in-process pub/sub channel buffer.
	BufferSize int `koanf:"buffer_size" validate:"min=0"`
}

// BreakerConfig holds metrics provider circuit breaker settings.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"min=1"`
	Interval         time.Duration `koanf:"interval" validate:"min=0"`
	Timeout          time.Duration `koanf:"timeout" validate:"min=1s"`
	MaxRequests      uint32        `koanf:"max_requests" validate:"min=1"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks tag constraints plus cross-field semantics.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := c.Scoring.ToEngine().Validate(); err != nil {
		return fmt.Errorf("scoring config: %w", err)
	}
	if _, err := scoring.ResolveProfile(c.Scoring.DefaultProfile, nil); err != nil {
		return fmt.Errorf("scoring default profile: %w", err)
	}
	return nil
}

// ToEngine converts to the scoring engine's own config type.
func (s ScoringConfig) ToEngine() *scoring.Config {
	return &scoring.Config{
		DeliveryGraceDays:         s.DeliveryGraceDays,
		CriticalScoreFloor:        s.CriticalScoreFloor,
		MinVolumeFloor:            s.MinVolumeFloor,
		MinTransactions:           s.MinTransactions,
		ExcludeNeutralOnly:        s.ExcludeNeutralOnly,
		CacheTTL:                  s.CacheTTL,
		MaxConcurrency:            s.MaxConcurrency,
		TopPartnerCount:           s.TopPartnerCount,
		ConcentrationThresholdPct: s.ConcentrationThresholdPct,
	}
}
