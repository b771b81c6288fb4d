// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// DefaultConfigPaths lists where config files are searched, first hit wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/vendorscope/config.yaml",
	"/etc/vendorscope/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults. They are applied first and
// overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8093,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Database: DatabaseConfig{
			Path:         "/data/vendorscope.duckdb",
			MaxMemory:    "2GB",
			Threads:      0,
			SeedMockData: false,
		},
		Scoring: ScoringConfig{
			DefaultProfile:            scoring.DefaultProfile,
			DeliveryGraceDays:         1,
			CriticalScoreFloor:        30,
			MinVolumeFloor:            10000,
			MinTransactions:           3,
			ExcludeNeutralOnly:        false,
			CacheTTL:                  5 * time.Minute,
			MaxConcurrency:            8,
			TopPartnerCount:           3,
			ConcentrationThresholdPct: 70,
		},
		Cache: CacheConfig{
			Enabled:  true,
			TTL:      5 * time.Minute,
			Capacity: 256,
		},
		Events: EventsConfig{
			Enabled:    true,
			BufferSize: 64,
		},
		Breaker: BreakerConfig{
			Enabled:          true,
			FailureThreshold: 5,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			MaxRequests:      3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from layered sources: defaults, then an
// optional YAML file, then environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or empty.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via
// environment variables.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to config paths.
// Unmapped variables are dropped so arbitrary environment variables never
// pollute the configuration.
func envTransformFunc(key string) string {
	envMappings := map[string]string{
		"HTTP_HOST":           "server.host",
		"HTTP_PORT":           "server.port",
		"HTTP_TIMEOUT":        "server.timeout",
		"SHUTDOWN_TIMEOUT":    "server.shutdown_timeout",
		"CORS_ORIGINS":        "server.cors_origins",
		"RATE_LIMIT_REQUESTS": "server.rate_limit_reqs",
		"RATE_LIMIT_WINDOW":   "server.rate_limit_window",

		"DUCKDB_PATH":       "database.path",
		"DUCKDB_MAX_MEMORY": "database.max_memory",
		"DUCKDB_THREADS":    "database.threads",
		"SEED_MOCK_DATA":    "database.seed_mock_data",

		"SCORING_DEFAULT_PROFILE":      "scoring.default_profile",
		"SCORING_DELIVERY_GRACE_DAYS":  "scoring.delivery_grace_days",
		"SCORING_CRITICAL_SCORE_FLOOR": "scoring.critical_score_floor",
		"SCORING_MIN_VOLUME_FLOOR":     "scoring.min_volume_floor",
		"SCORING_MIN_TRANSACTIONS":     "scoring.min_transactions",
		"SCORING_EXCLUDE_NEUTRAL_ONLY": "scoring.exclude_neutral_only",
		"SCORING_CACHE_TTL":            "scoring.cache_ttl",
		"SCORING_MAX_CONCURRENCY":      "scoring.max_concurrency",
		"SCORING_TOP_PARTNER_COUNT":    "scoring.top_partner_count",
		"SCORING_CONCENTRATION_PCT":    "scoring.concentration_threshold_pct",

		"CACHE_ENABLED":  "cache.enabled",
		"CACHE_TTL":      "cache.ttl",
		"CACHE_CAPACITY": "cache.capacity",

		"EVENTS_ENABLED":     "events.enabled",
		"EVENTS_BUFFER_SIZE": "events.buffer_size",

		"BREAKER_ENABLED":           "breaker.enabled",
		"BREAKER_FAILURE_THRESHOLD": "breaker.failure_threshold",
		"BREAKER_INTERVAL":          "breaker.interval",
		"BREAKER_TIMEOUT":           "breaker.timeout",
		"BREAKER_MAX_REQUESTS":      "breaker.max_requests",

		"LOG_LEVEL":  "logging.level",
		"LOG_FORMAT": "logging.format",
		"LOG_CALLER": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
