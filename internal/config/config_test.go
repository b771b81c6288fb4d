// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("built-in defaults must validate, got %v", err)
	}
	if cfg.Server.Port != 8093 {
		t.Errorf("default port = %d, want 8093", cfg.Server.Port)
	}
	if cfg.Scoring.DefaultProfile != "balanced" {
		t.Errorf("default profile = %q, want balanced", cfg.Scoring.DefaultProfile)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 99999 }, true},
		{"empty database path", func(c *Config) { c.Database.Path = "" }, true},
		{"in-memory database path", func(c *Config) { c.Database.Path = ":memory:" }, false},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"negative grace days", func(c *Config) { c.Scoring.DeliveryGraceDays = -1 }, true},
		{"critical floor out of range", func(c *Config) { c.Scoring.CriticalScoreFloor = 150 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScoringConfigToEngine(t *testing.T) {
	cfg := defaultConfig()
	engineCfg := cfg.Scoring.ToEngine()

	if engineCfg.DeliveryGraceDays != cfg.Scoring.DeliveryGraceDays {
		t.Errorf("grace days = %v, want %v", engineCfg.DeliveryGraceDays, cfg.Scoring.DeliveryGraceDays)
	}
	if engineCfg.MinTransactions != cfg.Scoring.MinTransactions {
		t.Errorf("min transactions = %d, want %d", engineCfg.MinTransactions, cfg.Scoring.MinTransactions)
	}
	if err := engineCfg.Validate(); err != nil {
		t.Errorf("converted engine config must validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"SCORING_DEFAULT_PROFILE", "scoring.default_profile"},
		{"BREAKER_ENABLED", "breaker.enabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_UNMAPPED_VAR", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9911")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("SCORING_DEFAULT_PROFILE", "cost")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9911 {
		t.Errorf("port = %d, want 9911", cfg.Server.Port)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("db path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Scoring.DefaultProfile != "cost" {
		t.Errorf("profile = %q, want cost", cfg.Scoring.DefaultProfile)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("cors origins = %v, want two trimmed origins", cfg.Server.CORSOrigins)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "extremely-verbose")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("server:\n  port: 9555\nscoring:\n  min_transactions: 7\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9555 {
		t.Errorf("port = %d, want 9555 from file", cfg.Server.Port)
	}
	if cfg.Scoring.MinTransactions != 7 {
		t.Errorf("min transactions = %d, want 7 from file", cfg.Scoring.MinTransactions)
	}
	// Untouched values keep defaults.
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache ttl = %v, want default 5m", cfg.Cache.TTL)
	}
}

func TestFindConfigFileEnvOverride(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/nonexistent/config.yaml")
	// Missing override falls through to the default search paths without
	// erroring.
	_ = findConfigFile()
}
