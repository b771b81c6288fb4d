// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"fmt"
	"time"
)

// Config contains all tunables for the scoring engine.
type Config struct {
	// DeliveryGraceDays is the delay threshold within which a delivery
	// still counts as on time.
	DeliveryGraceDays float64 `json:"delivery_grace_days"`

	// CriticalScoreFloor is the component score below which the tier
	// classifier forces probation regardless of composite score.
	CriticalScoreFloor float64 `json:"critical_score_floor"`

	// MinVolumeFloor is the total transacted value below which the risk
	// assessor counts a volume risk factor.
	MinVolumeFloor float64 `json:"min_volume_floor"`

	// MinTransactions excludes suppliers with fewer transactions from
	// ranking runs to avoid statistically meaningless scores.
	MinTransactions int `json:"min_transactions"`

	// ExcludeNeutralOnly drops suppliers whose every component score fell
	// back to neutral from ranked sets. Disabled by default: sparse-history
	// suppliers stay rankable at the neutral composite.
	ExcludeNeutralOnly bool `json:"exclude_neutral_only"`

	// CacheTTL bounds the lifetime of cached pipeline results. Staleness
	// within the TTL is an accepted trade-off, not a correctness issue.
	CacheTTL time.Duration `json:"cache_ttl"`

	// MaxConcurrency bounds the per-run supplier scoring fan-out.
	// Zero means no bound.
	MaxConcurrency int `json:"max_concurrency"`

	// TopPartnerCount caps the strategic-partnership recommendation.
	TopPartnerCount int `json:"top_partner_count"`

	// ConcentrationThresholdPct triggers the diversification warning when
	// this share of the set sits in the top tier.
	ConcentrationThresholdPct float64 `json:"concentration_threshold_pct"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		DeliveryGraceDays:         1,
		CriticalScoreFloor:        30,
		MinVolumeFloor:            10000,
		MinTransactions:           3,
		ExcludeNeutralOnly:        false,
		CacheTTL:                  5 * time.Minute,
		MaxConcurrency:            8,
		TopPartnerCount:           3,
		ConcentrationThresholdPct: 70,
	}
}

// Validate checks config invariants.
func (c *Config) Validate() error {
	if c.DeliveryGraceDays < 0 {
		return fmt.Errorf("delivery_grace_days must be non-negative, got %v", c.DeliveryGraceDays)
	}
	if c.CriticalScoreFloor < 0 || c.CriticalScoreFloor > 100 {
		return fmt.Errorf("critical_score_floor must be in [0,100], got %v", c.CriticalScoreFloor)
	}
	if c.MinVolumeFloor < 0 {
		return fmt.Errorf("min_volume_floor must be non-negative, got %v", c.MinVolumeFloor)
	}
	if c.MinTransactions < 0 {
		return fmt.Errorf("min_transactions must be non-negative, got %d", c.MinTransactions)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative, got %d", c.MaxConcurrency)
	}
	if c.TopPartnerCount < 0 {
		return fmt.Errorf("top_partner_count must be non-negative, got %d", c.TopPartnerCount)
	}
	if c.ConcentrationThresholdPct < 0 || c.ConcentrationThresholdPct > 100 {
		return fmt.Errorf("concentration_threshold_pct must be in [0,100], got %v", c.ConcentrationThresholdPct)
	}
	return nil
}
