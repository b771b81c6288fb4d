// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the metrics provider circuit breaker.
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerConfig returns conservative breaker defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "metrics-provider",
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// ResilientProvider wraps a MetricsProvider with a circuit breaker. Once the
// breaker opens after consecutive provider failures, calls fail fast with
// ErrProviderUnavailable instead of piling onto a struggling store.
type ResilientProvider struct {
	inner   MetricsProvider
	breaker *gobreaker.CircuitBreaker[any]
	logger  zerolog.Logger
}

// NewResilientProvider wraps the given provider with a circuit breaker.
func NewResilientProvider(inner MetricsProvider, cfg BreakerConfig, logger zerolog.Logger) *ResilientProvider {
	log := logger.With().Str("component", "provider_breaker").Logger()
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}
	return &ResilientProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		logger:  log,
	}
}

// State returns the breaker state for monitoring.
func (p *ResilientProvider) State() string {
	return p.breaker.State().String()
}

// GetSupplierMetrics delegates through the breaker.
func (p *ResilientProvider) GetSupplierMetrics(ctx context.Context, q MetricsQuery) ([]MetricsSnapshot, error) {
	v, err := p.execute(func() (any, error) {
		return p.inner.GetSupplierMetrics(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return v.([]MetricsSnapshot), nil
}

// GetDeliveryDetail delegates through the breaker.
func (p *ResilientProvider) GetDeliveryDetail(ctx context.Context, supplierID string, w Window) ([]DeliveryRecord, error) {
	v, err := p.execute(func() (any, error) {
		return p.inner.GetDeliveryDetail(ctx, supplierID, w)
	})
	if err != nil {
		return nil, err
	}
	return v.([]DeliveryRecord), nil
}

// GetQualityDetail delegates through the breaker.
func (p *ResilientProvider) GetQualityDetail(ctx context.Context, supplierID string, w Window) (QualityDetail, error) {
	v, err := p.execute(func() (any, error) {
		return p.inner.GetQualityDetail(ctx, supplierID, w)
	})
	if err != nil {
		return QualityDetail{}, err
	}
	return v.(QualityDetail), nil
}

// execute runs fn through the breaker, mapping open-breaker errors onto
// ErrProviderUnavailable so callers handle one sentinel.
func (p *ResilientProvider) execute(fn func() (any, error)) (any, error) {
	v, err := p.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker %s", ErrProviderUnavailable, p.breaker.State())
		}
		return nil, err
	}
	return v, nil
}
