// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestBreaker(inner MetricsProvider, threshold uint32) *ResilientProvider {
	return NewResilientProvider(inner, BreakerConfig{
		Name:             "test-breaker",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: threshold,
	}, zerolog.Nop())
}

func TestResilientProviderPassThrough(t *testing.T) {
	w := mustWindow(t, "2026-06-01", "2026-07-01")
	inner := &mockProvider{
		snaps:      map[string][]MetricsSnapshot{w.String(): {fullSnap("sup-a", 5, 100)}},
		deliveries: map[string][]DeliveryRecord{"sup-a": {{OrderID: "po-1"}}},
		quality:    map[string]QualityDetail{"sup-a": {ReturnCount: 2}},
	}
	p := newTestBreaker(inner, 3)

	snaps, err := p.GetSupplierMetrics(context.Background(), MetricsQuery{Window: w})
	if err != nil {
		t.Fatalf("GetSupplierMetrics() error = %v", err)
	}
	if len(snaps) != 1 || snaps[0].SupplierID != "sup-a" {
		t.Errorf("snaps = %+v, want one sup-a snapshot", snaps)
	}

	recs, err := p.GetDeliveryDetail(context.Background(), "sup-a", w)
	if err != nil || len(recs) != 1 {
		t.Errorf("GetDeliveryDetail() = %v, %v, want one record", recs, err)
	}

	qd, err := p.GetQualityDetail(context.Background(), "sup-a", w)
	if err != nil || qd.ReturnCount != 2 {
		t.Errorf("GetQualityDetail() = %+v, %v, want ReturnCount 2", qd, err)
	}

	if p.State() != "closed" {
		t.Errorf("breaker state = %s, want closed", p.State())
	}
}

func TestResilientProviderOpensAfterConsecutiveFailures(t *testing.T) {
	w := mustWindow(t, "2026-06-01", "2026-07-01")
	innerErr := errors.New("duckdb locked")
	p := newTestBreaker(&mockProvider{err: innerErr}, 2)

	// Failures below the threshold surface the inner error unchanged.
	for i := 0; i < 2; i++ {
		_, err := p.GetSupplierMetrics(context.Background(), MetricsQuery{Window: w})
		if !errors.Is(err, innerErr) {
			t.Fatalf("call %d: error = %v, want inner error", i+1, err)
		}
	}

	if p.State() != "open" {
		t.Fatalf("breaker state = %s, want open after threshold failures", p.State())
	}

	// Once open, calls fail fast with the provider sentinel.
	_, err := p.GetSupplierMetrics(context.Background(), MetricsQuery{Window: w})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("open breaker error = %v, want ErrProviderUnavailable", err)
	}
}

func TestResilientProviderDoesNotTripOnSuccess(t *testing.T) {
	w := mustWindow(t, "2026-06-01", "2026-07-01")
	inner := &mockProvider{snaps: map[string][]MetricsSnapshot{}}
	p := newTestBreaker(inner, 2)

	for i := 0; i < 10; i++ {
		if _, err := p.GetSupplierMetrics(context.Background(), MetricsQuery{Window: w}); err != nil {
			t.Fatalf("call %d: unexpected error %v", i+1, err)
		}
	}
	if p.State() != "closed" {
		t.Errorf("breaker state = %s, want closed", p.State())
	}
}
