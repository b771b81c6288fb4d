// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"strings"
	"testing"
	"time"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

func assertNeutral(t *testing.T, r Result) {
	t.Helper()
	if r.Score != scoring.NeutralScore {
		t.Errorf("score = %v, want neutral %v", r.Score, scoring.NeutralScore)
	}
	if !strings.HasPrefix(r.Rationale, "neutral") {
		t.Errorf("rationale = %q, want neutral annotation", r.Rationale)
	}
}

func assertInRange(t *testing.T, r Result) {
	t.Helper()
	if r.Score < 0 || r.Score > 100 {
		t.Errorf("score %v outside [0,100]", r.Score)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		avgValue float64
		peerMean float64
		want     float64
	}{
		{"far below peers", 70, 100, 100},
		{"just below peers", 85, 100, 85},
		{"at peer mean", 100, 100, 75},
		{"slightly above peers", 108, 100, 60},
		{"well above peers", 115, 100, 40},
		{"far above peers", 150, 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := scoring.MetricsSnapshot{AvgOrderValue: tt.avgValue}
			got := Price(snap, tt.peerMean)
			if got.Score != tt.want {
				t.Errorf("Price() = %v, want %v", got.Score, tt.want)
			}
			if got.Rationale == "" {
				t.Error("rationale must not be empty")
			}
		})
	}

	t.Run("no order value is neutral", func(t *testing.T) {
		assertNeutral(t, Price(scoring.MetricsSnapshot{}, 100))
	})

	t.Run("no peer data is neutral", func(t *testing.T) {
		assertNeutral(t, Price(scoring.MetricsSnapshot{AvgOrderValue: 100}, 0))
	})
}

func deliverySnap(delays ...float64) scoring.MetricsSnapshot {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	recs := make([]scoring.DeliveryRecord, len(delays))
	for i, d := range delays {
		recs[i] = scoring.DeliveryRecord{
			OrderID:     "po",
			ExpectedAt:  base,
			DeliveredAt: base.Add(time.Duration(d * 24 * float64(time.Hour))),
		}
	}
	return scoring.MetricsSnapshot{Deliveries: recs}
}

func TestDelivery(t *testing.T) {
	const grace = 1.0

	t.Run("perfect record scores 100", func(t *testing.T) {
		// All on time, zero delay, zero spread: 60 + 25 + 15.
		got := Delivery(deliverySnap(0, 0, 0, 0), grace)
		if got.Score != 100 {
			t.Errorf("Delivery() = %v, want 100", got.Score)
		}
	})

	t.Run("grace days count as on time", func(t *testing.T) {
		onGrace := Delivery(deliverySnap(1, 1, 1, 1), grace)
		pastGrace := Delivery(deliverySnap(1.5, 1.5, 1.5, 1.5), grace)
		if onGrace.Score <= pastGrace.Score {
			t.Errorf("within-grace %v should beat past-grace %v", onGrace.Score, pastGrace.Score)
		}
	})

	t.Run("chronic delays score low", func(t *testing.T) {
		got := Delivery(deliverySnap(10, 12, 8, 15), grace)
		// 0% on time (20) + mean delay >7d (5) + wide spread.
		if got.Score > 35 {
			t.Errorf("Delivery() = %v, want <= 35 for chronic delays", got.Score)
		}
		assertInRange(t, got)
	})

	t.Run("aggregated stats fallback", func(t *testing.T) {
		snap := scoring.MetricsSnapshot{DeliveryStats: &scoring.DeliveryStats{
			TotalCount:      20,
			OnTimeCount:     19,
			MeanDelayDays:   0.5,
			DelayStdDevDays: 0.4,
		}}
		got := Delivery(snap, grace)
		// 95% on time (60) + delay <=1d (20) + stddev <=0.5 (15).
		if got.Score != 95 {
			t.Errorf("Delivery() = %v, want 95", got.Score)
		}
	})

	t.Run("records take precedence over stats", func(t *testing.T) {
		snap := deliverySnap(0, 0)
		snap.DeliveryStats = &scoring.DeliveryStats{TotalCount: 10, OnTimeCount: 0, MeanDelayDays: 30}
		got := Delivery(snap, grace)
		if got.Score != 100 {
			t.Errorf("Delivery() = %v, want 100 from per-transaction records", got.Score)
		}
	})

	t.Run("no data is neutral", func(t *testing.T) {
		assertNeutral(t, Delivery(scoring.MetricsSnapshot{}, grace))
	})
}

func TestQuality(t *testing.T) {
	t.Run("clean record with volume earns bonus capped at 100", func(t *testing.T) {
		got := Quality(scoring.MetricsSnapshot{OrderCount: 20})
		if got.Score != 100 {
			t.Errorf("Quality() = %v, want 100", got.Score)
		}
	})

	t.Run("clean record below bonus volume", func(t *testing.T) {
		got := Quality(scoring.MetricsSnapshot{OrderCount: 5})
		if got.Score != 100 {
			t.Errorf("Quality() = %v, want 100", got.Score)
		}
	})

	t.Run("heavy returns", func(t *testing.T) {
		// 15% return rate: -40.
		got := Quality(scoring.MetricsSnapshot{OrderCount: 100, ReturnCount: 15})
		if got.Score != 60 {
			t.Errorf("Quality() = %v, want 60", got.Score)
		}
	})

	t.Run("returns and adjustments stack", func(t *testing.T) {
		// 6% returns (-25) and 3% adjustments (-8).
		got := Quality(scoring.MetricsSnapshot{OrderCount: 100, ReturnCount: 6, AdjustmentCount: 3})
		if got.Score != 67 {
			t.Errorf("Quality() = %v, want 67", got.Score)
		}
	})

	t.Run("defects block the bonus", func(t *testing.T) {
		got := Quality(scoring.MetricsSnapshot{OrderCount: 20, DefectCount: 1})
		if got.Score != 100-0 {
			// No rate penalty, but no bonus either: base 100.
			t.Errorf("Quality() = %v, want 100", got.Score)
		}
	})

	t.Run("no transactions is neutral", func(t *testing.T) {
		assertNeutral(t, Quality(scoring.MetricsSnapshot{}))
	})
}

func TestFulfillment(t *testing.T) {
	t.Run("established high-volume supplier", func(t *testing.T) {
		got := Fulfillment(scoring.MetricsSnapshot{
			OrderCount:           60,
			AvgOrderIntervalDays: 5,
			UniqueProducts:       12,
			TotalValue:           500000,
		})
		// 70 + 25 + 25 + 10 + 5, capped at 100.
		if got.Score != 100 {
			t.Errorf("Fulfillment() = %v, want 100", got.Score)
		}
	})

	t.Run("sparse supplier", func(t *testing.T) {
		got := Fulfillment(scoring.MetricsSnapshot{
			OrderCount:     2,
			UniqueProducts: 1,
			TotalValue:     500,
		})
		// 70 + 5 + 0 (no interval) + 2 + 5 = 82.
		if got.Score != 82 {
			t.Errorf("Fulfillment() = %v, want 82", got.Score)
		}
	})

	t.Run("irregular ordering scores below regular", func(t *testing.T) {
		regular := Fulfillment(scoring.MetricsSnapshot{OrderCount: 20, AvgOrderIntervalDays: 6, TotalValue: 1000})
		irregular := Fulfillment(scoring.MetricsSnapshot{OrderCount: 20, AvgOrderIntervalDays: 90, TotalValue: 1000})
		if regular.Score <= irregular.Score {
			t.Errorf("regular %v should beat irregular %v", regular.Score, irregular.Score)
		}
	})

	t.Run("no transactions is neutral", func(t *testing.T) {
		assertNeutral(t, Fulfillment(scoring.MetricsSnapshot{}))
	})
}

func TestPayment(t *testing.T) {
	t.Run("generous terms", func(t *testing.T) {
		got := Payment(scoring.MetricsSnapshot{
			PaymentTermDays:      60,
			CreditLimit:          150000,
			PaymentMethods:       []string{"wire", "card", "ach"},
			EarlyPaymentDiscount: true,
		})
		// 50 + 30 + 15 + 10 + 5, capped at 100.
		if got.Score != 100 {
			t.Errorf("Payment() = %v, want 100", got.Score)
		}
	})

	t.Run("minimal terms", func(t *testing.T) {
		got := Payment(scoring.MetricsSnapshot{PaymentTermDays: 7})
		// 50 + 10.
		if got.Score != 60 {
			t.Errorf("Payment() = %v, want 60", got.Score)
		}
	})

	t.Run("early discount beats none", func(t *testing.T) {
		with := Payment(scoring.MetricsSnapshot{PaymentTermDays: 30, EarlyPaymentDiscount: true})
		without := Payment(scoring.MetricsSnapshot{PaymentTermDays: 30})
		if with.Score-without.Score != 15 {
			t.Errorf("discount bonus = %v, want 15", with.Score-without.Score)
		}
	})

	t.Run("no terms on record is neutral", func(t *testing.T) {
		assertNeutral(t, Payment(scoring.MetricsSnapshot{}))
	})
}

func float64Ptr(v float64) *float64 { return &v }

func TestResponse(t *testing.T) {
	tests := []struct {
		name string
		days float64
		want float64
	}{
		{"within an hour", 0.02, 100},
		{"next day", 1.5, 90},
		{"within five days", 4, 75},
		{"within ten days", 9, 60},
		{"two weeks", 13, 35},
		{"very slow floors at 30", 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := scoring.MetricsSnapshot{AvgResponseDays: float64Ptr(tt.days)}
			got := Response(snap)
			if got.Score != tt.want {
				t.Errorf("Response(%v) = %v, want %v", tt.days, got.Score, tt.want)
			}
		})
	}

	t.Run("unknown turnaround is neutral", func(t *testing.T) {
		assertNeutral(t, Response(scoring.MetricsSnapshot{}))
	})
}

func TestDefaultRegistry(t *testing.T) {
	defaults := Default()
	if len(defaults) != 6 {
		t.Fatalf("Default() returned %d scorers, want 6", len(defaults))
	}

	seen := make(map[scoring.Component]bool)
	for _, s := range defaults {
		if seen[s.Component()] {
			t.Errorf("duplicate scorer for %s", s.Component())
		}
		seen[s.Component()] = true
	}
	for _, comp := range scoring.Components() {
		if !seen[comp] {
			t.Errorf("no scorer registered for %s", comp)
		}
	}

	// Every scorer handles an empty snapshot without panicking and stays
	// within the score range.
	env := scoring.ScoreEnv{PeerMean: 100, GraceDays: 1}
	for _, s := range defaults {
		score, rationale := s.Score(scoring.MetricsSnapshot{}, env)
		if score < 0 || score > 100 {
			t.Errorf("%s: score %v outside [0,100]", s.Component(), score)
		}
		if rationale == "" {
			t.Errorf("%s: empty rationale", s.Component())
		}
	}
}

func TestBandHelpers(t *testing.T) {
	floors := []floorBand{{Lower: 90, Points: 10}, {Lower: 50, Points: 5}, {Lower: 0, Points: 1}}
	if got := lookupFloor(floors, 95); got != 10 {
		t.Errorf("lookupFloor(95) = %v, want 10", got)
	}
	if got := lookupFloor(floors, 50); got != 5 {
		t.Errorf("lookupFloor(50) = %v, want 5 (inclusive bound)", got)
	}
	if got := lookupFloor(floors, -1); got != 0 {
		t.Errorf("lookupFloor(-1) = %v, want 0", got)
	}

	ceils := []ceilBand{{Upper: 1, Points: 10}, {Upper: 5, Points: 5}}
	if got := lookupCeil(ceils, 1, 0); got != 10 {
		t.Errorf("lookupCeil(1) = %v, want 10 (inclusive bound)", got)
	}
	if got := lookupCeil(ceils, 3, 0); got != 5 {
		t.Errorf("lookupCeil(3) = %v, want 5", got)
	}
	if got := lookupCeil(ceils, 100, 2); got != 2 {
		t.Errorf("lookupCeil(100) = %v, want fallback 2", got)
	}
}
