// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// End-to-end scenarios through the real component scorers, from the
// external package so the scorers registry can be imported.
package scoring_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vendorscope/vendorscope/internal/scoring"
	"github.com/vendorscope/vendorscope/internal/scoring/scorers"
)

type scenarioProvider struct {
	snaps []scoring.MetricsSnapshot
}

func (p *scenarioProvider) GetSupplierMetrics(_ context.Context, q scoring.MetricsQuery) ([]scoring.MetricsSnapshot, error) {
	var out []scoring.MetricsSnapshot
	for _, s := range p.snaps {
		if s.OrderCount >= q.MinTransactions {
			out = append(out, s)
		}
	}
	return out, nil
}

func (p *scenarioProvider) GetDeliveryDetail(context.Context, string, scoring.Window) ([]scoring.DeliveryRecord, error) {
	return nil, nil
}

func (p *scenarioProvider) GetQualityDetail(context.Context, string, scoring.Window) (scoring.QualityDetail, error) {
	return scoring.QualityDetail{}, nil
}

func scenarioEngine(t *testing.T, snaps ...scoring.MetricsSnapshot) *scoring.Engine {
	t.Helper()
	cfg := &scoring.Config{
		DeliveryGraceDays:         1,
		CriticalScoreFloor:        30,
		MinVolumeFloor:            10000,
		MinTransactions:           3,
		MaxConcurrency:            4,
		TopPartnerCount:           3,
		ConcentrationThresholdPct: 70,
	}
	engine, err := scoring.NewEngine(cfg, &scenarioProvider{snaps: snaps}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	for _, s := range scorers.Default() {
		engine.RegisterScorer(s)
	}
	return engine
}

func scenarioWindow() scoring.Window {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return scoring.Window{From: from, To: from.AddDate(0, 3, 0)}
}

// A supplier with near-perfect delivery, clean quality history, dense
// regular ordering, and generous commercial terms lands in the premium
// tier with minimal risk.
func TestScenarioStrongSupplier(t *testing.T) {
	resp := 1.5
	strong := scoring.MetricsSnapshot{
		SupplierID: "sup-strong", Name: "Strong Industrial",
		OrderCount: 50, TotalValue: 50000, AvgOrderValue: 1000,
		UniqueProducts: 10, AvgOrderIntervalDays: 5,
		ReturnCount: 0, AdjustmentCount: 0,
		PaymentTermDays: 45, CreditLimit: 120000,
		PaymentMethods: []string{"wire", "ach", "check"}, EarlyPaymentDiscount: true,
		AvgResponseDays: &resp,
		DeliveryStats: &scoring.DeliveryStats{
			TotalCount: 50, OnTimeCount: 48, MeanDelayDays: -1, DelayStdDevDays: 0.5,
		},
	}
	weakResp := 9.0
	weak := scoring.MetricsSnapshot{
		SupplierID: "sup-weak", Name: "Weak Trading",
		OrderCount: 10, TotalValue: 20000, AvgOrderValue: 2000,
		UniqueProducts: 2, AvgOrderIntervalDays: 9,
		ReturnCount: 2, PaymentTermDays: 7,
		AvgResponseDays: &weakResp,
		DeliveryStats: &scoring.DeliveryStats{
			TotalCount: 10, OnTimeCount: 5, MeanDelayDays: 6, DelayStdDevDays: 4,
		},
	}

	engine := scenarioEngine(t, strong, weak)
	report, err := engine.RankSuppliers(context.Background(), scenarioWindow(), scoring.RankOptions{Profile: scoring.DefaultProfile})
	if err != nil {
		t.Fatalf("RankSuppliers() error = %v", err)
	}
	if report.SupplierCount != 2 {
		t.Fatalf("supplier count = %d, want 2", report.SupplierCount)
	}

	top := report.Rankings[0]
	if top.SupplierID != "sup-strong" {
		t.Fatalf("rank 1 = %s, want sup-strong", top.SupplierID)
	}
	if top.Components.Delivery < 95 {
		t.Errorf("delivery = %v, want >= 95", top.Components.Delivery)
	}
	if top.Components.Quality != 100 {
		t.Errorf("quality = %v, want 100 (clean history bonus capped)", top.Components.Quality)
	}
	if top.Components.Fulfillment < 90 {
		t.Errorf("fulfillment = %v, want >= 90", top.Components.Fulfillment)
	}
	if top.Tier != scoring.TierPremium {
		t.Errorf("tier = %v, want premium (composite %v)", top.Tier, top.Composite)
	}
	if top.Risk != scoring.RiskMinimal {
		t.Errorf("risk = %v, want minimal", top.Risk)
	}
	if top.Percentile != 100 {
		t.Errorf("percentile = %v, want 100", top.Percentile)
	}

	bottom := report.Rankings[1]
	if bottom.SupplierID != "sup-weak" || bottom.Rank != 2 || bottom.Percentile != 50 {
		t.Errorf("rank 2 = %s/%d/%v, want sup-weak/2/50", bottom.SupplierID, bottom.Rank, bottom.Percentile)
	}
	if bottom.Composite >= top.Composite {
		t.Errorf("composites %v >= %v, want strictly ordered", bottom.Composite, top.Composite)
	}

	// Every score is clamped.
	for _, entry := range report.Rankings {
		for comp, score := range entry.Components.ToMap() {
			if score < 0 || score > 100 {
				t.Errorf("%s %s = %v, outside [0,100]", entry.SupplierID, comp, score)
			}
		}
		if entry.Composite < 0 || entry.Composite > 100 {
			t.Errorf("%s composite = %v, outside [0,100]", entry.SupplierID, entry.Composite)
		}
	}
}

// Scoring is a pure function of the snapshot and profile: two runs over
// identical data produce identical numbers and a stable trend.
func TestScenarioIdempotence(t *testing.T) {
	resp := 2.0
	snap := scoring.MetricsSnapshot{
		SupplierID: "sup-same", Name: "Same Co",
		OrderCount: 20, TotalValue: 30000, AvgOrderValue: 1500,
		UniqueProducts: 5, AvgOrderIntervalDays: 6,
		ReturnCount: 1, PaymentTermDays: 30, AvgResponseDays: &resp,
		DeliveryStats: &scoring.DeliveryStats{TotalCount: 20, OnTimeCount: 19, MeanDelayDays: 0.2, DelayStdDevDays: 1},
	}

	engine := scenarioEngine(t, snap)
	ctx := context.Background()
	w := scenarioWindow()

	first, err := engine.ScoreSupplier(ctx, "sup-same", w, scoring.RankOptions{})
	if err != nil {
		t.Fatalf("first ScoreSupplier() error = %v", err)
	}
	second, err := engine.ScoreSupplier(ctx, "sup-same", w, scoring.RankOptions{})
	if err != nil {
		t.Fatalf("second ScoreSupplier() error = %v", err)
	}
	if first.Composite != second.Composite || first.Components != second.Components {
		t.Errorf("repeated scoring diverged: %v vs %v", first, second)
	}

	// Identical data in both windows: the trend is flat.
	record, err := engine.TrackSupplierTrend(ctx, "sup-same", w)
	if err != nil {
		t.Fatalf("TrackSupplierTrend() error = %v", err)
	}
	if record.Direction != scoring.TrendStable {
		t.Errorf("direction = %v, want stable", record.Direction)
	}
}

// A supplier whose composite collapses below 40 is flagged with a
// critical performance alert and sits at the bottom of the percentiles.
func TestScenarioCriticalAlert(t *testing.T) {
	snaps := make([]scoring.MetricsSnapshot, 0, 5)
	for _, id := range []string{"sup-a", "sup-b", "sup-c", "sup-d"} {
		resp := 1.0
		snaps = append(snaps, scoring.MetricsSnapshot{
			SupplierID: id, Name: id,
			OrderCount: 30, TotalValue: 40000, AvgOrderValue: 1000,
			UniqueProducts: 8, AvgOrderIntervalDays: 5,
			PaymentTermDays: 60, CreditLimit: 150000,
			PaymentMethods: []string{"wire", "ach", "check"}, EarlyPaymentDiscount: true,
			AvgResponseDays: &resp,
			DeliveryStats:   &scoring.DeliveryStats{TotalCount: 30, OnTimeCount: 30, MeanDelayDays: -0.5, DelayStdDevDays: 0.3},
		})
	}
	// Expensive, late, and riddled with returns.
	failResp := 20.0
	snaps = append(snaps, scoring.MetricsSnapshot{
		SupplierID: "sup-fail", Name: "sup-fail",
		OrderCount: 10, TotalValue: 50000, AvgOrderValue: 5000,
		UniqueProducts: 1, AvgOrderIntervalDays: 30,
		ReturnCount: 4, AdjustmentCount: 3,
		AvgResponseDays: &failResp,
		DeliveryStats:   &scoring.DeliveryStats{TotalCount: 10, OnTimeCount: 1, MeanDelayDays: 12, DelayStdDevDays: 8},
	})

	engine := scenarioEngine(t, snaps...)
	report, err := engine.RankSuppliers(context.Background(), scenarioWindow(), scoring.RankOptions{})
	if err != nil {
		t.Fatalf("RankSuppliers() error = %v", err)
	}

	last := report.Rankings[len(report.Rankings)-1]
	if last.SupplierID != "sup-fail" {
		t.Fatalf("last rank = %s, want sup-fail", last.SupplierID)
	}
	if last.Rank != 5 || last.Percentile != 20 {
		t.Errorf("rank/percentile = %d/%v, want 5/20", last.Rank, last.Percentile)
	}
	if last.Composite >= 40 {
		t.Fatalf("composite = %v, want < 40 for this scenario", last.Composite)
	}

	found := false
	for _, a := range report.Alerts {
		if a.Type == scoring.AlertCriticalPerformance && a.SupplierID == "sup-fail" {
			found = true
		}
	}
	if !found {
		t.Errorf("no critical performance alert for sup-fail; alerts = %+v", report.Alerts)
	}
}
