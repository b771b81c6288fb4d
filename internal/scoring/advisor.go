// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Recommendation and alert type tags.
const (
	RecStrategicPartnership = "strategic_partnership"
	RecDevelopmentProgram   = "development_program"
	RecRiskMitigation       = "risk_mitigation"
	RecDiversification      = "diversification_warning"

	AlertCriticalPerformance = "critical_performance"
	AlertQualityConcern      = "quality_concern"
	AlertDeliveryDelays      = "delivery_delays"
	AlertOpportunity         = "expansion_opportunity"
)

// Alert thresholds over composite and component scores.
const (
	alertCompositeCriticalBelow = 40
	alertQualityBelow           = 50
	alertDeliveryBelow          = 60
	alertOpportunityAbove       = 90
)

// Advisor generates recommendations and alerts from a ranked supplier set.
// Generation is best effort: an internal error yields empty lists, never a
// failed ranking run.
type Advisor struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewAdvisor creates an advisor with the given engine config.
func NewAdvisor(cfg *Config, logger zerolog.Logger) *Advisor {
	return &Advisor{
		cfg:    cfg,
		logger: logger.With().Str("component", "advisor").Logger(),
	}
}

// Generate evaluates all rules over the ranked set. Rules are independent;
// each produces zero or more items. Output is sorted by priority, critical
// first, with stable order within a priority.
func (a *Advisor) Generate(entries []RankingEntry) (recs []Recommendation, alerts []Alert) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("recommendation generation failed")
			recs = nil
			alerts = nil
		}
	}()

	recs = append(recs, a.strategicPartnerships(entries)...)
	recs = append(recs, a.developmentCandidates(entries)...)
	recs = append(recs, a.riskMitigation(entries)...)
	recs = append(recs, a.diversificationWarning(entries)...)
	alerts = a.supplierAlerts(entries)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Order() < recs[j].Priority.Order()
	})
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Order() < alerts[j].Severity.Order()
	})
	return recs, alerts
}

// strategicPartnerships recommends deepening ties with the best premium
// suppliers, capped at the configured count.
func (a *Advisor) strategicPartnerships(entries []RankingEntry) []Recommendation {
	var ids []string
	for _, e := range entries {
		if e.Tier != TierPremium {
			continue
		}
		ids = append(ids, e.SupplierID)
		if len(ids) >= a.cfg.TopPartnerCount {
			break
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []Recommendation{{
		Type:        RecStrategicPartnership,
		Priority:    PriorityHigh,
		SupplierIDs: ids,
		Message:     fmt.Sprintf("%d premium-tier suppliers are strategic partnership candidates", len(ids)),
		Actions:     []string{"negotiate long-term contracts", "explore volume commitments"},
	}}
}

// developmentCandidates recommends a development program for developing-tier
// suppliers whose risk is below high.
func (a *Advisor) developmentCandidates(entries []RankingEntry) []Recommendation {
	var ids []string
	for _, e := range entries {
		if e.Tier == TierDeveloping && e.Risk != RiskHigh {
			ids = append(ids, e.SupplierID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []Recommendation{{
		Type:        RecDevelopmentProgram,
		Priority:    PriorityMedium,
		SupplierIDs: ids,
		Message:     fmt.Sprintf("%d developing-tier suppliers are candidates for a supplier development program", len(ids)),
		Actions:     []string{"schedule performance reviews", "agree improvement targets"},
	}}
}

// riskMitigation raises a critical recommendation for high-risk suppliers.
func (a *Advisor) riskMitigation(entries []RankingEntry) []Recommendation {
	var ids []string
	for _, e := range entries {
		if e.Risk == RiskHigh {
			ids = append(ids, e.SupplierID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return []Recommendation{{
		Type:        RecRiskMitigation,
		Priority:    PriorityCritical,
		SupplierIDs: ids,
		Message:     fmt.Sprintf("%d suppliers carry high risk and need mitigation plans", len(ids)),
		Actions:     []string{"identify alternative sources", "review open commitments"},
	}}
}

// diversificationWarning flags over-concentration when too large a share of
// the set sits in the top tier.
func (a *Advisor) diversificationWarning(entries []RankingEntry) []Recommendation {
	if len(entries) == 0 {
		return nil
	}
	premium := 0
	for _, e := range entries {
		if e.Tier == TierPremium {
			premium++
		}
	}
	pct := float64(premium) / float64(len(entries)) * 100
	if pct <= a.cfg.ConcentrationThresholdPct {
		return nil
	}
	return []Recommendation{{
		Type:     RecDiversification,
		Priority: PriorityMedium,
		Message: fmt.Sprintf("%.0f%% of suppliers sit in the premium tier; spend may be over-concentrated",
			pct),
		Actions: []string{"qualify additional suppliers", "rebalance order allocation"},
	}}
}

// supplierAlerts raises per-supplier alerts from composite and component
// scores.
func (a *Advisor) supplierAlerts(entries []RankingEntry) []Alert {
	var alerts []Alert
	for _, e := range entries {
		if e.Composite < alertCompositeCriticalBelow {
			alerts = append(alerts, Alert{
				Type:       AlertCriticalPerformance,
				Severity:   PriorityCritical,
				SupplierID: e.SupplierID,
				Message:    fmt.Sprintf("composite score %.2f is critically low", e.Composite),
			})
		}
		if e.Components.Quality < alertQualityBelow {
			alerts = append(alerts, Alert{
				Type:       AlertQualityConcern,
				Severity:   PriorityHigh,
				SupplierID: e.SupplierID,
				Message:    fmt.Sprintf("quality score %.2f is below threshold", e.Components.Quality),
			})
		}
		if e.Components.Delivery < alertDeliveryBelow {
			alerts = append(alerts, Alert{
				Type:       AlertDeliveryDelays,
				Severity:   PriorityMedium,
				SupplierID: e.SupplierID,
				Message:    fmt.Sprintf("delivery score %.2f indicates recurring delays", e.Components.Delivery),
			})
		}
		if e.Composite > alertOpportunityAbove && e.Tier == TierPremium {
			alerts = append(alerts, Alert{
				Type:       AlertOpportunity,
				Severity:   PriorityLow,
				SupplierID: e.SupplierID,
				Message:    fmt.Sprintf("composite score %.2f suggests room to expand business", e.Composite),
			})
		}
	}
	return alerts
}
