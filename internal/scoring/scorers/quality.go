// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// penaltyBand maps an exclusive lower bound on an issue rate (percent of
// transactions) to a penalty. Evaluated top-down; the first band the rate
// exceeds wins.
type penaltyBand struct {
	Above   float64
	Penalty float64
}

// returnPenalties penalize return-transaction rates. Returns are penalized
// more heavily than adjustments.
var returnPenalties = []penaltyBand{
	{Above: 10, Penalty: 40},
	{Above: 5, Penalty: 25},
	{Above: 2, Penalty: 15},
	{Above: 1, Penalty: 10},
	{Above: 0.5, Penalty: 5},
}

// adjustmentPenalties follow an analogous but lighter schedule.
var adjustmentPenalties = []penaltyBand{
	{Above: 10, Penalty: 20},
	{Above: 5, Penalty: 12},
	{Above: 2, Penalty: 8},
	{Above: 1, Penalty: 5},
	{Above: 0.5, Penalty: 2},
}

func lookupPenalty(bands []penaltyBand, rate float64) float64 {
	for _, b := range bands {
		if rate > b.Above {
			return b.Penalty
		}
	}
	return 0
}

// qualityBonusMinOrders is the transaction count required for the
// zero-issue bonus.
const qualityBonusMinOrders = 10

// Quality scores quality from return and adjustment transaction rates.
// The score starts at 100 and subtracts tiered penalties; a clean record
// across at least 10 transactions earns a +10 bonus (capped at 100).
func Quality(snap scoring.MetricsSnapshot) Result {
	if snap.OrderCount == 0 {
		return neutral("no transaction history")
	}

	total := float64(snap.OrderCount)
	returnRate := float64(snap.ReturnCount) / total * 100
	adjustmentRate := float64(snap.AdjustmentCount) / total * 100

	score := 100.0
	score -= lookupPenalty(returnPenalties, returnRate)
	score -= lookupPenalty(adjustmentPenalties, adjustmentRate)

	issues := snap.ReturnCount + snap.AdjustmentCount + snap.DefectCount + snap.ComplaintCount
	if issues == 0 && snap.OrderCount >= qualityBonusMinOrders {
		score += 10
	}

	return finish(score, fmt.Sprintf(
		"returns %.1f%%, adjustments %.1f%% over %d transactions",
		returnRate, adjustmentRate, snap.OrderCount))
}
