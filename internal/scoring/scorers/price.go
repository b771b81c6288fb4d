// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// priceRatioBands scores the ratio of a supplier's average order value to
// the peer mean. Lower ratios (cheaper than peers) score higher.
var priceRatioBands = []ceilBand{
	{Upper: 0.80, Points: 100},
	{Upper: 0.90, Points: 85},
	{Upper: 1.00, Points: 75},
	{Upper: 1.10, Points: 60},
	{Upper: 1.20, Points: 40},
}

const priceRatioFallback = 20

// Price scores price competitiveness by comparing the supplier's average
// order value to the mean across all peers in the same scoring run.
//
// This scorer requires the full peer set: it cannot run until every
// supplier's base metrics have been fetched.
func Price(snap scoring.MetricsSnapshot, peerMean float64) Result {
	if snap.AvgOrderValue <= 0 {
		return neutral("no order value data")
	}
	if peerMean <= 0 {
		return neutral("no peer order value data")
	}

	ratio := snap.AvgOrderValue / peerMean
	score := lookupCeil(priceRatioBands, ratio, priceRatioFallback)

	return finish(score, fmt.Sprintf("avg order value %.2fx peer mean (%.2f vs %.2f)",
		ratio, snap.AvgOrderValue, peerMean))
}
