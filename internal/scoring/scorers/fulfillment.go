// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// fulfillmentBase is the starting score before reliability bonuses.
const fulfillmentBase = 70

// frequencyBands award up to 25 points by transaction count.
var frequencyBands = []floorBand{
	{Lower: 50, Points: 25},
	{Lower: 30, Points: 20},
	{Lower: 15, Points: 15},
	{Lower: 5, Points: 10},
	{Lower: 0, Points: 5},
}

// regularityBands award up to 25 points by average order interval in days.
// Shorter, steadier intervals indicate an established relationship.
var regularityBands = []ceilBand{
	{Upper: 7, Points: 25},
	{Upper: 14, Points: 20},
	{Upper: 30, Points: 15},
	{Upper: 60, Points: 10},
}

const regularityFallback = 5

// diversityBands award up to 10 points by unique product count.
var diversityBands = []floorBand{
	{Lower: 10, Points: 10},
	{Lower: 5, Points: 7},
	{Lower: 3, Points: 5},
	{Lower: 1, Points: 2},
}

// Fulfillment scores reliability from transaction frequency, order-interval
// regularity, product diversity, and business volume. The base score of 70
// accrues bonuses and is capped at 100.
func Fulfillment(snap scoring.MetricsSnapshot) Result {
	if snap.OrderCount == 0 {
		return neutral("no transaction history")
	}

	score := float64(fulfillmentBase)
	score += lookupFloor(frequencyBands, float64(snap.OrderCount))
	if snap.AvgOrderIntervalDays > 0 {
		score += lookupCeil(regularityBands, snap.AvgOrderIntervalDays, regularityFallback)
	}
	score += lookupFloor(diversityBands, float64(snap.UniqueProducts))
	if snap.TotalValue > 0 {
		score += 5
	}

	return finish(score, fmt.Sprintf(
		"%d transactions, %.1fd avg interval, %d products, %.0f total value",
		snap.OrderCount, snap.AvgOrderIntervalDays, snap.UniqueProducts, snap.TotalValue))
}
