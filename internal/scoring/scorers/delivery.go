// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"
	"math"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// onTimeRateBands contribute up to 60 points by on-time percentage.
var onTimeRateBands = []floorBand{
	{Lower: 95, Points: 60},
	{Lower: 90, Points: 50},
	{Lower: 80, Points: 40},
	{Lower: 70, Points: 30},
	{Lower: 0, Points: 20},
}

// avgDelayBands contribute up to 25 points by mean delay in days.
// Early delivery (non-positive mean delay) earns the full 25.
var avgDelayBands = []ceilBand{
	{Upper: 0, Points: 25},
	{Upper: 1, Points: 20},
	{Upper: 3, Points: 15},
	{Upper: 7, Points: 10},
}

const avgDelayFallback = 5

// consistencyBands contribute up to 15 points by delay standard deviation
// in days. Tight spreads indicate predictable delivery.
var consistencyBands = []ceilBand{
	{Upper: 0.5, Points: 15},
	{Upper: 1, Points: 12},
	{Upper: 2, Points: 9},
	{Upper: 4, Points: 6},
}

const consistencyFallback = 3

// Delivery scores delivery performance from expected-vs-actual delivery
// timestamps. On-time rate contributes up to 60 points, mean delay up to
// 25, and delay consistency up to 15; the sum is capped at 100.
//
// Per-transaction records take precedence; pre-aggregated stats are the
// fallback. With neither, the score is neutral.
func Delivery(snap scoring.MetricsSnapshot, graceDays float64) Result {
	stats := deliveryStats(snap, graceDays)
	if stats == nil || stats.TotalCount == 0 {
		return neutral("no delivery timing data")
	}

	onTimeRate := float64(stats.OnTimeCount) / float64(stats.TotalCount) * 100
	ratePoints := lookupFloor(onTimeRateBands, onTimeRate)
	delayPoints := lookupCeil(avgDelayBands, stats.MeanDelayDays, avgDelayFallback)
	consistencyPoints := lookupCeil(consistencyBands, stats.DelayStdDevDays, consistencyFallback)

	score := ratePoints + delayPoints + consistencyPoints

	return finish(score, fmt.Sprintf(
		"on-time %.1f%% over %d deliveries, mean delay %.1fd, stddev %.1fd",
		onTimeRate, stats.TotalCount, stats.MeanDelayDays, stats.DelayStdDevDays))
}

// deliveryStats derives delay statistics from per-transaction records, or
// falls back to the snapshot's pre-aggregated stats.
func deliveryStats(snap scoring.MetricsSnapshot, graceDays float64) *scoring.DeliveryStats {
	if len(snap.Deliveries) == 0 {
		return snap.DeliveryStats
	}

	var sum float64
	onTime := 0
	delays := make([]float64, len(snap.Deliveries))
	for i, rec := range snap.Deliveries {
		d := rec.DelayDays()
		delays[i] = d
		sum += d
		if d <= graceDays {
			onTime++
		}
	}

	n := float64(len(delays))
	mean := sum / n

	var variance float64
	for _, d := range delays {
		variance += (d - mean) * (d - mean)
	}
	variance /= n

	return &scoring.DeliveryStats{
		TotalCount:      len(delays),
		OnTimeCount:     onTime,
		MeanDelayDays:   mean,
		DelayStdDevDays: math.Sqrt(variance),
	}
}
