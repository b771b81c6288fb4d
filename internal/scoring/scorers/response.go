// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// responseFloor is the minimum score for very slow turnaround.
const responseFloor = 30

// Response scores order turnaround using the average elapsed time between
// order placement and completion as a proxy for supplier responsiveness:
//
//	<= 1 hour  -> 100
//	<= 2 days  -> 90
//	<= 5 days  -> 75
//	<= 10 days -> 60
//	otherwise  -> 100 - 5*days, floored at 30
func Response(snap scoring.MetricsSnapshot) Result {
	if snap.AvgResponseDays == nil {
		return neutral("no response time data")
	}

	days := *snap.AvgResponseDays
	var score float64
	switch {
	case days <= 1.0/24:
		score = 100
	case days <= 2:
		score = 90
	case days <= 5:
		score = 75
	case days <= 10:
		score = 60
	default:
		score = 100 - 5*days
		if score < responseFloor {
			score = responseFloor
		}
	}

	return finish(score, fmt.Sprintf("avg turnaround %.2fd", days))
}
