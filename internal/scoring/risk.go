// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

// Risk factor thresholds. A supplier accumulates one factor per condition.
const (
	riskQualityFloor     = 60
	riskDeliveryFloor    = 60
	riskFulfillmentFloor = 70
)

// AssessRisk counts risk indicators across component scores and transaction
// volume and maps the count to a risk level:
//
//	>= 3 factors -> high
//	>= 2 factors -> medium
//	>= 1 factor  -> low
//	0 factors    -> minimal
func AssessRisk(components ComponentScores, totalValue, minVolumeFloor float64) RiskLevel {
	factors := 0
	if components.Quality < riskQualityFloor {
		factors++
	}
	if components.Delivery < riskDeliveryFloor {
		factors++
	}
	if components.Fulfillment < riskFulfillmentFloor {
		factors++
	}
	if totalValue < minVolumeFloor {
		factors++
	}

	switch {
	case factors >= 3:
		return RiskHigh
	case factors >= 2:
		return RiskMedium
	case factors >= 1:
		return RiskLow
	default:
		return RiskMinimal
	}
}
