// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

// tierBand maps a composite-score lower bound (inclusive) to a tier.
type tierBand struct {
	Lower float64
	Tier  Tier
}

// tierBands is the ordered classification table, evaluated top-down.
// Boundaries are inclusive on the lower bound of each band.
var tierBands = []tierBand{
	{Lower: 85, Tier: TierPremium},
	{Lower: 70, Tier: TierPreferred},
	{Lower: 55, Tier: TierStandard},
	{Lower: 40, Tier: TierDeveloping},
	{Lower: 0, Tier: TierProbation},
}

// ClassifyTier maps a composite score and component scores to a tier.
//
// Any component score below criticalFloor forces probation unconditionally,
// regardless of composite score. Otherwise the composite score is looked up
// in the ordered band table.
func ClassifyTier(composite float64, components ComponentScores, criticalFloor float64) Tier {
	if components.Min() < criticalFloor {
		return TierProbation
	}
	for _, band := range tierBands {
		if composite >= band.Lower {
			return band.Tier
		}
	}
	return TierProbation
}
