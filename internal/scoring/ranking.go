// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"math"
	"sort"
)

// Rank orders scored suppliers descending by composite score and assigns
// 1-based ranks and percentiles. Ties are broken by supplier ID for
// determinism.
//
// percentile = round(((N - rank + 1) / N) * 100), so rank 1 is the 100th
// percentile and rank N is round(100/N).
func Rank(results []ScoreResult) []RankingEntry {
	sorted := make([]ScoreResult, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Composite != sorted[j].Composite {
			return sorted[i].Composite > sorted[j].Composite
		}
		return sorted[i].SupplierID < sorted[j].SupplierID
	})

	n := float64(len(sorted))
	entries := make([]RankingEntry, len(sorted))
	for i, res := range sorted {
		rank := i + 1
		entries[i] = RankingEntry{
			ScoreResult: res,
			Rank:        rank,
			Percentile:  math.Round((n - float64(rank) + 1) / n * 100),
		}
	}
	return entries
}

// Distribution computes the count and percentage of suppliers per tier
// across a ranked set. Only tiers present in the set appear in the map.
func Distribution(entries []RankingEntry) TierDistribution {
	dist := make(TierDistribution)
	if len(entries) == 0 {
		return dist
	}

	n := float64(len(entries))
	for _, e := range entries {
		share := dist[e.Tier]
		share.Count++
		dist[e.Tier] = share
	}
	for tier, share := range dist {
		share.Percent = Round2(float64(share.Count) / n * 100)
		dist[tier] = share
	}
	return dist
}
