// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

// DiffTrends compares a current ranking against the immediately preceding,
// equal-length period and computes per-supplier deltas.
//
// rankDelta = previousRank - currentRank (positive = improved);
// scoreDelta = currentScore - previousScore. Suppliers absent from the
// previous run are marked new_supplier; suppliers absent from the current
// run are dropped.
func DiffTrends(current, previous []RankingEntry) []TrendRecord {
	prevByID := make(map[string]RankingEntry, len(previous))
	for _, e := range previous {
		prevByID[e.SupplierID] = e
	}

	records := make([]TrendRecord, 0, len(current))
	for _, cur := range current {
		rec := TrendRecord{
			SupplierID:   cur.SupplierID,
			Name:         cur.Name,
			CurrentRank:  cur.Rank,
			CurrentScore: cur.Composite,
		}

		prev, ok := prevByID[cur.SupplierID]
		if !ok {
			rec.Direction = TrendNewSupplier
			records = append(records, rec)
			continue
		}

		prevRank := prev.Rank
		prevScore := prev.Composite
		rec.PreviousRank = &prevRank
		rec.PreviousScore = &prevScore
		rec.RankDelta = prevRank - cur.Rank
		rec.ScoreDelta = Round2(cur.Composite - prevScore)

		switch {
		case rec.RankDelta > 0:
			rec.Direction = TrendImproving
		case rec.RankDelta < 0:
			rec.Direction = TrendDeclining
		default:
			rec.Direction = TrendStable
		}
		records = append(records, rec)
	}
	return records
}

// InsufficientTrends degrades gracefully when previous-period data could
// not be retrieved: every current supplier gets an insufficient_data entry
// rather than failing the whole request.
func InsufficientTrends(current []RankingEntry) []TrendRecord {
	records := make([]TrendRecord, 0, len(current))
	for _, cur := range current {
		records = append(records, TrendRecord{
			SupplierID:   cur.SupplierID,
			Name:         cur.Name,
			CurrentRank:  cur.Rank,
			CurrentScore: cur.Composite,
			Direction:    TrendInsufficientData,
		})
	}
	return records
}
