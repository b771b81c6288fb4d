// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// Result is one component scorer outcome: a score in [0,100] and a
// human-readable rationale for audit.
type Result struct {
	Score     float64
	Rationale string
}

// neutral builds the neutral fallback result with an annotated reason.
func neutral(reason string) Result {
	return Result{
		Score:     scoring.NeutralScore,
		Rationale: fmt.Sprintf("neutral: %s", reason),
	}
}

// finish clamps and rounds a raw score.
func finish(score float64, rationale string) Result {
	return Result{
		Score:     scoring.Round2(scoring.Clamp(score)),
		Rationale: rationale,
	}
}

// floorBand maps an inclusive lower bound to points. Tables are ordered by
// descending Lower and evaluated top-down: the first band whose bound the
// value meets wins.
type floorBand struct {
	Lower  float64
	Points float64
}

func lookupFloor(bands []floorBand, v float64) float64 {
	for _, b := range bands {
		if v >= b.Lower {
			return b.Points
		}
	}
	return 0
}

// ceilBand maps an inclusive upper bound to points. Tables are ordered by
// ascending Upper; values above every bound fall through to the fallback.
type ceilBand struct {
	Upper  float64
	Points float64
}

func lookupCeil(bands []ceilBand, v, fallback float64) float64 {
	for _, b := range bands {
		if v <= b.Upper {
			return b.Points
		}
	}
	return fallback
}
