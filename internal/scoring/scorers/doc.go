// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package scorers implements the six component scorers of the supplier
// scoring pipeline.
//
// Each scorer is a pure function from a metrics snapshot to a normalized
// score in [0,100] plus a free-text rationale for audit. Scorers never
// fail: when required metrics are absent they return the neutral score
// (50) so that suppliers with sparse history are not penalized.
//
// # Threshold Tables
//
// All banded classifications are expressed as ordered declarative tables
// evaluated by a single lookup function, rather than nested conditional
// chains. This keeps thresholds testable in one place.
//
// # Thread Safety
//
// Scorers hold no state and are safe for concurrent use. The engine
// dispatches them as independent concurrent tasks per supplier; ordering
// between them is unspecified.
package scorers
