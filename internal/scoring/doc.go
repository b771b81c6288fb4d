// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package scoring implements the supplier performance scoring and ranking
// pipeline: metric normalization, weighted composition, tier and risk
// classification, ranking, trend comparison, and recommendation synthesis.
//
// # Pipeline
//
// The Engine orchestrates a multi-stage computation over metrics snapshots
// supplied by a MetricsProvider:
//
//  1. Fetch aggregated metrics for all qualifying suppliers in the window.
//  2. Run the six component scorers per supplier (see the scorers package).
//     Scorers are independent and dispatched concurrently.
//  3. Compose component scores into one composite score using the resolved
//     weight profile.
//  4. Classify tier (with critical-failure override) and risk level.
//  5. Rank the full set, assign percentiles, compute tier distribution.
//  6. Generate recommendations and alerts over the ranked set.
//
// Trend tracking re-runs the pipeline over the immediately preceding window
// of equal length and diffs by supplier identity.
//
// # Purity and Concurrency
//
// Every stage is a pure function of its inputs: scoring the same snapshot
// with the same weight profile always yields identical results. No stage
// mutates shared state, so per-supplier pipelines run concurrently and are
// joined only at the ranking barrier. Cancellation is cooperative via
// context.
//
// # Dependencies
//
// This package has no dependencies on other internal packages except cache.
// The MetricsProvider interface allows integration with the database
// package without creating circular imports.
package scoring
