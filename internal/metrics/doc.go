// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

/*
Package metrics provides Prometheus metrics collection and export.

All metrics are registered via promauto at package load; the server exposes
them at /metrics in Prometheus text format.

Instrumented surfaces:

  - Scoring pipeline: run counts, run duration, suppliers per run, and
    component scores degraded to neutral
  - Result cache: hits and misses
  - Metrics provider: query duration and errors per query type
  - Alert bus: alerts published per severity
  - API: request counts, latency, and in-flight requests

Label cardinality is bounded: endpoint labels are chi route patterns, not
raw paths, and error detail never becomes a label value.

Example PromQL:

	# Ranking run p95 latency
	histogram_quantile(0.95, rate(scoring_run_duration_seconds_bucket{operation="rank"}[5m]))

	# Result cache hit rate
	rate(scoring_cache_hits_total[5m]) /
	  (rate(scoring_cache_hits_total[5m]) + rate(scoring_cache_misses_total[5m]))

All recording functions are safe for concurrent use.
*/
package metrics
