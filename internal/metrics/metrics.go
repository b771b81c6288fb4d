// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scoring pipeline metrics
	ScoringRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_runs_total",
			Help: "Total number of scoring pipeline runs",
		},
		[]string{"operation", "status"}, // operation: "rank", "score"; status: "ok", "error"
	)

	ScoringRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_run_duration_seconds",
			Help:    "Duration of scoring pipeline runs in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	RankedSuppliers = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scoring_ranked_suppliers",
			Help:    "Number of suppliers per ranking run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	NeutralFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_neutral_fallbacks_total",
			Help: "Total number of component scores degraded to neutral",
		},
		[]string{"component"},
	)

	// Result cache metrics
	ScoringCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_cache_hits_total",
			Help: "Total number of scoring result cache hits",
		},
	)

	ScoringCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_cache_misses_total",
			Help: "Total number of scoring result cache misses",
		},
	)

	// Metrics provider (DuckDB) metrics
	ProviderQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_query_duration_seconds",
			Help:    "Duration of metrics provider queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"}, // "supplier_metrics", "delivery_detail", "quality_detail"
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Total number of metrics provider query errors",
		},
		[]string{"query"},
	)

	// Alert bus metrics
	AlertsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_published_total",
			Help: "Total number of alerts published to the event bus",
		},
		[]string{"severity"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordProviderQuery records one metrics provider query.
func RecordProviderQuery(query string, duration time.Duration, err error) {
	ProviderQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		ProviderErrorsTotal.WithLabelValues(query).Inc()
	}
}
