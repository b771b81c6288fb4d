// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"context"
	"errors"
)

// Sentinel errors for the scoring boundary.
var (
	// ErrSupplierNotFound indicates the supplier has no transactions in the
	// window (or does not exist at all).
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrProviderUnavailable indicates the metrics provider could not be
	// reached. It is retryable; scoring never fabricates data.
	ErrProviderUnavailable = errors.New("metrics provider unavailable")
)

// MetricsQuery filters a metrics snapshot fetch.
type MetricsQuery struct {
	Window Window

	// SupplierIDs restricts the fetch to the given suppliers. Empty means
	// all suppliers with activity in the window.
	SupplierIDs []string

	// MinTransactions excludes suppliers below this order count.
	MinTransactions int
}

// QualityDetail holds per-supplier quality issue counts for a window.
type QualityDetail struct {
	ReturnCount     int `json:"return_count"`
	AdjustmentCount int `json:"adjustment_count"`
	DefectCount     int `json:"defect_count"`
	ComplaintCount  int `json:"complaint_count"`
}

// MetricsProvider supplies aggregated transaction statistics per supplier
// and per time window. It is typically implemented by the database package;
// the scoring engine never assumes a specific query language or schema and
// is fully testable with synthetic snapshots.
type MetricsProvider interface {
	// GetSupplierMetrics returns one snapshot per qualifying supplier.
	// An empty result is not an error.
	GetSupplierMetrics(ctx context.Context, q MetricsQuery) ([]MetricsSnapshot, error)

	// GetDeliveryDetail returns per-transaction delivery timing records for
	// one supplier.
	GetDeliveryDetail(ctx context.Context, supplierID string, w Window) ([]DeliveryRecord, error)

	// GetQualityDetail returns return/adjustment counts for one supplier.
	GetQualityDetail(ctx context.Context, supplierID string, w Window) (QualityDetail, error)
}
