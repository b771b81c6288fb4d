// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vendorscope/vendorscope/internal/metrics"
	"github.com/vendorscope/vendorscope/internal/scoring"
)

// GetSupplierMetrics aggregates purchase orders per supplier over the
// window. Suppliers without orders in the window are excluded, as are
// suppliers below the minimum transaction count.
//
// Delivery records and quality counts are intentionally not included; the
// engine fetches them per supplier via GetDeliveryDetail and
// GetQualityDetail.
func (db *DB) GetSupplierMetrics(ctx context.Context, q scoring.MetricsQuery) ([]scoring.MetricsSnapshot, error) {
	start := time.Now()
	snaps, err := db.getSupplierMetrics(ctx, q)
	metrics.RecordProviderQuery("supplier_metrics", time.Since(start), err)
	return snaps, err
}

func (db *DB) getSupplierMetrics(ctx context.Context, q scoring.MetricsQuery) ([]scoring.MetricsSnapshot, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			s.id, s.code, s.name, COALESCE(s.category, ''),
			s.payment_term_days, s.credit_limit,
			COALESCE(s.payment_methods, ''), s.early_payment_discount,
			COUNT(po.id),
			COALESCE(SUM(po.amount), 0),
			COALESCE(AVG(po.amount), 0),
			COUNT(DISTINCT po.product_id),
			MIN(po.ordered_at),
			MAX(po.ordered_at),
			AVG(EPOCH(po.completed_at - po.ordered_at)) / 86400.0
		FROM suppliers s
		JOIN purchase_orders po ON po.supplier_id = s.id
		WHERE po.ordered_at >= ? AND po.ordered_at < ?`)

	args := []interface{}{q.Window.From, q.Window.To}
	if len(q.SupplierIDs) > 0 {
		sb.WriteString(" AND po.supplier_id IN (")
		sb.WriteString(placeholders(len(q.SupplierIDs)))
		sb.WriteString(")")
		for _, id := range q.SupplierIDs {
			args = append(args, id)
		}
	}

	sb.WriteString(`
		GROUP BY s.id, s.code, s.name, s.category, s.payment_term_days,
			s.credit_limit, s.payment_methods, s.early_payment_discount`)
	if q.MinTransactions > 0 {
		sb.WriteString(" HAVING COUNT(po.id) >= ?")
		args = append(args, q.MinTransactions)
	}
	sb.WriteString(" ORDER BY s.id")

	rows, err := db.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query supplier metrics: %w", err)
	}
	defer rows.Close()

	var snaps []scoring.MetricsSnapshot
	for rows.Next() {
		var (
			snap        scoring.MetricsSnapshot
			methods     string
			firstOrder  sql.NullTime
			lastOrder   sql.NullTime
			avgResponse sql.NullFloat64
		)
		if err := rows.Scan(
			&snap.SupplierID, &snap.Code, &snap.Name, &snap.Category,
			&snap.PaymentTermDays, &snap.CreditLimit,
			&methods, &snap.EarlyPaymentDiscount,
			&snap.OrderCount, &snap.TotalValue, &snap.AvgOrderValue,
			&snap.UniqueProducts, &firstOrder, &lastOrder, &avgResponse,
		); err != nil {
			return nil, fmt.Errorf("scan supplier metrics: %w", err)
		}

		snap.PaymentMethods = splitMethods(methods)
		if firstOrder.Valid {
			snap.FirstOrderAt = firstOrder.Time
		}
		if lastOrder.Valid {
			snap.LastOrderAt = lastOrder.Time
		}
		if snap.OrderCount > 1 && firstOrder.Valid && lastOrder.Valid {
			span := lastOrder.Time.Sub(firstOrder.Time).Hours() / 24
			snap.AvgOrderIntervalDays = span / float64(snap.OrderCount-1)
		}
		if avgResponse.Valid {
			v := avgResponse.Float64
			snap.AvgResponseDays = &v
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate supplier metrics: %w", err)
	}
	return snaps, nil
}

// GetDeliveryDetail returns expected-vs-actual delivery observations for
// one supplier. Orders without both timestamps are excluded.
func (db *DB) GetDeliveryDetail(ctx context.Context, supplierID string, w scoring.Window) ([]scoring.DeliveryRecord, error) {
	start := time.Now()
	recs, err := db.getDeliveryDetail(ctx, supplierID, w)
	metrics.RecordProviderQuery("delivery_detail", time.Since(start), err)
	return recs, err
}

func (db *DB) getDeliveryDetail(ctx context.Context, supplierID string, w scoring.Window) ([]scoring.DeliveryRecord, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, expected_delivery, delivered_at
		FROM purchase_orders
		WHERE supplier_id = ?
			AND ordered_at >= ? AND ordered_at < ?
			AND expected_delivery IS NOT NULL
			AND delivered_at IS NOT NULL
		ORDER BY ordered_at`,
		supplierID, w.From, w.To)
	if err != nil {
		return nil, fmt.Errorf("query delivery detail: %w", err)
	}
	defer rows.Close()

	var recs []scoring.DeliveryRecord
	for rows.Next() {
		var rec scoring.DeliveryRecord
		if err := rows.Scan(&rec.OrderID, &rec.ExpectedAt, &rec.DeliveredAt); err != nil {
			return nil, fmt.Errorf("scan delivery detail: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delivery detail: %w", err)
	}
	return recs, nil
}

// GetQualityDetail returns quality event counts by type for one supplier.
// A supplier with no events yields zero counts, not an error.
func (db *DB) GetQualityDetail(ctx context.Context, supplierID string, w scoring.Window) (scoring.QualityDetail, error) {
	start := time.Now()
	detail, err := db.getQualityDetail(ctx, supplierID, w)
	metrics.RecordProviderQuery("quality_detail", time.Since(start), err)
	return detail, err
}

func (db *DB) getQualityDetail(ctx context.Context, supplierID string, w scoring.Window) (scoring.QualityDetail, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT event_type, COUNT(*)
		FROM quality_events
		WHERE supplier_id = ? AND occurred_at >= ? AND occurred_at < ?
		GROUP BY event_type`,
		supplierID, w.From, w.To)
	if err != nil {
		return scoring.QualityDetail{}, fmt.Errorf("query quality detail: %w", err)
	}
	defer rows.Close()

	var detail scoring.QualityDetail
	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return scoring.QualityDetail{}, fmt.Errorf("scan quality detail: %w", err)
		}
		switch eventType {
		case "return":
			detail.ReturnCount = count
		case "adjustment":
			detail.AdjustmentCount = count
		case "defect":
			detail.DefectCount = count
		case "complaint":
			detail.ComplaintCount = count
		}
	}
	if err := rows.Err(); err != nil {
		return scoring.QualityDetail{}, fmt.Errorf("iterate quality detail: %w", err)
	}
	return detail, nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// splitMethods parses the comma-separated payment methods column.
func splitMethods(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	methods := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			methods = append(methods, p)
		}
	}
	return methods
}
