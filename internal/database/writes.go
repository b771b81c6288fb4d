// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier is the master data row for one supplier.
type Supplier struct {
	ID                   string
	Code                 string
	Name                 string
	Category             string
	PaymentTermDays      int
	CreditLimit          float64
	PaymentMethods       []string
	EarlyPaymentDiscount bool
}

// PurchaseOrder is one transactional purchase order row.
type PurchaseOrder struct {
	ID               string
	SupplierID       string
	ProductID        string
	Amount           float64
	Status           string
	OrderedAt        time.Time
	CompletedAt      *time.Time
	ExpectedDelivery *time.Time
	DeliveredAt      *time.Time
}

// QualityEvent is one quality incident: return, adjustment, defect, or
// complaint.
type QualityEvent struct {
	ID         string
	SupplierID string
	OrderID    string
	EventType  string
	OccurredAt time.Time
	Note       string
}

// UpsertSupplier inserts or replaces a supplier master row.
func (db *DB) UpsertSupplier(ctx context.Context, s Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO suppliers
			(id, code, name, category, payment_term_days, credit_limit,
			 payment_methods, early_payment_discount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Code, s.Name, s.Category, s.PaymentTermDays, s.CreditLimit,
		strings.Join(s.PaymentMethods, ","), s.EarlyPaymentDiscount)
	if err != nil {
		return fmt.Errorf("upsert supplier %s: %w", s.ID, err)
	}
	return nil
}

// InsertPurchaseOrder inserts one purchase order row.
func (db *DB) InsertPurchaseOrder(ctx context.Context, po PurchaseOrder) error {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	if po.Status == "" {
		po.Status = "open"
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO purchase_orders
			(id, supplier_id, product_id, amount, status, ordered_at,
			 completed_at, expected_delivery, delivered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		po.ID, po.SupplierID, po.ProductID, po.Amount, po.Status, po.OrderedAt,
		po.CompletedAt, po.ExpectedDelivery, po.DeliveredAt)
	if err != nil {
		return fmt.Errorf("insert purchase order %s: %w", po.ID, err)
	}
	return nil
}

// InsertQualityEvent inserts one quality event row.
func (db *DB) InsertQualityEvent(ctx context.Context, qe QualityEvent) error {
	if qe.ID == "" {
		qe.ID = uuid.New().String()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO quality_events
			(id, supplier_id, order_id, event_type, occurred_at, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		qe.ID, qe.SupplierID, qe.OrderID, qe.EventType, qe.OccurredAt, qe.Note)
	if err != nil {
		return fmt.Errorf("insert quality event %s: %w", qe.ID, err)
	}
	return nil
}
