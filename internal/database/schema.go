// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package database

import (
	"fmt"
)

// schema is the complete DDL. Statements are idempotent so startup can run
// them unconditionally.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id VARCHAR PRIMARY KEY,
		code VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		category VARCHAR,
		payment_term_days INTEGER DEFAULT 0,
		credit_limit DOUBLE DEFAULT 0,
		payment_methods VARCHAR,
		early_payment_discount BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id VARCHAR PRIMARY KEY,
		supplier_id VARCHAR NOT NULL,
		product_id VARCHAR,
		amount DOUBLE NOT NULL,
		status VARCHAR NOT NULL DEFAULT 'open',
		ordered_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP,
		expected_delivery TIMESTAMP,
		delivered_at TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS quality_events (
		id VARCHAR PRIMARY KEY,
		supplier_id VARCHAR NOT NULL,
		order_id VARCHAR,
		event_type VARCHAR NOT NULL,
		occurred_at TIMESTAMP NOT NULL,
		note VARCHAR
	)`,

	`CREATE INDEX IF NOT EXISTS idx_po_supplier_ordered
		ON purchase_orders (supplier_id, ordered_at)`,

	`CREATE INDEX IF NOT EXISTS idx_qe_supplier_occurred
		ON quality_events (supplier_id, occurred_at)`,
}

// initialize creates tables and indexes.
func (db *DB) initialize() error {
	for _, stmt := range schema {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
