// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// SeedMockData populates the database with deterministic mock suppliers and
// ninety days of purchase history for local development and demos. It is a
// no-op when suppliers already exist.
func (db *DB) SeedMockData(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count); err != nil {
		return fmt.Errorf("count suppliers: %w", err)
	}
	if count > 0 {
		db.logger.Debug().Int("suppliers", count).Msg("skipping mock seed, data present")
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC().Truncate(24 * time.Hour)

	type profile struct {
		supplier    Supplier
		orderEvery  time.Duration
		amountBase  float64
		delayDays   float64
		returnRate  float64
		responseDay float64
	}

	profiles := []profile{
		{
			supplier: Supplier{
				ID: "sup-anchor-steel", Code: "AS-001", Name: "Anchor Steel Works",
				Category: "raw-materials", PaymentTermDays: 60, CreditLimit: 250000,
				PaymentMethods: []string{"wire", "check", "ach"}, EarlyPaymentDiscount: true,
			},
			orderEvery: 2 * 24 * time.Hour, amountBase: 4200,
			delayDays: -0.5, returnRate: 0, responseDay: 0.8,
		},
		{
			supplier: Supplier{
				ID: "sup-baltic-fasteners", Code: "BF-002", Name: "Baltic Fasteners Ltd",
				Category: "components", PaymentTermDays: 30, CreditLimit: 60000,
				PaymentMethods: []string{"wire", "ach"},
			},
			orderEvery: 4 * 24 * time.Hour, amountBase: 1800,
			delayDays: 1.5, returnRate: 0.02, responseDay: 2.5,
		},
		{
			supplier: Supplier{
				ID: "sup-cardinal-polymer", Code: "CP-003", Name: "Cardinal Polymer Co",
				Category: "raw-materials", PaymentTermDays: 15, CreditLimit: 20000,
				PaymentMethods: []string{"check"},
			},
			orderEvery: 7 * 24 * time.Hour, amountBase: 950,
			delayDays: 4, returnRate: 0.08, responseDay: 6,
		},
		{
			supplier: Supplier{
				ID: "sup-delta-logistics", Code: "DL-004", Name: "Delta Logistics Supply",
				Category: "packaging", PaymentTermDays: 45, CreditLimit: 110000,
				PaymentMethods: []string{"wire", "ach", "card"}, EarlyPaymentDiscount: true,
			},
			orderEvery: 3 * 24 * time.Hour, amountBase: 2600,
			delayDays: 0.5, returnRate: 0.01, responseDay: 1.2,
		},
		{
			supplier: Supplier{
				ID: "sup-everflow-chem", Code: "EC-005", Name: "Everflow Chemicals",
				Category: "raw-materials", PaymentTermDays: 0, CreditLimit: 0,
			},
			orderEvery: 12 * 24 * time.Hour, amountBase: 700,
			delayDays: 9, returnRate: 0.15, responseDay: 12,
		},
	}

	for _, p := range profiles {
		if err := db.UpsertSupplier(ctx, p.supplier); err != nil {
			return err
		}

		orderSeq := 0
		for at := now.AddDate(0, 0, -90); at.Before(now); at = at.Add(p.orderEvery) {
			orderSeq++
			amount := p.amountBase * (0.8 + rng.Float64()*0.4)
			expected := at.AddDate(0, 0, 5)
			delivered := expected.Add(time.Duration(p.delayDays*24) * time.Hour)
			completed := at.Add(time.Duration(p.responseDay*24) * time.Hour)

			po := PurchaseOrder{
				ID:               fmt.Sprintf("%s-po-%03d", p.supplier.ID, orderSeq),
				SupplierID:       p.supplier.ID,
				ProductID:        fmt.Sprintf("prod-%d", rng.Intn(12)),
				Amount:           amount,
				Status:           "completed",
				OrderedAt:        at,
				CompletedAt:      &completed,
				ExpectedDelivery: &expected,
				DeliveredAt:      &delivered,
			}
			if err := db.InsertPurchaseOrder(ctx, po); err != nil {
				return err
			}

			if rng.Float64() < p.returnRate {
				qe := QualityEvent{
					SupplierID: p.supplier.ID,
					OrderID:    po.ID,
					EventType:  "return",
					OccurredAt: delivered.AddDate(0, 0, 2),
					Note:       "seeded return",
				}
				if err := db.InsertQualityEvent(ctx, qe); err != nil {
					return err
				}
			}
		}
	}

	db.logger.Info().Int("suppliers", len(profiles)).Msg("seeded mock data")
	return nil
}
