// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"fmt"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

// paymentBase is the starting score before commercial-term bonuses.
const paymentBase = 50

// paymentTermBands award up to 30 points for longer payment windows.
var paymentTermBands = []floorBand{
	{Lower: 60, Points: 30},
	{Lower: 45, Points: 25},
	{Lower: 30, Points: 20},
	{Lower: 15, Points: 15},
	{Lower: 1, Points: 10},
}

// creditLimitBands award up to 10 points by credit limit size.
var creditLimitBands = []floorBand{
	{Lower: 100000, Points: 10},
	{Lower: 50000, Points: 7},
	{Lower: 10000, Points: 5},
	{Lower: 1, Points: 3},
}

// earlyDiscountBonus rewards early-payment discount availability.
const earlyDiscountBonus = 15

// Payment scores commercial payment terms: payment window length, early
// payment discount availability, credit limit size, and accepted payment
// method breadth. The base score of 50 accrues bonuses and is capped
// at 100.
func Payment(snap scoring.MetricsSnapshot) Result {
	hasTerms := snap.PaymentTermDays > 0 || snap.CreditLimit > 0 ||
		len(snap.PaymentMethods) > 0 || snap.EarlyPaymentDiscount
	if !hasTerms {
		return neutral("no commercial terms on record")
	}

	score := float64(paymentBase)
	score += lookupFloor(paymentTermBands, float64(snap.PaymentTermDays))
	if snap.EarlyPaymentDiscount {
		score += earlyDiscountBonus
	}
	score += lookupFloor(creditLimitBands, snap.CreditLimit)
	switch {
	case len(snap.PaymentMethods) >= 3:
		score += 5
	case len(snap.PaymentMethods) >= 2:
		score += 3
	}

	return finish(score, fmt.Sprintf(
		"%dd terms, discount=%t, credit limit %.0f, %d payment methods",
		snap.PaymentTermDays, snap.EarlyPaymentDiscount, snap.CreditLimit, len(snap.PaymentMethods)))
}
