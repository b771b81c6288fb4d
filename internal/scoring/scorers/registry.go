// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scorers

import (
	"github.com/vendorscope/vendorscope/internal/scoring"
)

// Default returns the six standard component scorers ready for engine
// registration.
func Default() []scoring.ComponentScorer {
	return []scoring.ComponentScorer{
		priceScorer{},
		deliveryScorer{},
		qualityScorer{},
		fulfillmentScorer{},
		paymentScorer{},
		responseScorer{},
	}
}

type priceScorer struct{}

func (priceScorer) Component() scoring.Component { return scoring.ComponentPrice }

func (priceScorer) Score(snap scoring.MetricsSnapshot, env scoring.ScoreEnv) (float64, string) {
	r := Price(snap, env.PeerMean)
	return r.Score, r.Rationale
}

type deliveryScorer struct{}

func (deliveryScorer) Component() scoring.Component { return scoring.ComponentDelivery }

func (deliveryScorer) Score(snap scoring.MetricsSnapshot, env scoring.ScoreEnv) (float64, string) {
	r := Delivery(snap, env.GraceDays)
	return r.Score, r.Rationale
}

type qualityScorer struct{}

func (qualityScorer) Component() scoring.Component { return scoring.ComponentQuality }

func (qualityScorer) Score(snap scoring.MetricsSnapshot, _ scoring.ScoreEnv) (float64, string) {
	r := Quality(snap)
	return r.Score, r.Rationale
}

type fulfillmentScorer struct{}

func (fulfillmentScorer) Component() scoring.Component { return scoring.ComponentFulfillment }

func (fulfillmentScorer) Score(snap scoring.MetricsSnapshot, _ scoring.ScoreEnv) (float64, string) {
	r := Fulfillment(snap)
	return r.Score, r.Rationale
}

type paymentScorer struct{}

func (paymentScorer) Component() scoring.Component { return scoring.ComponentPayment }

func (paymentScorer) Score(snap scoring.MetricsSnapshot, _ scoring.ScoreEnv) (float64, string) {
	r := Payment(snap)
	return r.Score, r.Rationale
}

type responseScorer struct{}

func (responseScorer) Component() scoring.Component { return scoring.ComponentResponse }

func (responseScorer) Score(snap scoring.MetricsSnapshot, _ scoring.ScoreEnv) (float64, string) {
	r := Response(snap)
	return r.Score, r.Rationale
}
