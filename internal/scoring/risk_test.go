// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import "testing"

func TestAssessRisk(t *testing.T) {
	const volumeFloor = 10000

	tests := []struct {
		name       string
		components ComponentScores
		totalValue float64
		want       RiskLevel
	}{
		{
			name:       "no factors",
			components: ComponentScores{Quality: 80, Delivery: 80, Fulfillment: 80},
			totalValue: 50000,
			want:       RiskMinimal,
		},
		{
			name:       "low quality only",
			components: ComponentScores{Quality: 59, Delivery: 80, Fulfillment: 80},
			totalValue: 50000,
			want:       RiskLow,
		},
		{
			name:       "volume factor only",
			components: ComponentScores{Quality: 80, Delivery: 80, Fulfillment: 80},
			totalValue: 9999,
			want:       RiskLow,
		},
		{
			name:       "quality and delivery",
			components: ComponentScores{Quality: 50, Delivery: 50, Fulfillment: 80},
			totalValue: 50000,
			want:       RiskMedium,
		},
		{
			name:       "three factors",
			components: ComponentScores{Quality: 50, Delivery: 50, Fulfillment: 60},
			totalValue: 50000,
			want:       RiskHigh,
		},
		{
			name:       "all four factors",
			components: ComponentScores{Quality: 10, Delivery: 10, Fulfillment: 10},
			totalValue: 0,
			want:       RiskHigh,
		},
		{
			name:       "scores exactly at thresholds count no factors",
			components: ComponentScores{Quality: 60, Delivery: 60, Fulfillment: 70},
			totalValue: volumeFloor,
			want:       RiskMinimal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessRisk(tt.components, tt.totalValue, volumeFloor)
			if got != tt.want {
				t.Errorf("AssessRisk() = %v, want %v", got, tt.want)
			}
		})
	}
}
