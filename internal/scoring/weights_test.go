// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"math"
	"testing"
)

func TestNamedProfilesNormalized(t *testing.T) {
	for name, w := range NamedProfiles() {
		if !w.Normalize().IsNormalized() {
			t.Errorf("profile %q does not normalize to 1.0, sum=%v", name, w.Sum())
		}
		if math.Abs(w.Sum()-1.0) > 1e-9 {
			t.Errorf("profile %q weights sum to %v, want 1.0", name, w.Sum())
		}
	}
}

func TestWeightVectorNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   WeightVector
		want WeightVector
	}{
		{
			name: "already normalized",
			in:   WeightVector{Price: 0.5, Quality: 0.5},
			want: WeightVector{Price: 0.5, Quality: 0.5},
		},
		{
			name: "scaled down",
			in:   WeightVector{Price: 2, Quality: 2},
			want: WeightVector{Price: 0.5, Quality: 0.5},
		},
		{
			name: "zero vector falls back to equal weights",
			in:   WeightVector{},
			want: WeightVector{
				Price: 1.0 / 6, Delivery: 1.0 / 6, Quality: 1.0 / 6,
				Fulfillment: 1.0 / 6, Payment: 1.0 / 6, Response: 1.0 / 6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			for _, comp := range Components() {
				if math.Abs(got.Get(comp)-tt.want.Get(comp)) > 1e-9 {
					t.Errorf("%s: got %v, want %v", comp, got.Get(comp), tt.want.Get(comp))
				}
			}
			if !got.IsNormalized() {
				t.Errorf("normalized vector sums to %v, want 1.0", got.Sum())
			}
		})
	}
}

func TestWeightVectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      WeightVector
		wantErr bool
	}{
		{"valid", WeightVector{Price: 1}, false},
		{"negative weight", WeightVector{Price: -0.1, Quality: 1}, true},
		{"all zero", WeightVector{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveProfile(t *testing.T) {
	t.Run("named profile", func(t *testing.T) {
		prof, err := ResolveProfile("cost", nil)
		if err != nil {
			t.Fatalf("ResolveProfile() error = %v", err)
		}
		if prof.Name != "cost" {
			t.Errorf("Name = %q, want cost", prof.Name)
		}
		if prof.Warning != "" {
			t.Errorf("unexpected warning %q", prof.Warning)
		}
		if prof.Weights.Price <= prof.Weights.Quality {
			t.Error("cost profile should weight price above quality")
		}
	})

	t.Run("empty name uses default", func(t *testing.T) {
		prof, err := ResolveProfile("", nil)
		if err != nil {
			t.Fatalf("ResolveProfile() error = %v", err)
		}
		if prof.Name != DefaultProfile {
			t.Errorf("Name = %q, want %q", prof.Name, DefaultProfile)
		}
	})

	t.Run("unknown name falls back with warning", func(t *testing.T) {
		prof, err := ResolveProfile("bogus", nil)
		if err != nil {
			t.Fatalf("ResolveProfile() error = %v", err)
		}
		if prof.Name != DefaultProfile {
			t.Errorf("Name = %q, want %q", prof.Name, DefaultProfile)
		}
		if prof.Warning == "" {
			t.Error("expected fallback warning")
		}
	})

	t.Run("custom weights override", func(t *testing.T) {
		custom := &WeightVector{Price: 2, Quality: 2}
		prof, err := ResolveProfile("cost", custom)
		if err != nil {
			t.Fatalf("ResolveProfile() error = %v", err)
		}
		if prof.Name != CustomProfile {
			t.Errorf("Name = %q, want %q", prof.Name, CustomProfile)
		}
		if math.Abs(prof.Weights.Price-0.5) > 1e-9 {
			t.Errorf("Price weight = %v, want 0.5", prof.Weights.Price)
		}
	})

	t.Run("invalid custom weights rejected", func(t *testing.T) {
		custom := &WeightVector{Price: -1}
		if _, err := ResolveProfile("", custom); err == nil {
			t.Error("expected error for negative custom weight")
		}
	})
}

func TestComposite(t *testing.T) {
	scores := ComponentScores{
		Price: 80, Delivery: 90, Quality: 70,
		Fulfillment: 60, Payment: 50, Response: 100,
	}

	t.Run("equal weights", func(t *testing.T) {
		got := Composite(scores, WeightVector{}.Normalize())
		want := Round2((80 + 90 + 70 + 60 + 50 + 100) / 6.0)
		if got != want {
			t.Errorf("Composite = %v, want %v", got, want)
		}
	})

	t.Run("single weight", func(t *testing.T) {
		got := Composite(scores, WeightVector{Delivery: 1})
		if got != 90 {
			t.Errorf("Composite = %v, want 90", got)
		}
	})

	t.Run("clamped to 100", func(t *testing.T) {
		high := ComponentScores{Price: 100, Delivery: 100, Quality: 100, Fulfillment: 100, Payment: 100, Response: 100}
		got := Composite(high, WeightVector{Price: 1, Delivery: 1}.Normalize())
		if got > 100 {
			t.Errorf("Composite = %v, want <= 100", got)
		}
	})
}
