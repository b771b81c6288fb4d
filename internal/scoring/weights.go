// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"fmt"
	"math"
)

// WeightVector assigns a non-negative weight to each component. Weights are
// normalized to sum to 1.0 before use.
type WeightVector struct {
	Price       float64 `json:"price"`
	Delivery    float64 `json:"delivery"`
	Quality     float64 `json:"quality"`
	Fulfillment float64 `json:"fulfillment"`
	Payment     float64 `json:"payment"`
	Response    float64 `json:"response"`
}

// DefaultProfile is the profile used when none is requested or the
// requested name is unknown.
const DefaultProfile = "balanced"

// CustomProfile is the profile name reported when caller-supplied weights
// override the named profiles.
const CustomProfile = "custom"

// namedProfiles is the closed set of business-priority weight profiles.
// Each shifts 15-20 points of weight toward the named dimension at the
// expense of the others.
var namedProfiles = map[string]WeightVector{
	DefaultProfile: {Price: 0.30, Delivery: 0.25, Quality: 0.20, Fulfillment: 0.15, Payment: 0.00, Response: 0.10},
	"cost":         {Price: 0.45, Delivery: 0.20, Quality: 0.15, Fulfillment: 0.10, Payment: 0.05, Response: 0.05},
	"quality":      {Price: 0.15, Delivery: 0.20, Quality: 0.40, Fulfillment: 0.15, Payment: 0.00, Response: 0.10},
	"delivery":     {Price: 0.15, Delivery: 0.45, Quality: 0.15, Fulfillment: 0.15, Payment: 0.00, Response: 0.10},
	"service":      {Price: 0.15, Delivery: 0.15, Quality: 0.15, Fulfillment: 0.15, Payment: 0.10, Response: 0.30},
}

// ProfileNames returns the known profile names.
func ProfileNames() []string {
	names := make([]string, 0, len(namedProfiles))
	for name := range namedProfiles {
		names = append(names, name)
	}
	return names
}

// NamedProfiles returns a copy of the named profile table.
func NamedProfiles() map[string]WeightVector {
	profiles := make(map[string]WeightVector, len(namedProfiles))
	for name, w := range namedProfiles {
		profiles[name] = w
	}
	return profiles
}

// Get returns the weight for the named component, or 0 for unknown names.
func (w WeightVector) Get(comp Component) float64 {
	switch comp {
	case ComponentPrice:
		return w.Price
	case ComponentDelivery:
		return w.Delivery
	case ComponentQuality:
		return w.Quality
	case ComponentFulfillment:
		return w.Fulfillment
	case ComponentPayment:
		return w.Payment
	case ComponentResponse:
		return w.Response
	default:
		return 0
	}
}

// Sum returns the total weight.
func (w WeightVector) Sum() float64 {
	return w.Price + w.Delivery + w.Quality + w.Fulfillment + w.Payment + w.Response
}

// Normalize returns a copy with weights scaled to sum to 1.0. A zero vector
// normalizes to equal weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w WeightVector) Normalize() WeightVector {
	sum := w.Sum()
	if sum == 0 {
		const equalWeight = 1.0 / 6.0
		return WeightVector{
			Price: equalWeight, Delivery: equalWeight, Quality: equalWeight,
			Fulfillment: equalWeight, Payment: equalWeight, Response: equalWeight,
		}
	}
	return WeightVector{
		Price:       w.Price / sum,
		Delivery:    w.Delivery / sum,
		Quality:     w.Quality / sum,
		Fulfillment: w.Fulfillment / sum,
		Payment:     w.Payment / sum,
		Response:    w.Response / sum,
	}
}

// Validate rejects negative weights and all-zero vectors.
func (w WeightVector) Validate() error {
	for _, comp := range Components() {
		if w.Get(comp) < 0 {
			return fmt.Errorf("weight for %s must be non-negative, got %v", comp, w.Get(comp))
		}
	}
	if w.Sum() == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// IsNormalized reports whether weights sum to 1.0 within floating
// tolerance.
func (w WeightVector) IsNormalized() bool {
	return math.Abs(w.Sum()-1.0) < 1e-9
}

// ResolvedProfile is the outcome of weight resolution: the effective
// vector, the profile name it resolved to, and a warning annotation when
// an unknown name fell back to the default.
type ResolvedProfile struct {
	Name    string
	Weights WeightVector
	Warning string
}

// ResolveProfile selects the weight vector for a scoring run.
//
// Caller-supplied custom weights override named profiles outright after
// validation and renormalization. Unknown profile names fall back to the
// default profile with a warning annotation rather than failing.
func ResolveProfile(name string, custom *WeightVector) (ResolvedProfile, error) {
	if custom != nil {
		if err := custom.Validate(); err != nil {
			return ResolvedProfile{}, fmt.Errorf("invalid custom weights: %w", err)
		}
		return ResolvedProfile{
			Name:    CustomProfile,
			Weights: custom.Normalize(),
		}, nil
	}

	if name == "" {
		name = DefaultProfile
	}
	if w, ok := namedProfiles[name]; ok {
		return ResolvedProfile{Name: name, Weights: w.Normalize()}, nil
	}

	return ResolvedProfile{
		Name:    DefaultProfile,
		Weights: namedProfiles[DefaultProfile].Normalize(),
		Warning: fmt.Sprintf("unknown weight profile %q, using %q", name, DefaultProfile),
	}, nil
}

// Composite computes the weighted sum of component scores, rounded to 2
// decimals and clamped to [0,100]. The weight vector must already be
// normalized.
func Composite(scores ComponentScores, weights WeightVector) float64 {
	var total float64
	for _, comp := range Components() {
		total += scores.Get(comp) * weights.Get(comp)
	}
	return Round2(Clamp(total))
}
