// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"fmt"
	"math"
	"time"
)

// Component identifies one of the six scored performance dimensions.
type Component string

const (
	// ComponentPrice measures price competitiveness against the peer set.
	ComponentPrice Component = "price"
	// ComponentDelivery measures on-time delivery performance.
	ComponentDelivery Component = "delivery"
	// ComponentQuality measures return and adjustment rates.
	ComponentQuality Component = "quality"
	// ComponentFulfillment measures reliability and order fulfillment.
	ComponentFulfillment Component = "fulfillment"
	// ComponentPayment measures commercial payment terms.
	ComponentPayment Component = "payment"
	// ComponentResponse measures order turnaround time.
	ComponentResponse Component = "response"
)

// Components returns the six components in canonical order.
func Components() []Component {
	return []Component{
		ComponentPrice,
		ComponentDelivery,
		ComponentQuality,
		ComponentFulfillment,
		ComponentPayment,
		ComponentResponse,
	}
}

// Window is a half-open analysis interval [From, To).
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return w.To.Sub(w.From)
}

// Previous returns the immediately preceding window of equal length,
// [From-len, From). The boundary is shared, not gapped: the previous
// window ends exactly where this one begins.
func (w Window) Previous() Window {
	return Window{
		From: w.From.Add(-w.Duration()),
		To:   w.From,
	}
}

// Validate checks that the window is non-empty and ordered.
func (w Window) Validate() error {
	if w.From.IsZero() || w.To.IsZero() {
		return fmt.Errorf("window bounds must be set")
	}
	if !w.To.After(w.From) {
		return fmt.Errorf("window end %s must be after start %s",
			w.To.Format(time.RFC3339), w.From.Format(time.RFC3339))
	}
	return nil
}

// String returns the window in compact RFC3339 form.
func (w Window) String() string {
	return w.From.UTC().Format(time.RFC3339) + "/" + w.To.UTC().Format(time.RFC3339)
}

// DeliveryRecord is one expected-vs-actual delivery observation.
type DeliveryRecord struct {
	OrderID     string    `json:"order_id"`
	ExpectedAt  time.Time `json:"expected_at"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// DelayDays returns the delivery delay in fractional days.
// Negative values indicate early delivery.
func (d DeliveryRecord) DelayDays() float64 {
	return d.DeliveredAt.Sub(d.ExpectedAt).Hours() / 24
}

// DeliveryStats holds pre-aggregated delivery timing statistics, used when
// per-transaction delivery records are unavailable.
type DeliveryStats struct {
	TotalCount      int     `json:"total_count"`
	OnTimeCount     int     `json:"on_time_count"`
	MeanDelayDays   float64 `json:"mean_delay_days"`
	DelayStdDevDays float64 `json:"delay_stddev_days"`
}

// MetricsSnapshot is the aggregated transactional facts for one supplier
// over one analysis window. It is the sole input to the component scorers.
type MetricsSnapshot struct {
	SupplierID string `json:"supplier_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`

	// Transaction volume
	OrderCount     int     `json:"order_count"`
	TotalValue     float64 `json:"total_value"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	UniqueProducts int     `json:"unique_products"`

	// Timing
	AvgOrderIntervalDays float64   `json:"avg_order_interval_days"`
	FirstOrderAt         time.Time `json:"first_order_at"`
	LastOrderAt          time.Time `json:"last_order_at"`

	// Quality indicators
	ReturnCount     int `json:"return_count"`
	AdjustmentCount int `json:"adjustment_count"`
	DefectCount     int `json:"defect_count"`
	ComplaintCount  int `json:"complaint_count"`

	// Delivery indicators. Deliveries takes precedence when non-empty;
	// DeliveryStats is the pre-aggregated fallback.
	Deliveries    []DeliveryRecord `json:"deliveries,omitempty"`
	DeliveryStats *DeliveryStats   `json:"delivery_stats,omitempty"`

	// Commercial terms
	PaymentTermDays      int      `json:"payment_term_days"`
	CreditLimit          float64  `json:"credit_limit"`
	PaymentMethods       []string `json:"payment_methods,omitempty"`
	EarlyPaymentDiscount bool     `json:"early_payment_discount"`

	// AvgResponseDays is the average elapsed time between order placement
	// and completion, in fractional days. Nil when unknown.
	AvgResponseDays *float64 `json:"avg_response_days,omitempty"`
}

// ComponentScores holds the six normalized scores, each in [0,100].
type ComponentScores struct {
	Price       float64 `json:"price"`
	Delivery    float64 `json:"delivery"`
	Quality     float64 `json:"quality"`
	Fulfillment float64 `json:"fulfillment"`
	Payment     float64 `json:"payment"`
	Response    float64 `json:"response"`
}

// Get returns the score for the named component, or 0 for unknown names.
func (c ComponentScores) Get(comp Component) float64 {
	switch comp {
	case ComponentPrice:
		return c.Price
	case ComponentDelivery:
		return c.Delivery
	case ComponentQuality:
		return c.Quality
	case ComponentFulfillment:
		return c.Fulfillment
	case ComponentPayment:
		return c.Payment
	case ComponentResponse:
		return c.Response
	default:
		return 0
	}
}

// Min returns the lowest component score, used by the critical-failure
// tier override.
func (c ComponentScores) Min() float64 {
	minScore := c.Price
	for _, comp := range Components()[1:] {
		if s := c.Get(comp); s < minScore {
			minScore = s
		}
	}
	return minScore
}

// ToMap returns the scores keyed by component name.
func (c ComponentScores) ToMap() map[Component]float64 {
	m := make(map[Component]float64, 6)
	for _, comp := range Components() {
		m[comp] = c.Get(comp)
	}
	return m
}

// Tier is the discrete performance classification of a supplier.
type Tier string

const (
	// TierPremium is the top tier (composite >= 85, no critical failure).
	TierPremium Tier = "premium"
	// TierPreferred is the second tier (composite >= 70).
	TierPreferred Tier = "preferred"
	// TierStandard is the middle tier (composite >= 55).
	TierStandard Tier = "standard"
	// TierDeveloping is the tier for suppliers needing improvement (>= 40).
	TierDeveloping Tier = "developing"
	// TierProbation is the bottom tier, also forced by any critical
	// component failure regardless of composite score.
	TierProbation Tier = "probation"
)

// Order returns the tier position for comparisons, 0 being the best.
func (t Tier) Order() int {
	switch t {
	case TierPremium:
		return 0
	case TierPreferred:
		return 1
	case TierStandard:
		return 2
	case TierDeveloping:
		return 3
	case TierProbation:
		return 4
	default:
		return 5
	}
}

// RiskLevel is the discrete risk classification derived from a count of
// risk indicators.
type RiskLevel string

const (
	// RiskMinimal indicates no risk factors.
	RiskMinimal RiskLevel = "minimal"
	// RiskLow indicates one risk factor.
	RiskLow RiskLevel = "low"
	// RiskMedium indicates two risk factors.
	RiskMedium RiskLevel = "medium"
	// RiskHigh indicates three or more risk factors.
	RiskHigh RiskLevel = "high"
)

// Order returns the risk position for comparisons, 0 being the lowest risk.
func (r RiskLevel) Order() int {
	switch r {
	case RiskMinimal:
		return 0
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 4
	}
}

// ScoreResult is the complete scoring outcome for one supplier. Results are
// immutable: a fresh value is created on every scoring invocation.
type ScoreResult struct {
	SupplierID string `json:"supplier_id"`
	Code       string `json:"code,omitempty"`
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`

	Window  Window       `json:"window"`
	Profile string       `json:"profile"`
	Weights WeightVector `json:"weights"`

	// ProfileWarning is set when an unknown profile name fell back to the
	// default. It is an annotation, not an error.
	ProfileWarning string `json:"profile_warning,omitempty"`

	Components ComponentScores   `json:"components"`
	Rationale  map[string]string `json:"rationale,omitempty"`

	Composite float64   `json:"composite"`
	Tier      Tier      `json:"tier"`
	Risk      RiskLevel `json:"risk"`

	// NeutralOnly marks suppliers whose every component score fell back to
	// the neutral value for lack of data.
	NeutralOnly bool `json:"neutral_only,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

// RankingEntry is a ScoreResult positioned within a ranked set. Ranks are
// only meaningful relative to the set they were computed over.
type RankingEntry struct {
	ScoreResult

	// Rank is the 1-based position, 1 being the best.
	Rank int `json:"rank"`

	// Percentile is the share of the set at or below this entry, 0-100.
	Percentile float64 `json:"percentile"`
}

// TierShare is the count and percentage of suppliers in one tier.
type TierShare struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// TierDistribution maps each tier to its share of the ranked set.
type TierDistribution map[Tier]TierShare

// RankingReport is the full output of a ranking run.
type RankingReport struct {
	Window          Window           `json:"window"`
	Profile         string           `json:"profile"`
	SupplierCount   int              `json:"supplier_count"`
	Rankings        []RankingEntry   `json:"rankings"`
	Distribution    TierDistribution `json:"tier_distribution"`
	Recommendations []Recommendation `json:"recommendations"`
	Alerts          []Alert          `json:"alerts"`
	FromCache       bool             `json:"from_cache"`
	GeneratedAt     time.Time        `json:"generated_at"`
	ElapsedMS       int64            `json:"elapsed_ms"`
}

// TrendDirection classifies rank movement between adjacent windows.
type TrendDirection string

const (
	// TrendImproving indicates the supplier's rank improved.
	TrendImproving TrendDirection = "improving"
	// TrendDeclining indicates the supplier's rank worsened.
	TrendDeclining TrendDirection = "declining"
	// TrendStable indicates no rank movement.
	TrendStable TrendDirection = "stable"
	// TrendNewSupplier indicates no previous-period data for the supplier.
	TrendNewSupplier TrendDirection = "new_supplier"
	// TrendInsufficientData indicates the previous-period run itself was
	// unavailable; the diff degrades rather than failing.
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// TrendRecord is a diff between two scoring runs over adjacent,
// equal-length windows.
type TrendRecord struct {
	SupplierID string `json:"supplier_id"`
	Name       string `json:"name,omitempty"`

	CurrentRank  int     `json:"current_rank"`
	CurrentScore float64 `json:"current_score"`

	PreviousRank  *int     `json:"previous_rank,omitempty"`
	PreviousScore *float64 `json:"previous_score,omitempty"`

	// RankDelta is previousRank - currentRank; positive means improved.
	RankDelta int `json:"rank_delta"`
	// ScoreDelta is currentScore - previousScore.
	ScoreDelta float64 `json:"score_delta"`

	Direction TrendDirection `json:"direction"`
}

// Priority orders recommendations and alerts, critical first.
type Priority string

const (
	// PriorityCritical demands immediate action.
	PriorityCritical Priority = "critical"
	// PriorityHigh should be acted on soon.
	PriorityHigh Priority = "high"
	// PriorityMedium is routine guidance.
	PriorityMedium Priority = "medium"
	// PriorityLow is informational.
	PriorityLow Priority = "low"
)

// Order returns the sort position, 0 being the most urgent.
func (p Priority) Order() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Recommendation is rule-derived guidance over the ranked set. It is
// stateless and regenerated on every run, never persisted here.
type Recommendation struct {
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	SupplierIDs []string `json:"supplier_ids,omitempty"`
	Message     string   `json:"message"`
	Actions     []string `json:"actions,omitempty"`
}

// Alert is a supplier-scoped condition raised from component or composite
// scores.
type Alert struct {
	Type       string   `json:"type"`
	Severity   Priority `json:"severity"`
	SupplierID string   `json:"supplier_id"`
	Message    string   `json:"message"`
}

// ComparisonEntry is one supplier in a relative comparison.
type ComparisonEntry struct {
	RankingEntry

	// BestIn lists the components this supplier leads within the compared
	// set.
	BestIn []Component `json:"best_in,omitempty"`
}

// Comparison is the relative view over an explicit supplier set.
type Comparison struct {
	Window  Window            `json:"window"`
	Entries []ComparisonEntry `json:"entries"`

	// BestByComponent maps each component to the leading supplier ID.
	BestByComponent map[Component]string `json:"best_by_component"`

	// Spread maps each component to max-min across the compared set.
	Spread map[Component]float64 `json:"spread"`

	GeneratedAt time.Time `json:"generated_at"`
}

// NeutralScore is returned by scorers when required metrics are absent,
// avoiding penalizing suppliers with sparse history.
const NeutralScore = 50.0

// Round2 rounds to 2 decimal places, the precision of all scores at the
// API boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp limits v to [0,100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
