// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package scoring

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vendorscope/vendorscope/internal/cache"
	"github.com/vendorscope/vendorscope/internal/metrics"
)

// ScoreEnv carries run-scoped inputs shared by the component scorers.
type ScoreEnv struct {
	// PeerMean is the mean average order value across the scoring run's
	// peer set, required by the price scorer.
	PeerMean float64

	// GraceDays is the delivery on-time grace threshold.
	GraceDays float64
}

// ComponentScorer scores one performance dimension. Implementations live in
// the scorers package and are registered with the engine at wiring time.
// Implementations must be pure: no shared state, identical output for
// identical input.
type ComponentScorer interface {
	// Component returns the dimension this scorer covers.
	Component() Component

	// Score maps a snapshot to a score in [0,100] and a rationale.
	Score(snap MetricsSnapshot, env ScoreEnv) (float64, string)
}

// AlertSink receives generated alerts, best effort. Implemented by the
// events package.
type AlertSink interface {
	PublishAlerts(ctx context.Context, w Window, alerts []Alert) error
}

// Engine coordinates the full scoring pipeline. It is safe for concurrent
// use: every invocation produces a fresh immutable result.
type Engine struct {
	cfg      *Config
	provider MetricsProvider
	logger   zerolog.Logger

	scorerMu sync.RWMutex
	scorers  map[Component]ComponentScorer

	// Optional collaborators
	cache cache.Cacher
	sink  AlertSink
}

// NewEngine creates a scoring engine backed by the given metrics provider.
func NewEngine(cfg *Config, provider MetricsProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("metrics provider is required")
	}
	return &Engine{
		cfg:      cfg,
		provider: provider,
		logger:   logger.With().Str("component", "scoring").Logger(),
		scorers:  make(map[Component]ComponentScorer),
	}, nil
}

// RegisterScorer adds a component scorer. Registering a second scorer for
// the same component replaces the first.
func (e *Engine) RegisterScorer(s ComponentScorer) {
	e.scorerMu.Lock()
	defer e.scorerMu.Unlock()
	e.scorers[s.Component()] = s
	e.logger.Info().Str("scorer", string(s.Component())).Msg("registered scorer")
}

// SetCache attaches an advisory result cache. Nil disables caching.
func (e *Engine) SetCache(c cache.Cacher) {
	e.cache = c
}

// SetAlertSink attaches a best-effort alert publisher.
func (e *Engine) SetAlertSink(s AlertSink) {
	e.sink = s
}

// RankOptions filters and parameterizes a ranking run.
type RankOptions struct {
	// Profile selects a named weight profile. Empty means the default.
	Profile string

	// CustomWeights overrides named profiles outright when non-nil.
	CustomWeights *WeightVector

	// MinTransactions overrides the configured minimum. Zero means use the
	// configured default; negative means no minimum.
	MinTransactions int

	// SupplierIDs restricts the run to the given suppliers.
	SupplierIDs []string
}

// RankSuppliers runs the full pipeline for one window and weight profile:
// scoring, ranking, tier distribution, recommendations, and alerts.
//
// An empty qualifying supplier set yields an empty report, not an error.
// Results are cached with a bounded TTL keyed by (window, supplier-set
// fingerprint, profile).
func (e *Engine) RankSuppliers(ctx context.Context, w Window, opts RankOptions) (*RankingReport, error) {
	start := time.Now()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	prof, err := ResolveProfile(opts.Profile, opts.CustomWeights)
	if err != nil {
		return nil, err
	}
	minTx := e.resolveMinTransactions(opts.MinTransactions)

	key := rankCacheKey(w, prof, opts.SupplierIDs, minTx)
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			if cached, ok := v.(*RankingReport); ok {
				metrics.ScoringCacheHits.Inc()
				cp := *cached
				cp.FromCache = true
				return &cp, nil
			}
		}
		metrics.ScoringCacheMisses.Inc()
	}

	snaps, err := e.provider.GetSupplierMetrics(ctx, MetricsQuery{
		Window:          w,
		SupplierIDs:     opts.SupplierIDs,
		MinTransactions: minTx,
	})
	if err != nil {
		metrics.ScoringRunsTotal.WithLabelValues("rank", "error").Inc()
		return nil, fmt.Errorf("fetch supplier metrics: %w", err)
	}

	results, err := e.scoreSet(ctx, w, snaps, prof)
	if err != nil {
		metrics.ScoringRunsTotal.WithLabelValues("rank", "error").Inc()
		return nil, err
	}

	rankings := Rank(results)
	advisor := NewAdvisor(e.cfg, e.logger)
	recs, alerts := advisor.Generate(rankings)

	report := &RankingReport{
		Window:          w,
		Profile:         prof.Name,
		SupplierCount:   len(rankings),
		Rankings:        rankings,
		Distribution:    Distribution(rankings),
		Recommendations: recs,
		Alerts:          alerts,
		GeneratedAt:     time.Now().UTC(),
		ElapsedMS:       time.Since(start).Milliseconds(),
	}

	e.publishAlerts(ctx, w, alerts)

	if e.cache != nil {
		e.cache.SetWithTTL(key, report, e.cfg.CacheTTL)
	}

	metrics.ScoringRunsTotal.WithLabelValues("rank", "ok").Inc()
	metrics.ScoringRunDuration.WithLabelValues("rank").Observe(time.Since(start).Seconds())
	metrics.RankedSuppliers.Observe(float64(len(rankings)))
	e.logger.Debug().
		Str("window", w.String()).
		Str("profile", prof.Name).
		Int("suppliers", len(rankings)).
		Dur("elapsed", time.Since(start)).
		Msg("ranking run complete")

	return report, nil
}

// ScoreSupplier scores a single supplier. The full peer set is still
// fetched because price competitiveness is relative to peers.
func (e *Engine) ScoreSupplier(ctx context.Context, supplierID string, w Window, opts RankOptions) (*ScoreResult, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	prof, err := ResolveProfile(opts.Profile, opts.CustomWeights)
	if err != nil {
		return nil, err
	}

	snaps, err := e.provider.GetSupplierMetrics(ctx, MetricsQuery{Window: w})
	if err != nil {
		return nil, fmt.Errorf("fetch supplier metrics: %w", err)
	}

	var target *MetricsSnapshot
	for i := range snaps {
		if snaps[i].SupplierID == supplierID {
			target = &snaps[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("supplier %s in window %s: %w", supplierID, w, ErrSupplierNotFound)
	}

	env := ScoreEnv{PeerMean: peerMeanOrderValue(snaps), GraceDays: e.cfg.DeliveryGraceDays}
	res := e.scoreOne(ctx, *target, env, prof, time.Now().UTC(), w)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	metrics.ScoringRunsTotal.WithLabelValues("score", "ok").Inc()
	return &res, nil
}

// TrackTrends diffs the current window's ranking against the immediately
// preceding window of equal length. A failed previous-period run degrades
// to insufficient_data entries rather than failing the request.
func (e *Engine) TrackTrends(ctx context.Context, w Window, opts RankOptions) ([]TrendRecord, error) {
	current, err := e.RankSuppliers(ctx, w, opts)
	if err != nil {
		return nil, err
	}
	if len(current.Rankings) == 0 {
		return nil, nil
	}

	// The previous-period run is restricted to the suppliers ranked in the
	// current window; suppliers active only in the prior period would
	// otherwise shift ranks and the price peer mean for unchanged suppliers.
	prevOpts := opts
	prevOpts.SupplierIDs = make([]string, len(current.Rankings))
	for i := range current.Rankings {
		prevOpts.SupplierIDs[i] = current.Rankings[i].SupplierID
	}

	previous, err := e.RankSuppliers(ctx, w.Previous(), prevOpts)
	if err != nil {
		e.logger.Warn().Err(err).
			Str("window", w.Previous().String()).
			Msg("previous-period run unavailable, degrading trends")
		return InsufficientTrends(current.Rankings), nil
	}

	return DiffTrends(current.Rankings, previous.Rankings), nil
}

// TrackSupplierTrend returns the trend record for one supplier.
func (e *Engine) TrackSupplierTrend(ctx context.Context, supplierID string, w Window) (*TrendRecord, error) {
	records, err := e.TrackTrends(ctx, w, RankOptions{})
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].SupplierID == supplierID {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("supplier %s in window %s: %w", supplierID, w, ErrSupplierNotFound)
}

// CompareSuppliers ranks an explicit supplier set relative to each other
// and marks per-component leaders. No minimum transaction filter applies:
// the caller chose the set.
func (e *Engine) CompareSuppliers(ctx context.Context, supplierIDs []string, w Window, opts RankOptions) (*Comparison, error) {
	if len(supplierIDs) < 2 {
		return nil, fmt.Errorf("comparison requires at least two suppliers, got %d", len(supplierIDs))
	}

	opts.SupplierIDs = supplierIDs
	opts.MinTransactions = -1
	report, err := e.RankSuppliers(ctx, w, opts)
	if err != nil {
		return nil, err
	}
	return buildComparison(w, report.Rankings), nil
}

// buildComparison derives per-component leaders and spreads from a ranked
// set.
func buildComparison(w Window, rankings []RankingEntry) *Comparison {
	cmp := &Comparison{
		Window:          w,
		BestByComponent: make(map[Component]string, 6),
		Spread:          make(map[Component]float64, 6),
		GeneratedAt:     time.Now().UTC(),
	}
	if len(rankings) == 0 {
		return cmp
	}

	bestIn := make(map[string][]Component)
	for _, comp := range Components() {
		bestID := rankings[0].SupplierID
		best := rankings[0].Components.Get(comp)
		worst := best
		for _, e := range rankings[1:] {
			s := e.Components.Get(comp)
			if s > best {
				best = s
				bestID = e.SupplierID
			}
			if s < worst {
				worst = s
			}
		}
		cmp.BestByComponent[comp] = bestID
		cmp.Spread[comp] = Round2(best - worst)
		bestIn[bestID] = append(bestIn[bestID], comp)
	}

	cmp.Entries = make([]ComparisonEntry, len(rankings))
	for i, e := range rankings {
		cmp.Entries[i] = ComparisonEntry{
			RankingEntry: e,
			BestIn:       bestIn[e.SupplierID],
		}
	}
	return cmp
}

// scoreSet scores every snapshot concurrently. Per-supplier pipelines are
// independent; the returned slice is the synchronization barrier.
func (e *Engine) scoreSet(ctx context.Context, w Window, snaps []MetricsSnapshot, prof ResolvedProfile) ([]ScoreResult, error) {
	if len(snaps) == 0 {
		return nil, nil
	}

	env := ScoreEnv{PeerMean: peerMeanOrderValue(snaps), GraceDays: e.cfg.DeliveryGraceDays}
	now := time.Now().UTC()

	results := make([]ScoreResult, len(snaps))
	g, gctx := errgroup.WithContext(ctx)
	if e.cfg.MaxConcurrency > 0 {
		g.SetLimit(e.cfg.MaxConcurrency)
	}
	for i := range snaps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.scoreOne(gctx, snaps[i], env, prof, now, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.cfg.ExcludeNeutralOnly {
		kept := results[:0]
		for _, r := range results {
			if !r.NeutralOnly {
				kept = append(kept, r)
			}
		}
		results = kept
	}
	return results, nil
}

// scoreOne runs the six component scorers for one supplier and composes
// the result. Scorers are dispatched as independent concurrent tasks and
// joined before composition; ordering between them is unspecified.
func (e *Engine) scoreOne(ctx context.Context, base MetricsSnapshot, env ScoreEnv, prof ResolvedProfile, now time.Time, w Window) ScoreResult {
	snap, notes := e.enrichSnapshot(ctx, base, w)

	var (
		scores    ComponentScores
		rationale = make(map[string]string, 6)
		mu        sync.Mutex
		wg        sync.WaitGroup
	)
	for _, comp := range Components() {
		wg.Add(1)
		go func(comp Component) {
			defer wg.Done()
			score, why := e.runScorer(comp, snap, env)
			mu.Lock()
			scores = scores.with(comp, score)
			rationale[string(comp)] = why
			mu.Unlock()
		}(comp)
	}
	wg.Wait()

	// Degraded detail fetches force the affected component to neutral with
	// an annotated rationale.
	for comp, note := range notes {
		scores = scores.with(comp, NeutralScore)
		rationale[string(comp)] = note
		metrics.NeutralFallbacksTotal.WithLabelValues(string(comp)).Inc()
	}

	neutralOnly := true
	for _, comp := range Components() {
		if !strings.HasPrefix(rationale[string(comp)], "neutral") {
			neutralOnly = false
			break
		}
	}

	composite := Composite(scores, prof.Weights)
	return ScoreResult{
		SupplierID:     snap.SupplierID,
		Code:           snap.Code,
		Name:           snap.Name,
		Category:       snap.Category,
		Window:         w,
		Profile:        prof.Name,
		Weights:        prof.Weights,
		ProfileWarning: prof.Warning,
		Components:     scores,
		Rationale:      rationale,
		Composite:      composite,
		Tier:           ClassifyTier(composite, scores, e.cfg.CriticalScoreFloor),
		Risk:           AssessRisk(scores, snap.TotalValue, e.cfg.MinVolumeFloor),
		NeutralOnly:    neutralOnly,
		GeneratedAt:    now,
	}
}

// enrichSnapshot fills delivery and quality detail from the provider when
// the base snapshot lacks them. Fetch failures degrade the affected
// component rather than aborting the run; the returned notes carry the
// annotations.
func (e *Engine) enrichSnapshot(ctx context.Context, snap MetricsSnapshot, w Window) (MetricsSnapshot, map[Component]string) {
	notes := make(map[Component]string)

	needDelivery := len(snap.Deliveries) == 0 && snap.DeliveryStats == nil
	hadQualityCounts := snap.ReturnCount+snap.AdjustmentCount+snap.DefectCount+snap.ComplaintCount > 0

	var wg sync.WaitGroup
	var mu sync.Mutex

	if needDelivery {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs, err := e.provider.GetDeliveryDetail(ctx, snap.SupplierID, w)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.logger.Warn().Err(err).Str("supplier_id", snap.SupplierID).Msg("delivery detail unavailable")
				notes[ComponentDelivery] = fmt.Sprintf("neutral: delivery detail unavailable: %v", err)
				return
			}
			snap.Deliveries = recs
		}()
	}

	if !hadQualityCounts && snap.OrderCount > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qd, err := e.provider.GetQualityDetail(ctx, snap.SupplierID, w)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.logger.Warn().Err(err).Str("supplier_id", snap.SupplierID).Msg("quality detail unavailable")
				notes[ComponentQuality] = fmt.Sprintf("neutral: quality detail unavailable: %v", err)
				return
			}
			snap.ReturnCount = qd.ReturnCount
			snap.AdjustmentCount = qd.AdjustmentCount
			snap.DefectCount = qd.DefectCount
			snap.ComplaintCount = qd.ComplaintCount
		}()
	}

	wg.Wait()
	return snap, notes
}

// runScorer invokes the registered scorer for a component, falling back to
// neutral when none is registered.
func (e *Engine) runScorer(comp Component, snap MetricsSnapshot, env ScoreEnv) (float64, string) {
	e.scorerMu.RLock()
	s, ok := e.scorers[comp]
	e.scorerMu.RUnlock()
	if !ok {
		return NeutralScore, "neutral: no scorer registered"
	}
	return s.Score(snap, env)
}

// publishAlerts forwards alerts to the sink, best effort.
func (e *Engine) publishAlerts(ctx context.Context, w Window, alerts []Alert) {
	if e.sink == nil || len(alerts) == 0 {
		return
	}
	if err := e.sink.PublishAlerts(ctx, w, alerts); err != nil {
		e.logger.Warn().Err(err).Int("alerts", len(alerts)).Msg("alert publication failed")
	}
}

// resolveMinTransactions maps option semantics onto the provider query:
// zero means the configured default, negative means no minimum.
func (e *Engine) resolveMinTransactions(opt int) int {
	switch {
	case opt < 0:
		return 0
	case opt == 0:
		return e.cfg.MinTransactions
	default:
		return opt
	}
}

// peerMeanOrderValue is the mean average order value across the peer set,
// ignoring suppliers without order value data.
func peerMeanOrderValue(snaps []MetricsSnapshot) float64 {
	var sum float64
	var n int
	for i := range snaps {
		if snaps[i].AvgOrderValue > 0 {
			sum += snaps[i].AvgOrderValue
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// with returns a copy of the score set with one component replaced.
func (c ComponentScores) with(comp Component, score float64) ComponentScores {
	switch comp {
	case ComponentPrice:
		c.Price = score
	case ComponentDelivery:
		c.Delivery = score
	case ComponentQuality:
		c.Quality = score
	case ComponentFulfillment:
		c.Fulfillment = score
	case ComponentPayment:
		c.Payment = score
	case ComponentResponse:
		c.Response = score
	}
	return c
}

// rankCacheKey builds the deterministic cache key for a ranking run from
// the window bounds, supplier-set fingerprint, and weight profile.
func rankCacheKey(w Window, prof ResolvedProfile, supplierIDs []string, minTx int) string {
	ids := make([]string, len(supplierIDs))
	copy(ids, supplierIDs)
	sort.Strings(ids)

	parts := []string{
		w.String(),
		prof.Name,
		fmt.Sprintf("%.6f", prof.Weights.Price),
		fmt.Sprintf("%.6f", prof.Weights.Delivery),
		fmt.Sprintf("%.6f", prof.Weights.Quality),
		fmt.Sprintf("%.6f", prof.Weights.Fulfillment),
		fmt.Sprintf("%.6f", prof.Weights.Payment),
		fmt.Sprintf("%.6f", prof.Weights.Response),
		strconv.Itoa(minTx),
	}
	parts = append(parts, ids...)
	return cache.GenerateKey("rank", parts...)
}
