// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package api provides the HTTP surface over the scoring engine: single
// supplier scores, rankings, trends, comparisons, and health.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vendorscope/vendorscope/internal/config"
	"github.com/vendorscope/vendorscope/internal/scoring"
)

// defaultWindowDays is the analysis window length when the request does not
// bound it explicitly.
const defaultWindowDays = 90

// HealthChecker reports readiness of a backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler holds dependencies for all API endpoints.
type Handler struct {
	engine    *scoring.Engine
	db        HealthChecker
	cfg       *config.Config
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates the API handler.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHandler(engine *scoring.Engine, db HealthChecker, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:    engine,
		db:        db,
		cfg:       cfg,
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}

// Health reports liveness, database readiness, and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			status = "degraded"
			dbStatus = err.Error()
			code = http.StatusServiceUnavailable
		}
	}

	respondData(w, code, map[string]interface{}{
		"status":         status,
		"database":       dbStatus,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	}, Metadata{})
}

// parseWindow reads from/to query parameters, accepting RFC3339 timestamps
// or plain dates. Missing bounds default to the trailing 90 days.
func parseWindow(r *http.Request) (scoring.Window, error) {
	now := time.Now().UTC()
	w := scoring.Window{
		From: now.AddDate(0, 0, -defaultWindowDays),
		To:   now,
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			return scoring.Window{}, fmt.Errorf("invalid 'from': %w", err)
		}
		w.From = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			return scoring.Window{}, fmt.Errorf("invalid 'to': %w", err)
		}
		w.To = t
	}

	if err := w.Validate(); err != nil {
		return scoring.Window{}, err
	}
	return w, nil
}

func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("expected RFC3339 timestamp or YYYY-MM-DD date")
	}
	return t.UTC(), nil
}

// parseRankOptions reads profile and min_transactions query parameters.
func (h *Handler) parseRankOptions(r *http.Request) scoring.RankOptions {
	opts := scoring.RankOptions{
		Profile: r.URL.Query().Get("profile"),
	}
	if opts.Profile == "" {
		opts.Profile = h.cfg.Scoring.DefaultProfile
	}
	if raw := r.URL.Query().Get("min_transactions"); raw != "" {
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err == nil {
			opts.MinTransactions = n
		}
	}
	return opts
}

// respondEngineError maps engine sentinels onto HTTP statuses.
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrSupplierNotFound):
		respondError(w, http.StatusNotFound, "SUPPLIER_NOT_FOUND", err.Error())
	case errors.Is(err, scoring.ErrProviderUnavailable):
		respondError(w, http.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "request canceled or timed out")
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
