// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/vendorscope/vendorscope/internal/scoring"
)

var validate = validator.New()

// SupplierScore returns the full score breakdown for one supplier.
//
// GET /api/v1/suppliers/{id}/score?from=&to=&profile=
func (h *Handler) SupplierScore(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}
	supplierID := chi.URLParam(r, "id")

	start := time.Now()
	result, err := h.engine.ScoreSupplier(r.Context(), supplierID, window, h.parseRankOptions(r))
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, result, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// Rankings returns the ranked supplier report for a window.
//
// GET /api/v1/rankings?from=&to=&profile=&min_transactions=
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}

	start := time.Now()
	report, err := h.engine.RankSuppliers(r.Context(), window, h.parseRankOptions(r))
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, report, Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Cached:      report.FromCache,
	})
}

// rankingsRequest is the POST body for ranking runs with custom weights.
type rankingsRequest struct {
	From            time.Time             `json:"from" validate:"required"`
	To              time.Time             `json:"to" validate:"required,gtfield=From"`
	Profile         string                `json:"profile"`
	Weights         *scoring.WeightVector `json:"weights"`
	MinTransactions int                   `json:"min_transactions" validate:"min=-1"`
	SupplierIDs     []string              `json:"supplier_ids"`
}

// RankingsCustom runs a ranking with a request-supplied weight vector.
//
// POST /api/v1/rankings
func (h *Handler) RankingsCustom(w http.ResponseWriter, r *http.Request) {
	var req rankingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	start := time.Now()
	report, err := h.engine.RankSuppliers(r.Context(), scoring.Window{From: req.From, To: req.To}, scoring.RankOptions{
		Profile:         req.Profile,
		CustomWeights:   req.Weights,
		MinTransactions: req.MinTransactions,
		SupplierIDs:     req.SupplierIDs,
	})
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, report, Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Cached:      report.FromCache,
	})
}

// Trends returns rank movement between the window and its predecessor.
//
// GET /api/v1/trends?from=&to=&profile=
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}

	start := time.Now()
	records, err := h.engine.TrackTrends(r.Context(), window, h.parseRankOptions(r))
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, records, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// SupplierTrend returns the trend record for one supplier.
//
// GET /api/v1/suppliers/{id}/trend?from=&to=
func (h *Handler) SupplierTrend(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_WINDOW", err.Error())
		return
	}
	supplierID := chi.URLParam(r, "id")

	start := time.Now()
	record, err := h.engine.TrackSupplierTrend(r.Context(), supplierID, window)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, record, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// compareRequest is the POST body for supplier comparisons.
type compareRequest struct {
	From        time.Time             `json:"from" validate:"required"`
	To          time.Time             `json:"to" validate:"required,gtfield=From"`
	SupplierIDs []string              `json:"supplier_ids" validate:"required,min=2,dive,required"`
	Profile     string                `json:"profile"`
	Weights     *scoring.WeightVector `json:"weights"`
}

// Compare ranks an explicit supplier set against each other.
//
// POST /api/v1/compare
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	start := time.Now()
	cmp, err := h.engine.CompareSuppliers(r.Context(), req.SupplierIDs, scoring.Window{From: req.From, To: req.To}, scoring.RankOptions{
		Profile:       req.Profile,
		CustomWeights: req.Weights,
	})
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondData(w, http.StatusOK, cmp, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// Profiles lists the named weight profiles and the configured default.
//
// GET /api/v1/profiles
func (h *Handler) Profiles(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"default":  h.cfg.Scoring.DefaultProfile,
		"profiles": scoring.NamedProfiles(),
	}, Metadata{})
}
