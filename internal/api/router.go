// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full HTTP handler with the global middleware stack
// and all routes.
func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(recovererMiddleware(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/api/v1/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if h.cfg.Server.RateLimitReqs > 0 {
			r.Use(httprate.LimitByIP(h.cfg.Server.RateLimitReqs, h.cfg.Server.RateLimitWindow))
		}
		r.Use(metricsMiddleware)

		r.Get("/rankings", h.Rankings)
		r.Post("/rankings", h.RankingsCustom)
		r.Get("/trends", h.Trends)
		r.Post("/compare", h.Compare)
		r.Get("/profiles", h.Profiles)

		r.Route("/suppliers/{id}", func(r chi.Router) {
			r.Get("/score", h.SupplierScore)
			r.Get("/trend", h.SupplierTrend)
		})
	})

	return r
}
