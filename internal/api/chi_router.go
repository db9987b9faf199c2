// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/oceanus/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// Outside the /api/v1 group so the upgrade is never compressed or rate limited per request.
	r.With(middleware.PrometheusMetrics).Get("/api/v1/ws", h.WebSocket)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/vessel-types", h.VesselTypes)
			r.Get("/names", h.Names)
			r.Get("/fishing-locations", h.FishingLocations)
			r.Get("/{kind}", h.CatalogEntries)
		})
		r.Get("/geography", h.Geography)
		r.Get("/coordinates", h.Coordinates)

		r.Route("/state", func(r chi.Router) {
			r.Get("/", h.GetState)
			r.Put("/selection", h.SetSelection)
			r.Put("/interval", h.SetInterval)
			r.Put("/focus", h.SetFocus)
			r.Post("/initialize", h.Initialize)
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/frequency/{kind}", h.Frequency)
			r.Get("/sequences", h.Sequences)
			r.Get("/time-series", h.TimeSeries)
			r.Get("/colors/{category}", h.Colors)
		})

		r.Route("/pairs", func(r chi.Router) {
			r.Get("/", h.GetPairs)
			r.Post("/", h.AddPair)
			r.Delete("/", h.DeletePair)
			r.Post("/reset", h.ResetPairs)
		})
		r.Get("/unions", h.GetUnions)

		r.Route("/remote", func(r chi.Router) {
			r.Get("/tsne", h.GetTSNE)
			r.Post("/tsne", h.RefreshTSNE)
			r.Get("/aggregate-movements", h.GetAggregateMovements)
			r.Post("/aggregate-movements", h.RefreshAggregateMovements)
		})
	})

	return r
}
