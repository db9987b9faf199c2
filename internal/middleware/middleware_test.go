// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		requestID     string
		correlationID string
		wantRequestID string
	}{
		{"generated", "", "", ""},
		{"from upstream", "req-123", "corr-456", "req-123"},
		{"oversized header ignored", strings.Repeat("x", maxIDLength+1), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxRequestID, ctxCorrelationID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID = GetRequestID(r.Context())
				ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			if tt.correlationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.correlationID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == "" || got != ctxRequestID {
				t.Errorf("header id %q, context id %q", got, ctxRequestID)
			}
			if tt.wantRequestID != "" && got != tt.wantRequestID {
				t.Errorf("request id = %q, want %q", got, tt.wantRequestID)
			}
			if len(got) > maxIDLength {
				t.Errorf("oversized id %q echoed", got)
			}
			if ctxCorrelationID == "" || rec.Header().Get(CorrelationIDHeader) != ctxCorrelationID {
				t.Errorf("correlation id header %q, context %q", rec.Header().Get(CorrelationIDHeader), ctxCorrelationID)
			}
			if tt.correlationID != "" && ctxCorrelationID != tt.correlationID {
				t.Errorf("correlation id = %q, want %q", ctxCorrelationID, tt.correlationID)
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/catalog/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/catalog/{kind}", "418")
	before := testutil.ToFloat64(counter)

	for _, kind := range []string{"vessels", "locations"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/"+kind, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests counted under route pattern = %v, want 2", got)
	}
}

func TestPrometheusMetrics_DefaultStatusAndUnmatched(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("unmatched 200 delta = %v, want 1", got)
	}
	if active := testutil.ToFloat64(metrics.APIActiveRequests); active < 0 {
		t.Errorf("active requests = %v, want >= 0", active)
	}
}
