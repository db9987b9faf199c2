// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/oceanus/internal/models"
)

// GetTSNE returns the last t-SNE projection without contacting the
// analytics server.
func (h *Handler) GetTSNE(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	respondList(w, r, st.VesselTSNE, len(st.VesselTSNE), st.Version)
}

// RefreshTSNE recomputes the t-SNE projection for the current selection.
// On failure the previous projection is kept.
func (h *Handler) RefreshTSNE(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	st, err := h.store.RefreshVesselTSNE(r.Context())
	if err != nil {
		respondAnalyticsError(w, r, err)
		return
	}
	respondTimed(w, r, st.VesselTSNE, len(st.VesselTSNE), st.Version, start)
}

// GetAggregateMovements returns the last aggregated movement timeline.
func (h *Handler) GetAggregateMovements(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	respondList(w, r, st.AggregateMovements, len(st.AggregateMovements), st.Version)
}

// RefreshAggregateMovements recomputes the aggregated timeline for the
// selected vessels.
func (h *Handler) RefreshAggregateMovements(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	st, err := h.store.RefreshAggregateMovements(r.Context())
	if err != nil {
		respondAnalyticsError(w, r, err)
		return
	}
	respondTimed(w, r, st.AggregateMovements, len(st.AggregateMovements), st.Version, start)
}

func respondTimed(w http.ResponseWriter, r *http.Request, data interface{}, count int, version uint64, start time.Time) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Version:     version,
			Count:       &count,
		},
	})
}
