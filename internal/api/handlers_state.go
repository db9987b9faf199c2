// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/models"
)

// GetState returns the dashboard state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	respondSuccess(w, r, st, st.Version)
}

// SetSelection replaces the selected vessel, location and commodity ids.
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.store.SetSelection(req.VesselIDs, req.LocationIDs, req.CommodityIDs)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().
		Int("vessels", len(st.VesselIDs)).
		Int("locations", len(st.LocationIDs)).
		Int("commodities", len(st.CommodityIDs)).
		Uint64("version", st.Version).
		Msg("Selection updated")
	respondSuccess(w, r, st, st.Version)
}

// SetInterval sets the inclusive date interval.
func (h *Handler) SetInterval(w http.ResponseWriter, r *http.Request) {
	var req IntervalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.store.SetDateInterval(models.MustParseDay(req.StartDate), models.MustParseDay(req.EndDate))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, r, st, st.Version)
}

// SetFocus sets the focus vessel.
func (h *Handler) SetFocus(w http.ResponseWriter, r *http.Request) {
	var req FocusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.store.SetFocusVessel(req.VesselID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, r, st, st.Version)
}

// Initialize selects everything over the initial interval.
func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.Initialize()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, r, st, st.Version)
}
