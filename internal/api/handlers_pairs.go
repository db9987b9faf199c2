// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	"github.com/tomtom215/oceanus/internal/logging"
)

// GetPairs returns the confirmed pairs, newest first.
func (h *Handler) GetPairs(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	respondList(w, r, st.Pairs, len(st.Pairs), st.Version)
}

// GetUnions returns the unpaired vessel visits and deliveries per day and
// location.
func (h *Handler) GetUnions(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	respondList(w, r, st.Unions, len(st.Unions), st.Version)
}

// AddPair confirms a pair, taking its vessel and commodity out of the union.
func (h *Handler) AddPair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := req.pair()
	st, err := h.store.AddPair(p.Date, p.LocationID, p.Vessel, p.Commodity)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("date", p.Date.String()).
		Str("location_id", sanitizeLogValue(p.LocationID)).
		Str("vessel_id", sanitizeLogValue(p.Vessel.VesselID)).
		Str("commodity_id", sanitizeLogValue(p.Commodity.CommodityID)).
		Msg("Pair added")
	respondList(w, r, st.Pairs, len(st.Pairs), st.Version)
}

// DeletePair removes a pair and returns its vessel and commodity to the union.
func (h *Handler) DeletePair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.store.DeletePair(req.pair())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondList(w, r, st.Pairs, len(st.Pairs), st.Version)
}

// ResetPairs restores the loaded pairs and unions.
func (h *Handler) ResetPairs(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.ResetPairs()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondList(w, r, st.Pairs, len(st.Pairs), st.Version)
}
