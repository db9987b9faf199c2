// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/oceanus/internal/catalog"
)

// CatalogEntries lists the vessels, locations or commodities in graph order.
func (h *Handler) CatalogEntries(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Data().Catalog

	var entries []catalog.Entry
	switch kind := chi.URLParam(r, "kind"); kind {
	case "vessels":
		entries = cat.Vessels()
	case "locations":
		entries = cat.Locations()
	case "commodities":
		entries = cat.Commodities()
	default:
		respondError(w, r, http.StatusNotFound, codeNotFound, "Unknown catalog kind: "+sanitizeLogValue(kind), nil)
		return
	}
	respondList(w, r, entries, len(entries), 0)
}

// VesselTypes lists the distinct vessel types.
func (h *Handler) VesselTypes(w http.ResponseWriter, r *http.Request) {
	types := h.store.Data().Catalog.VesselTypes()
	respondList(w, r, types, len(types), 0)
}

// Names maps every catalog id to its display name.
func (h *Handler) Names(w http.ResponseWriter, r *http.Request) {
	names := h.store.Data().Catalog.Names()
	respondList(w, r, names, len(names), 0)
}

// FishingLocations maps each commodity id to the regions where its species
// is present.
func (h *Handler) FishingLocations(w http.ResponseWriter, r *http.Request) {
	locations := h.store.Data().Catalog.FishingLocations()
	respondList(w, r, locations, len(locations), 0)
}

// Geography returns the region GeoJSON as loaded.
func (h *Handler) Geography(w http.ResponseWriter, r *http.Request) {
	geo := h.store.Data().Geography
	if len(geo) == 0 {
		respondError(w, r, http.StatusNotFound, codeNotFound, "No geography loaded", nil)
		return
	}
	respondSuccess(w, r, geo, 0)
}

// Coordinates maps location ids to [longitude, latitude].
func (h *Handler) Coordinates(w http.ResponseWriter, r *http.Request) {
	coords := h.store.Data().Coordinates
	respondList(w, r, coords, len(coords), 0)
}
