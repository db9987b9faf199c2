// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/oceanus/internal/colorscale"
	"github.com/tomtom215/oceanus/internal/models"
)

// Frequency returns one of the frequency tables for the current selection.
func (h *Handler) Frequency(w http.ResponseWriter, r *http.Request) {
	views := h.store.Views()

	switch kind := chi.URLParam(r, "kind"); kind {
	case "vessel-locations":
		respondList(w, r, views.VesselLocations, len(views.VesselLocations), views.Version)
	case "commodity-locations":
		respondList(w, r, views.CommodityLocations, len(views.CommodityLocations), views.Version)
	case "commodity-vessels":
		respondList(w, r, views.CommodityVessels, len(views.CommodityVessels), views.Version)
	default:
		respondError(w, r, http.StatusNotFound, codeNotFound, "Unknown frequency table: "+sanitizeLogValue(kind), nil)
	}
}

// Sequences returns each selected vessel's movements in date order.
func (h *Handler) Sequences(w http.ResponseWriter, r *http.Request) {
	views := h.store.Views()
	respondList(w, r, views.Sequences, len(views.Sequences), views.Version)
}

// timeSeriesResponse pairs the matrix with the location order of its cells.
type timeSeriesResponse struct {
	LocationIDs []string                          `json:"location_ids"`
	Vessels     map[string][]models.TimeSeriesDay `json:"vessels"`
}

// TimeSeries returns the per-vessel daily visit and dwell matrix. Cells of
// each day follow location_ids.
func (h *Handler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	series := h.store.TimeSeries()
	respondList(w, r, timeSeriesResponse{
		LocationIDs: st.LocationIDs,
		Vessels:     series,
	}, len(series), st.Version)
}

// colorsResponse is a color scale's domain and id → color map.
type colorsResponse struct {
	Category colorscale.Category `json:"category"`
	Domain   []string            `json:"domain"`
	Colors   map[string]string   `json:"colors"`
	Unknown  string              `json:"unknown"`
}

// Colors returns the color scale for a category.
func (h *Handler) Colors(w http.ResponseWriter, r *http.Request) {
	category, err := colorscale.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		respondError(w, r, http.StatusNotFound, codeNotFound, err.Error(), nil)
		return
	}

	scale := h.store.ColorScale(category)
	respondSuccess(w, r, colorsResponse{
		Category: category,
		Domain:   scale.Domain(),
		Colors:   scale.Map(),
		Unknown:  colorscale.UnknownColor,
	}, 0)
}
