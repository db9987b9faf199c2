// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       uint64  `json:"state_version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Vessels       int     `json:"vessels"`
	Locations     int     `json:"locations"`
	Commodities   int     `json:"commodities"`
	Movements     int     `json:"movements"`
	Distributions int     `json:"distributions"`
	WSClients     int     `json:"ws_clients"`
	RemoteEnabled bool    `json:"remote_analytics"`
}

// HealthLive reports that the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]string{"status": "alive"}, 0)
}

// HealthReady reports readiness. The service is ready once the reference
// data holds at least one vessel and one location.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	data := h.store.Data()
	status := HealthStatus{
		Status:        "ready",
		Version:       h.store.Version(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Vessels:       len(data.Catalog.VesselIDs()),
		Locations:     len(data.Catalog.LocationIDs()),
		Commodities:   len(data.Catalog.CommodityIDs()),
		Movements:     len(data.Movements),
		Distributions: len(data.Distributions),
		RemoteEnabled: h.remoteEnabled,
	}
	if h.wsHub != nil {
		status.WSClients = h.wsHub.GetClientCount()
	}

	if status.Vessels == 0 || status.Locations == 0 {
		respondError(w, r, http.StatusServiceUnavailable, codeInternal, "Reference data has no vessels or locations", nil)
		return
	}
	respondSuccess(w, r, status, status.Version)
}
