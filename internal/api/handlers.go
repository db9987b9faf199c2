// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/oceanus/internal/store"
	ws "github.com/tomtom215/oceanus/internal/websocket"
)

// Handler holds the dependencies of the HTTP handlers.
//
// Handlers are split by area:
//   - handlers_health.go: liveness and readiness
//   - handlers_catalog.go: catalog, geography, coordinates
//   - handlers_state.go: dashboard state commands
//   - handlers_views.go: derived views and color scales
//   - handlers_pairs.go: vessel/commodity pairing
//   - handlers_remote.go: analytics server results
//   - handlers_websocket.go: change notifications
type Handler struct {
	store     *store.Store
	wsHub     *ws.Hub
	upgrader  *websocket.Upgrader
	startTime time.Time

	// remoteEnabled is false when the in-process fallback serves the
	// analytics calls.
	remoteEnabled bool
}

// NewHandler creates the handler set. corsOrigins also governs which
// origins may open the WebSocket.
func NewHandler(st *store.Store, hub *ws.Hub, corsOrigins []string, remoteEnabled bool) *Handler {
	return &Handler{
		store:         st,
		wsHub:         hub,
		upgrader:      ws.NewUpgrader(corsOrigins),
		startTime:     time.Now(),
		remoteEnabled: remoteEnabled,
	}
}
