// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"net/http"

	ws "github.com/tomtom215/oceanus/internal/websocket"
)

// WebSocket upgrades the connection and subscribes it to state change
// notifications.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeInternal, "Notifications are disabled", nil)
		return
	}
	ws.ServeWS(h.wsHub, h.upgrader, w, r)
}
