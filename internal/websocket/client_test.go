// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// serveHub starts a hub and an HTTP server upgrading every request onto it.
func serveHub(t *testing.T, origins []string) (*Hub, *httptest.Server) {
	t.Helper()
	hub, _, _ := startHub(t)
	upgrader := NewUpgrader(origins)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, upgrader, w, r)
	}))
	t.Cleanup(server.Close)
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return conn, resp, err
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestServeWS_Broadcast(t *testing.T) {
	t.Parallel()

	hub, server := serveHub(t, []string{"*"})
	conn, _, err := dial(t, server, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.BroadcastJSON(MessageTypeAggregateUpdated, map[string]int{"version": 4})

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeAggregateUpdated {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypeAggregateUpdated)
	}
}

func TestServeWS_PingPong(t *testing.T) {
	t.Parallel()

	hub, server := serveHub(t, []string{"*"})
	conn, _, err := dial(t, server, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != MessageTypePong {
		t.Errorf("type = %q, want pong", msg.Type)
	}
}

func TestServeWS_ClientCloseUnregisters(t *testing.T) {
	t.Parallel()

	hub, server := serveHub(t, []string{"*"})
	conn, _, err := dial(t, server, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()
	waitForClients(t, hub, 0)
}

func TestServeWS_Origin(t *testing.T) {
	t.Parallel()

	_, server := serveHub(t, []string{"http://localhost:5173"})

	tests := []struct {
		name   string
		origin string
		ok     bool
	}{
		{"allowed origin", "http://localhost:5173", true},
		{"other origin", "http://evil.example", false},
		{"no origin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := dial(t, server, header)
			if conn != nil {
				defer conn.Close()
			}
			if tt.ok && err != nil {
				t.Fatalf("dial error = %v, want success", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("dial succeeded, want rejection")
				}
				if resp == nil || resp.StatusCode != http.StatusForbidden {
					t.Errorf("response = %v, want 403", resp)
				}
			}
		})
	}
}
