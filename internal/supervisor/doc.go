// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package supervisor runs the long-lived Oceanus services under a suture v4
supervisor tree.

	oceanus
	├── messaging-layer
	│   ├── websocket-hub
	│   ├── remote-refresh (when the analytics server is enabled)
	│   └── state-snapshot (when PERSIST_ENABLED=true)
	└── api-layer
	    └── http-server

Crashed services restart with suture's backoff. Canceling the context
passed to Serve stops every service; the HTTP server drains within its
shutdown timeout and the hub closes its clients. Supervisor events are
logged through sutureslog on top of the zerolog-backed slog handler from
internal/logging.

Usage:

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))
	err := tree.Serve(ctx)
*/
package supervisor
