// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package main is the Oceanus server.

Oceanus serves the vessel and commodity movement dashboard: it loads the
reference data once, keeps the dashboard state, answers the aggregation
views over HTTP, and forwards t-SNE and aggregated-timeline requests to
the analytics server.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Reference data: mc2.json plus the optional derived tables under DATA_DIR
 4. Analytics boundary: HTTP client with rate limit, circuit breaker and
    response cache, or the in-process fallback when ANALYTICS_ENABLED=false
 5. Store: initial dashboard state, optionally initialized
 6. Snapshot: with PERSIST_ENABLED the last saved state replaces initialization
 7. Supervisor tree: WebSocket hub, background refresh, snapshot writer, HTTP server

A missing or malformed configuration or mc2.json is fatal. Everything else
degrades: optional tables are derived from the graph and analytics server
failures keep the previous results.

# Supervisor tree

	oceanus
	├── messaging-layer
	│   ├── websocket-hub
	│   ├── remote-refresh
	│   └── state-snapshot
	└── api-layer
	    └── http-server

# Example

	export DATA_DIR=./data
	export ANALYTICS_URL=http://127.0.0.1:5000
	export LOG_FORMAT=console
	./oceanus

SIGINT or SIGTERM drains the HTTP server within SHUTDOWN_TIMEOUT and closes
WebSocket clients.
*/
package main
