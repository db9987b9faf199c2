// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package metrics defines the Prometheus collectors for Oceanus and small
// Record* helpers that keep label handling in one place.
//
// Collectors are registered on the default registry through promauto and
// exposed by the API at GET /metrics.
//
// # Metric Families
//
//   - api_*: request counts, latency and in-flight requests (middleware)
//   - fixture_*: records loaded and rejected per collection at startup
//   - aggregation_*: view computation time and malformed records skipped
//   - store_*: state version and mutation counts
//   - analytics_*: remote call counts and latency, response cache hits
//   - circuit_breaker_*: breaker state and transitions for the analytics client
//   - websocket_*: connected dashboard clients and broadcast messages
package metrics
