// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: assigns X-Request-ID and a correlation id, and stores both in
    the request context for logging.Ctx
  - PrometheusMetrics: counts requests and observes latency per chi route
    pattern, tracks in-flight requests and logs slow requests

Both take and return http.Handler so they can be passed to chi's Use.
Responses are wrapped with chi's WrapResponseWriter, which keeps
http.Hijacker available for the WebSocket upgrade.
*/
package middleware
