// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package analytics talks to the companion analytics server.

The server exposes two computations, both POST with the same JSON body
({start_date, end_date, vessel_ids, location_ids}):

  - get_vessel_tsne: 2-D t-SNE projection of per-vessel time series,
    returned as [[vessel_id, [x, y]], ...]
  - get_aggregate_vessel_movements: the location most selected vessels
    occupied over time, as [{start_time, end_time, location_id, vessel_id}]

Client Features:
  - context on every call; the HTTP client also has a configured timeout
  - outbound pacing with golang.org/x/time/rate
  - circuit breaker (sony/gobreaker) that trips on transport errors and 5xx
  - TTL LRU memoization of successful responses
  - no retries: a failed call returns its error and the caller decides

Local implements the same Service in-process for deployments without the
server. It computes aggregated movements with package aggregate and reports
t-SNE as unavailable.
*/
package analytics
