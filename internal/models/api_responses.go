// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package models

import (
	"time"
)

// APIResponse is the envelope every HTTP endpoint returns.
//
// Status is "success" or "error". On success Data carries the payload; on
// error Error carries a machine-readable code and message.
//
//	{
//	  "status": "success",
//	  "data": [{"vessel_id": "v1", "location_id": "L1", "frequency": 2}],
//	  "metadata": {"timestamp": "2035-03-01T12:00:00Z", "version": 7}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
//
// Version is the dashboard state version the data was derived from, so the
// UI can discard views older than the last change notification it received.
// Cached is set when an analytics result came from the response cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Version     uint64    `json:"version,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Count       *int      `json:"count,omitempty"`
}

// APIError carries structured error details.
//
// Codes:
//   - VALIDATION_ERROR: the request body or query failed validation
//   - NOT_FOUND: the pair, union or category does not exist
//   - ANALYTICS_UNAVAILABLE: the analytics server is disabled or its breaker is open
//   - ANALYTICS_ERROR: the analytics server returned an error
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
