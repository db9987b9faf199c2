// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
)

// Skip reasons, used as the "reason" metric label.
const (
	reasonMissingEntity   = "missing_entity"
	reasonMissingLocation = "missing_location"
	reasonMissingDate     = "missing_date"
	reasonInvertedSpan    = "inverted_span"
)

// skipRecord counts a record dropped by an aggregation and logs it at debug
// level. Views are recomputed often, so the counter is the signal to alert on.
func skipRecord(operation, reason string, index int) {
	metrics.RecordSkippedRecord(operation, reason)
	logging.Debug().
		Str("operation", operation).
		Str("reason", reason).
		Int("index", index).
		Msg("Skipping malformed record")
}
