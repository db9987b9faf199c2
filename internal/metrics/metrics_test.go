// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/views/sequences", "200"))
	RecordAPIRequest("GET", "/api/v1/views/sequences", "200", 3*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/views/sequences", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)

	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 1 {
		t.Errorf("api_active_requests delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
}

func TestRecordFixtureLoad(t *testing.T) {
	before := testutil.ToFloat64(FixtureRecordsRejected.WithLabelValues("metrics_test"))
	RecordFixtureLoad("metrics_test", 42, 3)

	if got := testutil.ToFloat64(FixtureRecordsLoaded.WithLabelValues("metrics_test")); got != 42 {
		t.Errorf("fixture_records_loaded = %v, want 42", got)
	}
	if got := testutil.ToFloat64(FixtureRecordsRejected.WithLabelValues("metrics_test")) - before; got != 3 {
		t.Errorf("fixture_records_rejected_total delta = %v, want 3", got)
	}
}

func TestRecordMutation(t *testing.T) {
	RecordMutation("set_selection", 17, nil)
	if got := testutil.ToFloat64(StoreVersion); got != 17 {
		t.Errorf("store_state_version = %v, want 17", got)
	}

	before := testutil.ToFloat64(StoreMutations.WithLabelValues("add_pair", "error"))
	RecordMutation("add_pair", 99, errors.New("union not found"))
	if got := testutil.ToFloat64(StoreMutations.WithLabelValues("add_pair", "error")) - before; got != 1 {
		t.Errorf("store_mutations_total{result=error} delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(StoreVersion); got != 17 {
		t.Errorf("store_state_version after failed mutation = %v, want 17", got)
	}
}

func TestRecordAnalyticsRequest(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		err        error
		wantLabel  string
	}{
		{"ok", 200, nil, "200"},
		{"server error", 500, errors.New("status 500"), "500"},
		{"transport error", 0, errors.New("connection refused"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AnalyticsRequestsTotal.WithLabelValues("get_vessel_tsne", tt.wantLabel)
			before := testutil.ToFloat64(c)
			RecordAnalyticsRequest("get_vessel_tsne", tt.statusCode, time.Second, tt.err)
			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("analytics_requests_total{status=%s} delta = %v, want 1", tt.wantLabel, got)
			}
		})
	}
}

func TestRecordAnalyticsCache(t *testing.T) {
	hits, misses := testutil.ToFloat64(AnalyticsCacheHits), testutil.ToFloat64(AnalyticsCacheMisses)
	RecordAnalyticsCache(true)
	RecordAnalyticsCache(false)
	RecordAnalyticsCache(false)

	if got := testutil.ToFloat64(AnalyticsCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(AnalyticsCacheMisses) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordSkippedRecord(t *testing.T) {
	c := AggregationSkippedRecords.WithLabelValues("location_frequency", "missing_location")
	before := testutil.ToFloat64(c)
	RecordSkippedRecord("location_frequency", "missing_location")
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("aggregation_skipped_records_total delta = %v, want 1", got)
	}
}

func TestRecordSnapshotWrite(t *testing.T) {
	failed := testutil.ToFloat64(SnapshotWrites.WithLabelValues("error"))
	RecordSnapshotWrite(12, time.Millisecond, nil)
	RecordSnapshotWrite(13, time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(SnapshotVersion); got != 12 {
		t.Errorf("state_snapshot_version = %v, want 12", got)
	}
	if got := testutil.ToFloat64(SnapshotWrites.WithLabelValues("error")) - failed; got != 1 {
		t.Errorf("state_snapshot_writes_total{result=error} delta = %v, want 1", got)
	}
}
