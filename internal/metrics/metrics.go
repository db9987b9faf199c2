// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Fixture Metrics
	FixtureRecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fixture_records_loaded",
			Help: "Number of valid records loaded per fixture collection",
		},
		[]string{"collection"},
	)

	FixtureRecordsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_records_rejected_total",
			Help: "Fixture records rejected by validation",
		},
		[]string{"collection"},
	)

	// Aggregation Metrics
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Time spent computing a derived view",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"view"},
	)

	AggregationSkippedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregation_skipped_records_total",
			Help: "Malformed records skipped during aggregation",
		},
		[]string{"operation", "reason"},
	)

	// Store Metrics
	StoreVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_state_version",
			Help: "Current dashboard state version",
		},
	)

	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mutations_total",
			Help: "Dashboard state mutations by command and result",
		},
		[]string{"command", "result"},
	)

	// Analytics Server Metrics
	AnalyticsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Requests sent to the analytics server",
		},
		[]string{"endpoint", "status"},
	)

	AnalyticsRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_request_duration_seconds",
			Help:    "Analytics server request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"endpoint"},
	)

	AnalyticsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_cache_hits_total",
			Help: "Analytics responses served from the response cache",
		},
	)

	AnalyticsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_cache_misses_total",
			Help: "Analytics requests that missed the response cache",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections_active",
			Help: "Current number of connected dashboard clients",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "WebSocket messages broadcast by type",
		},
		[]string{"message_type"},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Snapshot Metrics
	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_snapshot_writes_total",
			Help: "Dashboard state snapshots written, by result",
		},
		[]string{"result"},
	)

	SnapshotWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "state_snapshot_write_duration_seconds",
			Help:    "Time to write one dashboard state snapshot",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
	)

	SnapshotVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "state_snapshot_version",
			Help: "State version of the last snapshot written",
		},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordFixtureLoad records the outcome of loading one collection.
func RecordFixtureLoad(collection string, loaded, rejected int) {
	FixtureRecordsLoaded.WithLabelValues(collection).Set(float64(loaded))
	if rejected > 0 {
		FixtureRecordsRejected.WithLabelValues(collection).Add(float64(rejected))
	}
}

// RecordAggregation records how long computing a view took.
func RecordAggregation(view string, duration time.Duration) {
	AggregationDuration.WithLabelValues(view).Observe(duration.Seconds())
}

// RecordSkippedRecord counts a malformed record dropped by an aggregation.
func RecordSkippedRecord(operation, reason string) {
	AggregationSkippedRecords.WithLabelValues(operation, reason).Inc()
}

// RecordMutation records a state command and its new version.
func RecordMutation(command string, version uint64, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreMutations.WithLabelValues(command, result).Inc()
	if err == nil {
		StoreVersion.Set(float64(version))
	}
}

// RecordAnalyticsRequest records one call to the analytics server. status
// is the HTTP status code, or "error" when no response arrived.
func RecordAnalyticsRequest(endpoint string, statusCode int, duration time.Duration, err error) {
	status := "error"
	if err == nil || statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	AnalyticsRequestsTotal.WithLabelValues(endpoint, status).Inc()
	AnalyticsRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordAnalyticsCache records a response cache lookup.
func RecordAnalyticsCache(hit bool) {
	if hit {
		AnalyticsCacheHits.Inc()
	} else {
		AnalyticsCacheMisses.Inc()
	}
}

// RecordWSBroadcast counts one broadcast message.
func RecordWSBroadcast(messageType string) {
	WSMessagesSent.WithLabelValues(messageType).Inc()
}

// RecordSnapshotWrite records one snapshot write.
func RecordSnapshotWrite(version uint64, duration time.Duration, err error) {
	if err != nil {
		SnapshotWrites.WithLabelValues("error").Inc()
		return
	}
	SnapshotWrites.WithLabelValues("success").Inc()
	SnapshotWriteDuration.Observe(duration.Seconds())
	SnapshotVersion.Set(float64(version))
}
