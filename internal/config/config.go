// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Persist   PersistConfig   `koanf:"persist"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the JSON fixtures loaded at startup.
// File names are relative to Dir. Only Graph is required; the other
// collections are derived from the graph when their file is absent.
//
// Environment Variables:
//   - DATA_DIR: fixture directory (default: ./data)
//   - DATA_GRAPH_FILE: knowledge graph file (default: mc2.json)
type DataConfig struct {
	Dir                 string `koanf:"dir"`
	GraphFile           string `koanf:"graph_file"`
	TransportFile       string `koanf:"transport_file"`
	HarborFile          string `koanf:"harbor_file"`
	DistributionsFile   string `koanf:"distributions_file"`
	PairsFile           string `koanf:"pairs_file"`
	UnionsFile          string `koanf:"unions_file"`
	GeographyFile       string `koanf:"geography_file"`
	CoordinatesFile     string `koanf:"coordinates_file"`
	SkipInvalidRecords  bool   `koanf:"skip_invalid_records"`
	DeriveMissingTables bool   `koanf:"derive_missing_tables"`
}

// AnalyticsConfig configures the client for the companion analytics server.
// When Enabled is false, aggregated movements are computed in-process and
// t-SNE projection is unavailable.
//
// Environment Variables:
//   - ANALYTICS_ENABLED (default: true)
//   - ANALYTICS_URL (default: http://127.0.0.1:5000)
//   - ANALYTICS_TIMEOUT (default: 30s)
//   - ANALYTICS_REQUESTS_PER_SECOND, ANALYTICS_BURST
//   - ANALYTICS_CACHE_TTL, ANALYTICS_CACHE_SIZE
type AnalyticsConfig struct {
	Enabled           bool          `koanf:"enabled"`
	URL               string        `koanf:"url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
	CacheSize         int           `koanf:"cache_size"`

	// Circuit breaker: trips when FailureRatio of at least MinRequests
	// requests in Interval failed, stays open for OpenTimeout.
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerOpenTimeout  time.Duration `koanf:"breaker_open_timeout"`
}

// DashboardConfig holds the initial dashboard state.
//
// StartDate and EndDate are the interval used before initialization;
// InitStartDate and InitEndDate are applied by the initialize command,
// which also selects every catalog id.
type DashboardConfig struct {
	StartDate     string `koanf:"start_date"`
	EndDate       string `koanf:"end_date"`
	InitStartDate string `koanf:"init_start_date"`
	InitEndDate   string `koanf:"init_end_date"`
	FocusVesselID string `koanf:"focus_vessel_id"`
	InitOnStartup bool   `koanf:"init_on_startup"`

	// AutoRefresh recomputes the t-SNE projection and aggregated timeline
	// in the background after selection or interval changes, once no
	// change has arrived for RefreshDebounce.
	AutoRefresh     bool          `koanf:"auto_refresh"`
	RefreshDebounce time.Duration `koanf:"refresh_debounce"`

	// MaxIntervalDays is the longest date interval, in days, the
	// dashboard accepts.
	MaxIntervalDays int `koanf:"max_interval_days"`
}

// PersistConfig controls the on-disk snapshot of the dashboard state.
// When enabled, confirmed pairs, the selection and the last analytics
// results survive restarts.
//
// Environment Variables:
//   - PERSIST_ENABLED: keep a snapshot (default: false)
//   - PERSIST_PATH: BadgerDB directory (default: ./data/state)
//   - PERSIST_SYNC_WRITES: fsync every snapshot (default: true)
//   - PERSIST_GC_INTERVAL: value log GC interval (default: 10m)
type PersistConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Path       string        `koanf:"path"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds browser-facing protections. The dashboard has no
// user accounts; CORS and rate limiting are the only controls.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings. See internal/logging.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ListenAddr returns host:port for the HTTP listener.
func (c *Config) ListenAddr() string {
	return joinHostPort(c.Server.Host, c.Server.Port)
}
