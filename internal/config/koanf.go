// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/oceanus/config.yaml",
	"/etc/oceanus/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:                 "./data",
			GraphFile:           "mc2.json",
			TransportFile:       "transportMovements.json",
			HarborFile:          "harborMovements.json",
			DistributionsFile:   "commodityDistributions.json",
			PairsFile:           "pairVesselCommodity.json",
			UnionsFile:          "vesselCommodityUnion.json",
			GeographyFile:       "Oceanus_Geography.json",
			CoordinatesFile:     "locationCoordinates.json",
			SkipInvalidRecords:  true,
			DeriveMissingTables: true,
		},
		Analytics: AnalyticsConfig{
			Enabled:             true,
			URL:                 "http://127.0.0.1:5000",
			Timeout:             30 * time.Second,
			RequestsPerSecond:   5,
			Burst:               2,
			CacheTTL:            5 * time.Minute,
			CacheSize:           128,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
			BreakerInterval:     time.Minute,
			BreakerOpenTimeout:  30 * time.Second,
		},
		Dashboard: DashboardConfig{
			StartDate:     "2035-02-01",
			EndDate:       "2035-05-17",
			InitStartDate: "2035-02-01",
			InitEndDate:   "2035-12-31",
			FocusVesselID: "snappersnatcher7be",
			InitOnStartup: true,

			AutoRefresh:     true,
			RefreshDebounce: 500 * time.Millisecond,
			MaxIntervalDays: 3660,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     300,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Persist: PersistConfig{
			Enabled:    false,
			Path:       "./data/state",
			SyncWrites: true,
			GCInterval: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration in three layers: defaults, then the
// optional YAML file, then mapped environment variables. ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"data_dir":                   "data.dir",
	"data_graph_file":            "data.graph_file",
	"data_transport_file":        "data.transport_file",
	"data_harbor_file":           "data.harbor_file",
	"data_distributions_file":    "data.distributions_file",
	"data_pairs_file":            "data.pairs_file",
	"data_unions_file":           "data.unions_file",
	"data_geography_file":        "data.geography_file",
	"data_coordinates_file":      "data.coordinates_file",
	"data_skip_invalid_records":  "data.skip_invalid_records",
	"data_derive_missing_tables": "data.derive_missing_tables",

	"analytics_enabled":               "analytics.enabled",
	"analytics_url":                   "analytics.url",
	"data_server_url":                 "analytics.url",
	"analytics_timeout":               "analytics.timeout",
	"analytics_requests_per_second":   "analytics.requests_per_second",
	"analytics_burst":                 "analytics.burst",
	"analytics_cache_ttl":             "analytics.cache_ttl",
	"analytics_cache_size":            "analytics.cache_size",
	"analytics_breaker_min_requests":  "analytics.breaker_min_requests",
	"analytics_breaker_failure_ratio": "analytics.breaker_failure_ratio",
	"analytics_breaker_interval":      "analytics.breaker_interval",
	"analytics_breaker_open_timeout":  "analytics.breaker_open_timeout",

	"dashboard_start_date":        "dashboard.start_date",
	"dashboard_end_date":          "dashboard.end_date",
	"dashboard_init_start_date":   "dashboard.init_start_date",
	"dashboard_init_end_date":     "dashboard.init_end_date",
	"dashboard_focus_vessel_id":   "dashboard.focus_vessel_id",
	"dashboard_init_on_startup":   "dashboard.init_on_startup",
	"dashboard_auto_refresh":      "dashboard.auto_refresh",
	"dashboard_refresh_debounce":  "dashboard.refresh_debounce",
	"dashboard_max_interval_days": "dashboard.max_interval_days",

	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"persist_enabled":     "persist.enabled",
	"persist_path":        "persist.path",
	"persist_sync_writes": "persist.sync_writes",
	"persist_gc_interval": "persist.gc_interval",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped.
//
//   - ANALYTICS_URL -> analytics.url
//   - DATA_SERVER_URL -> analytics.url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
