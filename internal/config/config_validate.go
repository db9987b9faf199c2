// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package config

import (
	"fmt"
	"time"
)

// dateLayout is the calendar date format used for dashboard intervals.
const dateLayout = "2006-01-02"

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validatePersist(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Data.GraphFile == "" {
		return fmt.Errorf("DATA_GRAPH_FILE is required")
	}
	return nil
}

// validateAnalytics only checks the connection settings when the remote
// server is enabled; the in-process fallback needs none of them.
func (c *Config) validateAnalytics() error {
	if !c.Analytics.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.Analytics.URL, "ANALYTICS_URL"); err != nil {
		return err
	}
	if c.Analytics.Timeout <= 0 {
		return fmt.Errorf("ANALYTICS_TIMEOUT must be positive, got %v", c.Analytics.Timeout)
	}
	if c.Analytics.RequestsPerSecond < 0 {
		return fmt.Errorf("ANALYTICS_REQUESTS_PER_SECOND must not be negative")
	}
	if c.Analytics.RequestsPerSecond > 0 && c.Analytics.Burst < 1 {
		return fmt.Errorf("ANALYTICS_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.Analytics.CacheSize < 0 {
		return fmt.Errorf("ANALYTICS_CACHE_SIZE must not be negative")
	}
	if c.Analytics.BreakerFailureRatio <= 0 || c.Analytics.BreakerFailureRatio > 1 {
		return fmt.Errorf("ANALYTICS_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Analytics.BreakerFailureRatio)
	}
	return nil
}

func (c *Config) validateDashboard() error {
	if c.Dashboard.AutoRefresh && c.Dashboard.RefreshDebounce < 0 {
		return fmt.Errorf("DASHBOARD_REFRESH_DEBOUNCE must not be negative")
	}
	if c.Dashboard.MaxIntervalDays < 1 {
		return fmt.Errorf("DASHBOARD_MAX_INTERVAL_DAYS must be at least 1")
	}
	maxDays := c.Dashboard.MaxIntervalDays
	if err := validateInterval(c.Dashboard.StartDate, c.Dashboard.EndDate, "DASHBOARD_START_DATE", "DASHBOARD_END_DATE", maxDays); err != nil {
		return err
	}
	return validateInterval(c.Dashboard.InitStartDate, c.Dashboard.InitEndDate, "DASHBOARD_INIT_START_DATE", "DASHBOARD_INIT_END_DATE", maxDays)
}

func validateInterval(start, end, startField, endField string, maxDays int) error {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return fmt.Errorf("%s must be a YYYY-MM-DD date: %w", startField, err)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return fmt.Errorf("%s must be a YYYY-MM-DD date: %w", endField, err)
	}
	if e.Before(s) {
		return fmt.Errorf("%s (%s) is before %s (%s)", endField, end, startField, start)
	}
	// AddDate keeps this exact for intervals longer than time.Duration allows.
	if !e.Before(s.AddDate(0, 0, maxDays)) {
		return fmt.Errorf("%s..%s spans more than DASHBOARD_MAX_INTERVAL_DAYS (%d)", startField, endField, maxDays)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validatePersist() error {
	if !c.Persist.Enabled {
		return nil
	}
	if c.Persist.Path == "" {
		return fmt.Errorf("PERSIST_PATH is required when PERSIST_ENABLED=true")
	}
	if c.Persist.GCInterval < time.Minute {
		return fmt.Errorf("PERSIST_GC_INTERVAL must be at least 1m")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
