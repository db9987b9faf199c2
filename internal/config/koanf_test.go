// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Analytics.URL != "http://127.0.0.1:5000" {
		t.Errorf("Analytics.URL = %q, want http://127.0.0.1:5000", cfg.Analytics.URL)
	}
	if cfg.Dashboard.StartDate != "2035-02-01" || cfg.Dashboard.EndDate != "2035-05-17" {
		t.Errorf("Dashboard interval = %s..%s, want 2035-02-01..2035-05-17", cfg.Dashboard.StartDate, cfg.Dashboard.EndDate)
	}
	if cfg.Dashboard.InitEndDate != "2035-12-31" {
		t.Errorf("Dashboard.InitEndDate = %q, want 2035-12-31", cfg.Dashboard.InitEndDate)
	}
	if cfg.Dashboard.FocusVesselID != "snappersnatcher7be" {
		t.Errorf("Dashboard.FocusVesselID = %q, want snappersnatcher7be", cfg.Dashboard.FocusVesselID)
	}
	if cfg.Data.GraphFile != "mc2.json" {
		t.Errorf("Data.GraphFile = %q, want mc2.json", cfg.Data.GraphFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"ANALYTICS_URL", "analytics.url"},
		{"DATA_SERVER_URL", "analytics.url"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"DATA_DIR", "data.dir"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ANALYTICS_URL", "http://analytics.internal:5000")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ANALYTICS_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://localhost:4173")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Analytics.URL != "http://analytics.internal:5000" {
		t.Errorf("Analytics.URL = %q, want override", cfg.Analytics.URL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Analytics.Timeout != 5*time.Second {
		t.Errorf("Analytics.Timeout = %v, want 5s", cfg.Analytics.Timeout)
	}
	want := []string{"http://localhost:5173", "http://localhost:4173"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data:
  dir: /srv/oceanus
analytics:
  enabled: false
dashboard:
  focus_vessel_id: v42
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Data.Dir != "/srv/oceanus" {
		t.Errorf("Data.Dir = %q, want /srv/oceanus", cfg.Data.Dir)
	}
	if cfg.Analytics.Enabled {
		t.Error("Analytics.Enabled = true, want false from file")
	}
	if cfg.Dashboard.FocusVesselID != "v42" {
		t.Errorf("Dashboard.FocusVesselID = %q, want v42", cfg.Dashboard.FocusVesselID)
	}
	// Environment wins over the file.
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Defaults survive for keys the file leaves out.
	if cfg.Data.GraphFile != "mc2.json" {
		t.Errorf("Data.GraphFile = %q, want mc2.json", cfg.Data.GraphFile)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("LoadWithKoanf() error = nil, want port validation error")
	}
}

func TestListenAddr(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8181
	if got := cfg.ListenAddr(); got != "127.0.0.1:8181" {
		t.Errorf("ListenAddr() = %q, want 127.0.0.1:8181", got)
	}
}
