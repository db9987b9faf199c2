// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package logging provides zerolog-based structured logging for Oceanus.
//
// A single global logger is configured once at startup and shared by every
// package. JSON output is the default; console output is available for local
// development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("vessels", n).Msg("Catalog loaded")
//	logging.Warn().Str("vessel_id", id).Msg("Skipping movement without location")
//	logging.Ctx(ctx).Error().Err(err).Msg("Analytics request failed")
//
// # Configuration
//
// Environment variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context. Ctx attaches
// request_id and correlation_id to every event logged through it, so log
// lines from the store and the analytics client can be joined back to the
// request that triggered them.
//
// # Supervisor Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog, which is what
// sutureslog expects when hooking supervisor events.
//
// Always terminate event chains with Msg or Send; an unterminated chain is
// never written.
package logging
