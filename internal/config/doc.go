// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package config loads Oceanus configuration with koanf.
//
// Sources are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file (CONFIG_PATH, then DefaultConfigPaths)
//  3. Environment variables, mapped explicitly by envTransformFunc
//
// Only mapped environment variables are read; anything else in the
// environment is ignored.
//
// # Sections
//
//   - data: fixture directory and file names
//   - analytics: companion analytics server (URL, timeout, rate limit,
//     circuit breaker, response cache)
//   - dashboard: initial date interval and focus vessel
//   - server: HTTP listener
//   - security: CORS origins and per-IP rate limiting
//   - logging: level, format, caller
//
// # Example config.yaml
//
//	data:
//	  dir: ./data
//	analytics:
//	  url: http://127.0.0.1:5000
//	  timeout: 30s
//	dashboard:
//	  start_date: "2035-02-01"
//	  end_date: "2035-12-31"
//	server:
//	  port: 8080
//	logging:
//	  level: debug
//	  format: console
package config
