// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package api serves the dashboard's HTTP API.

Every JSON endpoint answers with models.APIResponse:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "version": 7}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "NOT_FOUND", "message": "..."}}

metadata.version is the dashboard state version the data was derived from.
The UI compares it with the version in WebSocket notifications to decide
whether a view is stale.

Routes (all under /api/v1):

	GET    /health/live, /health/ready
	GET    /catalog/{vessels|locations|commodities}
	GET    /catalog/vessel-types, /catalog/names, /catalog/fishing-locations
	GET    /geography, /coordinates
	GET    /state
	PUT    /state/selection, /state/interval, /state/focus
	POST   /state/initialize
	GET    /views/frequency/{vessel-locations|commodity-locations|commodity-vessels}
	GET    /views/sequences, /views/time-series, /views/colors/{category}
	GET    /pairs, /unions
	POST   /pairs, /pairs/reset
	DELETE /pairs
	GET    /remote/tsne, /remote/aggregate-movements (last stored result)
	POST   /remote/tsne, /remote/aggregate-movements (refresh, then return)
	GET    /ws

GET /metrics serves Prometheus metrics outside the API prefix.

Middleware: request ids, real IP, panic recovery and CORS on every route;
per-IP rate limiting (go-chi/httprate), security headers and Prometheus
instrumentation on the API routes.
*/
package api
