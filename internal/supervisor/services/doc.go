// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package services adapts Oceanus components to suture.Service.

  - HTTPServerService runs the API server and drains it on shutdown.
  - WebSocketHubService runs the notification hub.
  - RemoteRefreshService recomputes analytics server results after the
    selection or interval changes.

Every Serve returns ctx.Err() on a requested shutdown so the supervisor
does not count it as a failure, and a wrapped error otherwise so the
supervisor restarts the service with backoff.
*/
package services
