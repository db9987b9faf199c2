// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package websocket pushes dashboard change notifications to browsers.

The hub is subscribed to the store. Each store event is forwarded to every
connected client as a Message; the UI reacts by re-fetching the views it
shows. Messages carry the new state version, never the state itself.

Message Types:

  - state_changed: selection, interval, focus vessel or pairs changed
  - tsne_updated: a new t-SNE projection is available
  - aggregate_updated: a new aggregated movement timeline is available
  - ping / pong: client keepalive

Each client has two goroutines: readPump answers pings and detects closed
connections, writePump drains the client's send queue and sends protocol
pings every pingPeriod. A client whose queue is full is dropped.

The hub runs under the supervisor via RunWithContext; on cancellation it
closes every client and returns ctx.Err().
*/
package websocket
