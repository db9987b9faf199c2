// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package fixtures loads the dashboard's JSON fixtures into a Dataset.

Only the knowledge graph (mc2.json) is required. Every other collection is
read from its file when present and, when DeriveMissingTables is set,
computed from the graph otherwise:

  - transport stays: TransponderPing links (time + dwell)
  - daily movements: stays split per calendar day
  - harbor movements: HarborReport links
  - distributions: Transaction links grouped by delivery report, with the
    report's qty_tons
  - unions: distributions joined with harbor movements per (day, location)

Records failing validation are skipped and counted when SkipInvalidRecords
is set; otherwise the first invalid record fails the load.
*/
package fixtures
