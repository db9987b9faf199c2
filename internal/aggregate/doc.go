// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package aggregate derives the dashboard's lookup structures from movement and
distribution records.

Every function is pure: inputs are read, never modified, and the result is a
fresh value. Callers hand in a consistent snapshot (the store never mutates
loaded slices), so no locking happens here.

# Views

  - LocationFrequency: count records per (entity, location), first-seen order
  - CommodityVesselCooccurrence: join distributions and movements on
    (calendar day, location) through a hash index, then count
    (commodity, vessel, location) triples
  - MovementSequences: per-vessel (date, location) timelines, stable-sorted
  - VesselCommodityUnion: outer join of deliveries and vessel visits per
    (day, location), the input of manual pairing
  - VesselTimeSeries: dense per-vessel, per-day, per-location visit matrix
  - AggregateMovements: the location most selected vessels occupied over
    time, as merged segments

# Malformed Records

A record missing an id (or a date where one is needed) is skipped. Each skip
is logged at warn level and counted in aggregation_skipped_records_total;
the pass always completes.

# Calendar Days

Day joins use models.Day, the date as written in the source text. No time
zone conversion is applied, so a movement at 23:30 joins deliveries of that
same date.
*/
package aggregate
