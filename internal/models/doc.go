// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package models defines the data structures shared across Oceanus.

Model Categories:

1. Reference data (loaded from fixtures, immutable afterwards):
  - Graph, Node, Link: the knowledge graph of vessels, locations,
    commodities, delivery reports and the events between them
  - MovementRecord: a vessel at a location on a date
  - DistributionRecord: a commodity delivered at a location on a date
  - TransportEvent: a vessel's stay at a location, with start and end
  - DateLocationUnion, VesselCommodityPair: pairing candidates and
    user-confirmed pairs

2. Derived views:
  - VesselLocationFrequency, CommodityLocationFrequency,
    CommodityVesselFrequency: frequency tables
  - MovementStep: one (date, location) element of a vessel sequence
  - TimeSeriesDay: per-day visit counts and dwell per location

3. Analytics server payloads:
  - AnalyticsQuery: request body
  - TSNEPoint, AggregateSegment: responses

4. API envelope:
  - APIResponse, Metadata, APIError

Dates:

Day is a calendar date with no time zone, used as the join key wherever
records are matched "on the same day". Timestamp keeps the wall clock of
a record exactly as written in the source data. Neither type ever converts
between zones, so a record written as 2035-03-01T23:30:00 belongs to
2035-03-01 regardless of where the service runs.
*/
package models
