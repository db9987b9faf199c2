// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// FrequencyEntry counts the records sharing an (entity, location) key.
type FrequencyEntry struct {
	EntityID   string `json:"entity_id"`
	LocationID string `json:"location_id"`
	Frequency  int    `json:"frequency"`
}

// VesselLocationFrequency counts movements of one vessel at one location.
type VesselLocationFrequency struct {
	VesselID   string `json:"vessel_id"`
	LocationID string `json:"location_id"`
	Frequency  int    `json:"frequency"`
}

// CommodityLocationFrequency counts deliveries of one commodity at one location.
type CommodityLocationFrequency struct {
	CommodityID string `json:"commodity_id"`
	LocationID  string `json:"location_id"`
	Frequency   int    `json:"frequency"`
}

// CommodityVesselFrequency counts the days a vessel was at a location on
// which the commodity was delivered there.
type CommodityVesselFrequency struct {
	CommodityID string `json:"commodity_id"`
	VesselID    string `json:"vessel_id"`
	LocationID  string `json:"location_id"`
	Frequency   int    `json:"frequency"`
}

// MovementStep is one element of a vessel's movement sequence. It encodes
// as a two-element array, [date, location_id].
type MovementStep struct {
	Date       Timestamp
	LocationID string
}

// MarshalJSON implements json.Marshaler.
func (s MovementStep) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{s.Date, s.LocationID})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *MovementStep) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("movement step must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &s.Date); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &s.LocationID)
}

// AnalyticsQuery is the request body of both analytics server endpoints.
type AnalyticsQuery struct {
	StartDate   Day      `json:"start_date" validate:"required"`
	EndDate     Day      `json:"end_date" validate:"required"`
	VesselIDs   []string `json:"vessel_ids"`
	LocationIDs []string `json:"location_ids"`
}

// TSNEPoint is one vessel's position in the 2-D t-SNE projection. The
// analytics server sends [vessel_id, [x, y]]; the API exposes an object.
type TSNEPoint struct {
	VesselID string  `json:"vessel_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// UnmarshalJSON accepts both the server's tuple form and the object form.
func (p *TSNEPoint) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		type plain TSNEPoint
		return json.Unmarshal(data, (*plain)(p))
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("t-SNE point must have 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.VesselID); err != nil {
		return err
	}
	var coord []float64
	if err := json.Unmarshal(tuple[1], &coord); err != nil {
		return err
	}
	if len(coord) != 2 {
		return fmt.Errorf("t-SNE coordinate must have 2 values, got %d", len(coord))
	}
	p.X, p.Y = coord[0], coord[1]
	return nil
}

// AggregateVesselID is the vessel_id the analytics server gives every
// aggregated segment.
const AggregateVesselID = "aggregation"

// AggregateSegment is a time span during which LocationID was the location
// most vessels in the selection were at. LocationID is empty when no
// selected vessel was anywhere during the span.
type AggregateSegment struct {
	StartTime  Timestamp `json:"start_time"`
	EndTime    Timestamp `json:"end_time"`
	LocationID string    `json:"location_id"`
	VesselID   string    `json:"vessel_id"`
}

// TimeSeriesCell is the visit count and total dwell for one location on one day.
type TimeSeriesCell struct {
	Count int     `json:"count"`
	Dwell float64 `json:"dwell"`
}

// TimeSeriesDay is one row of a vessel's time series; Cells is indexed like
// the location ids of the query.
type TimeSeriesDay struct {
	Date  Day              `json:"date"`
	Cells []TimeSeriesCell `json:"cells"`
}
