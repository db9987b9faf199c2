// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package store

import (
	"errors"
	"time"

	"github.com/tomtom215/oceanus/internal/aggregate"
	"github.com/tomtom215/oceanus/internal/models"
)

// Sentinel errors returned by mutation commands.
var (
	ErrPairNotFound    = errors.New("pair not found")
	ErrUnionNotFound   = errors.New("no union for that date and location")
	ErrInvalidInterval = errors.New("end date is before start date")
	ErrIntervalTooLong = errors.New("date interval too long")
)

// State is the caller-visible dashboard state.
type State struct {
	Version uint64 `json:"version"`

	VesselIDs    []string   `json:"vessel_ids"`
	LocationIDs  []string   `json:"location_ids"`
	CommodityIDs []string   `json:"commodity_ids"`
	StartDate    models.Day `json:"start_date"`
	EndDate      models.Day `json:"end_date"`

	FocusVesselID string `json:"focus_vessel_id"`

	Pairs  []models.VesselCommodityPair `json:"pairs"`
	Unions []models.DateLocationUnion   `json:"unions"`

	VesselTSNE         []models.TSNEPoint        `json:"vessel_tsne"`
	AggregateMovements []models.AggregateSegment `json:"aggregate_movements"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of s.
func (s *State) Clone() State {
	out := *s
	out.VesselIDs = cloneStrings(s.VesselIDs)
	out.LocationIDs = cloneStrings(s.LocationIDs)
	out.CommodityIDs = cloneStrings(s.CommodityIDs)
	out.Pairs = append([]models.VesselCommodityPair{}, s.Pairs...)
	out.Unions = cloneUnions(s.Unions)
	out.VesselTSNE = append([]models.TSNEPoint{}, s.VesselTSNE...)
	out.AggregateMovements = append([]models.AggregateSegment{}, s.AggregateMovements...)
	return out
}

// Filter returns the selection and interval as an aggregate.Filter.
func (s *State) Filter() aggregate.Filter {
	return aggregate.Filter{
		VesselIDs:    s.VesselIDs,
		LocationIDs:  s.LocationIDs,
		CommodityIDs: s.CommodityIDs,
		Start:        s.StartDate,
		End:          s.EndDate,
	}
}

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}

func cloneUnions(in []models.DateLocationUnion) []models.DateLocationUnion {
	out := make([]models.DateLocationUnion, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
