// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package store

import (
	"time"

	"github.com/tomtom215/oceanus/internal/aggregate"
	"github.com/tomtom215/oceanus/internal/colorscale"
	"github.com/tomtom215/oceanus/internal/metrics"
	"github.com/tomtom215/oceanus/internal/models"
)

// Views are the derived views of one state version, computed over the
// movements and deliveries that pass the selection and interval.
type Views struct {
	Version            uint64                              `json:"version"`
	VesselLocations    []models.VesselLocationFrequency    `json:"vessel_locations"`
	CommodityLocations []models.CommodityLocationFrequency `json:"commodity_locations"`
	CommodityVessels   []models.CommodityVesselFrequency   `json:"commodity_vessels"`
	Sequences          map[string][]models.MovementStep    `json:"sequences"`
}

// Views returns the derived views for the current state. Results are
// memoized until the next change and must not be modified.
func (s *Store) Views() *Views {
	st := s.State()

	s.viewsMu.Lock()
	defer s.viewsMu.Unlock()
	if s.views != nil && s.views.Version == st.Version {
		return s.views
	}

	f := st.Filter()
	movements := aggregate.FilterMovements(s.data.Movements, f)
	distributions := aggregate.FilterDistributions(s.data.Distributions, f)

	v := &Views{Version: st.Version}
	timed("vessel_locations", func() {
		v.VesselLocations = aggregate.VesselLocationFrequency(movements)
	})
	timed("commodity_locations", func() {
		v.CommodityLocations = aggregate.CommodityLocationFrequency(distributions)
	})
	timed("commodity_vessels", func() {
		v.CommodityVessels = aggregate.CommodityVesselCooccurrence(distributions, movements)
	})
	timed("sequences", func() {
		v.Sequences = aggregate.MovementSequences(movements)
	})

	s.views = v
	return v
}

// TimeSeries returns the per-vessel daily matrix for the selected vessels
// and locations over the current interval.
func (s *Store) TimeSeries() map[string][]models.TimeSeriesDay {
	st := s.State()
	var out map[string][]models.TimeSeriesDay
	timed("time_series", func() {
		out = aggregate.VesselTimeSeries(s.data.Movements, models.AnalyticsQuery{
			StartDate:   st.StartDate,
			EndDate:     st.EndDate,
			VesselIDs:   st.VesselIDs,
			LocationIDs: st.LocationIDs,
		})
	})
	return out
}

// ColorScale returns the color scale for category. Domains are the full
// catalog lists, so colors do not shift when the selection changes.
func (s *Store) ColorScale(category colorscale.Category) *colorscale.Scale {
	cat := s.data.Catalog
	var domain []string
	switch category {
	case colorscale.CategoryVessel:
		domain = cat.VesselTypes()
	case colorscale.CategoryLocation:
		domain = cat.LocationIDs()
	case colorscale.CategoryCommodity:
		domain = cat.CommodityIDs()
	}
	return colorscale.For(category, domain)
}

func timed(view string, fn func()) {
	start := time.Now()
	fn()
	metrics.RecordAggregation(view, time.Since(start))
}
