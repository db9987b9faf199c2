// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import "github.com/tomtom215/oceanus/internal/models"

// Filter restricts records to a selection and an inclusive date interval.
// A zero Start or End leaves that side of the interval open. An empty id
// list selects nothing: the dashboard starts with every id selected and
// deselecting all of them empties the views.
type Filter struct {
	VesselIDs    []string
	LocationIDs  []string
	CommodityIDs []string
	Start        models.Day
	End          models.Day
}

type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (f *Filter) inInterval(day models.Day) bool {
	if !f.Start.IsZero() && day.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && day.After(f.End) {
		return false
	}
	return true
}

// FilterMovements returns the movements of selected vessels at selected
// locations whose calendar day falls in the interval.
func FilterMovements(movements []models.MovementRecord, f Filter) []models.MovementRecord {
	vessels, locations := newIDSet(f.VesselIDs), newIDSet(f.LocationIDs)

	out := make([]models.MovementRecord, 0, len(movements))
	for i := range movements {
		m := &movements[i]
		if vessels.has(m.VesselID) && locations.has(m.LocationID) && f.inInterval(m.Date.Day()) {
			out = append(out, *m)
		}
	}
	return out
}

// FilterDistributions returns the deliveries of selected commodities at
// selected locations whose calendar day falls in the interval.
func FilterDistributions(distributions []models.DistributionRecord, f Filter) []models.DistributionRecord {
	commodities, locations := newIDSet(f.CommodityIDs), newIDSet(f.LocationIDs)

	out := make([]models.DistributionRecord, 0, len(distributions))
	for i := range distributions {
		d := &distributions[i]
		if commodities.has(d.CommodityID) && locations.has(d.LocationID) && f.inInterval(d.Date.Day()) {
			out = append(out, *d)
		}
	}
	return out
}
