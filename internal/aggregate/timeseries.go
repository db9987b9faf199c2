// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import "github.com/tomtom215/oceanus/internal/models"

// VesselTimeSeries builds, for each queried vessel with at least one
// matching movement, one row per day of the query interval. Row cells are
// indexed like query.LocationIDs and hold the visit count and total dwell
// at that location on that day. This is the matrix the analytics server
// projects with t-SNE.
//
// An interval whose end precedes its start yields an empty result. The
// result holds days x locations cells per vessel, so callers bound the
// interval (the store caps it at Options.MaxIntervalDays).
func VesselTimeSeries(movements []models.MovementRecord, query models.AnalyticsQuery) map[string][]models.TimeSeriesDay {
	result := make(map[string][]models.TimeSeriesDay)
	if query.StartDate.IsZero() || query.EndDate.IsZero() || query.EndDate.Before(query.StartDate) {
		return result
	}

	locationIndex := make(map[string]int, len(query.LocationIDs))
	for i, id := range query.LocationIDs {
		if _, ok := locationIndex[id]; !ok {
			locationIndex[id] = i
		}
	}
	vessels := newIDSet(query.VesselIDs)
	days := query.StartDate.DaysUntil(query.EndDate) + 1

	for i := range movements {
		m := &movements[i]
		col, ok := locationIndex[m.LocationID]
		if !ok || !vessels.has(m.VesselID) || m.Date.IsZero() {
			continue
		}
		day := m.Date.Day()
		if day.Before(query.StartDate) || day.After(query.EndDate) {
			continue
		}

		rows, ok := result[m.VesselID]
		if !ok {
			rows = newTimeSeries(query.StartDate, days, len(query.LocationIDs))
			result[m.VesselID] = rows
		}
		row := query.StartDate.DaysUntil(day)
		cell := &rows[row].Cells[col]
		cell.Count++
		cell.Dwell += m.Dwell
	}

	return result
}

func newTimeSeries(start models.Day, days, locations int) []models.TimeSeriesDay {
	rows := make([]models.TimeSeriesDay, days)
	for i := range rows {
		rows[i] = models.TimeSeriesDay{
			Date:  start.AddDays(i),
			Cells: make([]models.TimeSeriesCell, locations),
		}
	}
	return rows
}
