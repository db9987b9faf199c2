// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"testing"

	"github.com/tomtom215/oceanus/internal/models"
)

func TestVesselTimeSeries(t *testing.T) {
	t.Parallel()

	withDwell := func(m models.MovementRecord, dwell float64) models.MovementRecord {
		m.Dwell = dwell
		return m
	}
	movements := []models.MovementRecord{
		withDwell(movement("2035-02-01", "v1", "L2"), 100),
		withDwell(movement("2035-02-01", "v1", "L2"), 50),
		withDwell(movement("2035-02-03", "v1", "L1"), 10),
		withDwell(movement("2035-02-02", "v2", "L1"), 10), // not queried
		withDwell(movement("2035-02-05", "v1", "L1"), 10), // out of range
		withDwell(movement("2035-02-02", "v1", "L9"), 10), // not queried
	}

	got := VesselTimeSeries(movements, query("2035-02-01", "2035-02-03", []string{"v1", "v3"}, []string{"L1", "L2"}))

	if _, ok := got["v3"]; ok {
		t.Error("vessel without movements should be absent")
	}
	if _, ok := got["v2"]; ok {
		t.Error("unqueried vessel should be absent")
	}
	rows := got["v1"]
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Date.String() != "2035-02-01" || rows[2].Date.String() != "2035-02-03" {
		t.Errorf("row dates = %s..%s", rows[0].Date, rows[2].Date)
	}
	if c := rows[0].Cells[1]; c.Count != 2 || c.Dwell != 150 {
		t.Errorf("2035-02-01 L2 = %+v, want {2 150}", c)
	}
	if c := rows[1].Cells[0]; c.Count != 0 {
		t.Errorf("2035-02-02 L1 = %+v, want empty", c)
	}
	if c := rows[2].Cells[0]; c.Count != 1 || c.Dwell != 10 {
		t.Errorf("2035-02-03 L1 = %+v, want {1 10}", c)
	}
}

func TestVesselTimeSeries_InvertedInterval(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{movement("2035-02-01", "v1", "L1")}
	if got := VesselTimeSeries(movements, query("2035-02-03", "2035-02-01", []string{"v1"}, []string{"L1"})); len(got) != 0 {
		t.Errorf("VesselTimeSeries() = %v, want empty", got)
	}
}

func TestVesselTimeSeries_CenturiesLongInterval(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{movement("2035-03-01", "v1", "L1")}
	got := VesselTimeSeries(movements, query("1700-01-01", "2100-12-31", []string{"v1"}, []string{"L1"}))

	rows := got["v1"]
	if len(rows) != 146462 {
		t.Fatalf("len(rows) = %d, want 146462", len(rows))
	}
	row := rows[122415]
	if row.Date.String() != "2035-03-01" {
		t.Errorf("row 122415 date = %s, want 2035-03-01", row.Date)
	}
	if row.Cells[0].Count != 1 {
		t.Errorf("2035-03-01 L1 count = %d, want 1", row.Cells[0].Count)
	}
	if last := rows[len(rows)-1].Date.String(); last != "2100-12-31" {
		t.Errorf("last row date = %s, want 2100-12-31", last)
	}
}
