// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"reflect"
	"testing"

	"github.com/tomtom215/oceanus/internal/models"
)

func TestMovementSequences_Sorted(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{
		movement("2035-03-05", "v1", "L3"),
		movement("2035-03-01", "v1", "L1"),
		movement("2035-03-02T08:00:00", "v2", "L2"),
		movement("2035-03-03", "v1", "L2"),
		movement("2035-03-02T06:00:00", "v2", "L1"),
	}

	got := MovementSequences(movements)
	if len(got) != 2 {
		t.Fatalf("len(sequences) = %d, want 2", len(got))
	}

	for vessel, steps := range got {
		for i := 1; i < len(steps); i++ {
			if steps[i].Date.Before(steps[i-1].Date.Time) {
				t.Errorf("vessel %s: step %d (%s) before step %d (%s)", vessel, i, steps[i].Date, i-1, steps[i-1].Date)
			}
		}

		resorted := append([]models.MovementStep(nil), steps...)
		SortSteps(resorted)
		if !reflect.DeepEqual(resorted, steps) {
			t.Errorf("vessel %s: re-sorting changed the sequence", vessel)
		}
	}

	wantV1 := []string{"L1", "L2", "L3"}
	for i, step := range got["v1"] {
		if step.LocationID != wantV1[i] {
			t.Errorf("v1 step %d location = %s, want %s", i, step.LocationID, wantV1[i])
		}
	}
}

func TestMovementSequences_StableTies(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{
		movement("2035-03-02", "v1", "B"),
		movement("2035-03-01", "v1", "A"),
		movement("2035-03-02", "v1", "C"),
		movement("2035-03-02", "v1", "D"),
	}

	var got []string
	for _, step := range MovementSequences(movements)["v1"] {
		got = append(got, step.LocationID)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestMovementSequences_SkipsUndated(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{
		{VesselID: "v1", LocationID: "L1"},
		movement("2035-03-01", "v1", "L2"),
	}

	got := MovementSequences(movements)["v1"]
	if len(got) != 1 || got[0].LocationID != "L2" {
		t.Errorf("sequence = %+v, want only L2", got)
	}
}
