// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"testing"

	"github.com/tomtom215/oceanus/internal/models"
)

func TestSplitTransportEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		event     models.TransportEvent
		wantDays  []string
		wantDwell []float64
	}{
		{
			name:      "same day",
			event:     stay("v1", "L1", "2035-02-01T10:00:00", "2035-02-01T12:30:00"),
			wantDays:  []string{"2035-02-01"},
			wantDwell: []float64{9000},
		},
		{
			name:      "crosses midnight",
			event:     stay("v1", "L1", "2035-02-01T22:00:00", "2035-02-02T01:00:00"),
			wantDays:  []string{"2035-02-01", "2035-02-02"},
			wantDwell: []float64{7200, 3600},
		},
		{
			name:      "spans whole days",
			event:     stay("v1", "L1", "2035-02-01T12:00:00", "2035-02-04T06:00:00"),
			wantDays:  []string{"2035-02-01", "2035-02-02", "2035-02-03", "2035-02-04"},
			wantDwell: []float64{43200, 86400, 86400, 21600},
		},
		{
			name:      "ends at midnight",
			event:     stay("v1", "L1", "2035-02-01T18:00:00", "2035-02-02T00:00:00"),
			wantDays:  []string{"2035-02-01", "2035-02-02"},
			wantDwell: []float64{21600, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitTransportEvents([]models.TransportEvent{tt.event})
			if len(got) != len(tt.wantDays) {
				t.Fatalf("len = %d, want %d: %+v", len(got), len(tt.wantDays), got)
			}
			var total float64
			for i, r := range got {
				if r.Date.String() != tt.wantDays[i] {
					t.Errorf("record %d date = %s, want %s", i, r.Date, tt.wantDays[i])
				}
				if r.Dwell != tt.wantDwell[i] {
					t.Errorf("record %d dwell = %v, want %v", i, r.Dwell, tt.wantDwell[i])
				}
				if r.Type != models.MovementTransport {
					t.Errorf("record %d type = %q, want transport", i, r.Type)
				}
				total += r.Dwell
			}
			if want := tt.event.EndTime.Sub(tt.event.StartTime.Time).Seconds(); total != want {
				t.Errorf("total dwell = %v, want %v", total, want)
			}
		})
	}
}

func TestSplitTransportEvents_SkipsInverted(t *testing.T) {
	t.Parallel()

	events := []models.TransportEvent{
		stay("v1", "L1", "2035-02-02T00:00:00", "2035-02-01T00:00:00"),
		{VesselID: "v1", LocationID: "L1"},
		stay("v1", "L1", "2035-02-01T00:00:00", "2035-02-01T01:00:00"),
	}
	if got := SplitTransportEvents(events); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}
