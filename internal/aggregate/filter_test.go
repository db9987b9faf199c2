// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"testing"

	"github.com/tomtom215/oceanus/internal/models"
)

func TestFilterMovements(t *testing.T) {
	t.Parallel()

	movements := []models.MovementRecord{
		movement("2035-01-31T23:59:59", "v1", "L1"),
		movement("2035-02-01", "v1", "L1"),
		movement("2035-02-15", "v2", "L1"),
		movement("2035-02-20", "v1", "L2"),
		movement("2035-02-28T23:00:00", "v1", "L1"),
		movement("2035-03-01", "v1", "L1"),
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{
			name:   "interval and selection",
			filter: Filter{VesselIDs: []string{"v1"}, LocationIDs: []string{"L1"}, Start: models.MustParseDay("2035-02-01"), End: models.MustParseDay("2035-02-28")},
			want:   2,
		},
		{
			name:   "open interval",
			filter: Filter{VesselIDs: []string{"v1", "v2"}, LocationIDs: []string{"L1", "L2"}},
			want:   6,
		},
		{
			name:   "empty selection",
			filter: Filter{LocationIDs: []string{"L1"}},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FilterMovements(movements, tt.filter); len(got) != tt.want {
				t.Errorf("len(FilterMovements()) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterDistributions(t *testing.T) {
	t.Parallel()

	distributions := []models.DistributionRecord{
		distribution("2035-02-01", "c1", "L1"),
		distribution("2035-02-01", "c2", "L1"),
		distribution("2035-06-01", "c1", "L1"),
	}
	f := Filter{
		CommodityIDs: []string{"c1"},
		LocationIDs:  []string{"L1"},
		Start:        models.MustParseDay("2035-02-01"),
		End:          models.MustParseDay("2035-05-17"),
	}

	got := FilterDistributions(distributions, f)
	if len(got) != 1 || got[0].CommodityID != "c1" || got[0].Date.String() != "2035-02-01" {
		t.Errorf("FilterDistributions() = %+v", got)
	}
}
