// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"testing"

	"github.com/tomtom215/oceanus/internal/models"
)

func TestVesselCommodityUnion(t *testing.T) {
	t.Parallel()

	qty := 12.5
	d1 := distribution("2035-02-03", "c1", "L1")
	d1.DocumentID, d1.QtyTons = "doc1", &qty
	m1 := movement("2035-02-03T09:15:00", "v1", "L1")
	m1.MovementID = "v1_L1_2035-02-03T09:15:00"

	unions := VesselCommodityUnion(
		[]models.DistributionRecord{d1, distribution("2035-02-01", "c2", "L2")},
		[]models.MovementRecord{m1, movement("2035-02-02", "v2", "L3")},
	)

	if len(unions) != 3 {
		t.Fatalf("len(unions) = %d, want 3", len(unions))
	}
	wantDates := []string{"2035-02-01", "2035-02-02", "2035-02-03"}
	for i, u := range unions {
		if u.Date.String() != wantDates[i] {
			t.Errorf("union %d date = %s, want %s", i, u.Date, wantDates[i])
		}
	}

	joined := unions[2]
	if joined.LocationID != "L1" || len(joined.Commodities) != 1 || len(joined.Vessels) != 1 {
		t.Fatalf("joined union = %+v", joined)
	}
	if joined.Commodities[0].DocumentID != "doc1" || joined.Commodities[0].QtyTons != 12.5 {
		t.Errorf("commodity = %+v", joined.Commodities[0])
	}
	if joined.Vessels[0].Key != m1.MovementID {
		t.Errorf("vessel key = %q, want %q", joined.Vessels[0].Key, m1.MovementID)
	}

	vesselOnly := unions[1]
	if len(vesselOnly.Commodities) != 0 || vesselOnly.Commodities == nil {
		t.Errorf("vessel-only union commodities = %#v, want empty non-nil slice", vesselOnly.Commodities)
	}
	if got := vesselOnly.Vessels[0].MovementID; got != "v2_L3_2035-02-02T00:00:00" {
		t.Errorf("derived movement id = %q", got)
	}
}
