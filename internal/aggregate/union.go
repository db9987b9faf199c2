// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"sort"

	"github.com/tomtom215/oceanus/internal/models"
)

// VesselCommodityUnion outer-joins deliveries and vessel visits on
// (calendar day, location). Each key present on either side yields one
// union, sorted by date; keys on the same date keep first-seen order.
func VesselCommodityUnion(distributions []models.DistributionRecord, movements []models.MovementRecord) []models.DateLocationUnion {
	const operation = "vessel_commodity_union"

	index := make(map[dayLocation]int)
	unions := make([]models.DateLocationUnion, 0)
	slot := func(day models.Day, location string) *models.DateLocationUnion {
		k := dayLocation{day: day, location: location}
		pos, ok := index[k]
		if !ok {
			pos = len(unions)
			index[k] = pos
			unions = append(unions, models.DateLocationUnion{
				Date:        day,
				LocationID:  location,
				Commodities: []models.UnionCommodity{},
				Vessels:     []models.UnionVessel{},
			})
		}
		return &unions[pos]
	}

	for i := range distributions {
		d := &distributions[i]
		if d.CommodityID == "" || d.LocationID == "" || d.Date.IsZero() {
			skipRecord(operation, distributionSkipReason(d), i)
			continue
		}
		var qty float64
		if d.QtyTons != nil {
			qty = *d.QtyTons
		}
		u := slot(d.Date.Day(), d.LocationID)
		u.Commodities = append(u.Commodities, models.UnionCommodity{
			DocumentID:  d.DocumentID,
			CommodityID: d.CommodityID,
			QtyTons:     qty,
		})
	}

	for i := range movements {
		m := &movements[i]
		if m.VesselID == "" || m.LocationID == "" || m.Date.IsZero() {
			skipRecord(operation, movementSkipReason(m), i)
			continue
		}
		id := m.MovementID
		if id == "" {
			id = MovementID(m.VesselID, m.LocationID, m.Date.Time)
		}
		u := slot(m.Date.Day(), m.LocationID)
		u.Vessels = append(u.Vessels, models.UnionVessel{
			MovementID: id,
			VesselID:   m.VesselID,
			Key:        id,
		})
	}

	sort.SliceStable(unions, func(i, j int) bool {
		return unions[i].Date.Before(unions[j].Date)
	})
	return unions
}

func distributionSkipReason(d *models.DistributionRecord) string {
	switch {
	case d.CommodityID == "":
		return reasonMissingEntity
	case d.LocationID == "":
		return reasonMissingLocation
	default:
		return reasonMissingDate
	}
}
