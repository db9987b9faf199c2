// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import "github.com/tomtom215/oceanus/internal/models"

// dayLocation is the join key shared by distributions and movements.
type dayLocation struct {
	day      models.Day
	location string
}

type commodityVesselLocation struct {
	commodity string
	vessel    string
	location  string
}

// CommodityVesselCooccurrence counts, for each (commodity, vessel,
// location), how often the vessel was at the location on a calendar day the
// commodity was delivered there.
//
// Distributions are indexed by (day, location) first; movements are then
// scanned once against the index. A commodity delivered twice on the same
// day and location counts twice for each matching movement. Entries appear
// in first-seen order.
func CommodityVesselCooccurrence(distributions []models.DistributionRecord, movements []models.MovementRecord) []models.CommodityVesselFrequency {
	const operation = "commodity_vessel_cooccurrence"

	lookup := make(map[dayLocation][]string, len(distributions))
	for i := range distributions {
		d := &distributions[i]
		switch {
		case d.CommodityID == "":
			skipRecord(operation, reasonMissingEntity, i)
			continue
		case d.LocationID == "":
			skipRecord(operation, reasonMissingLocation, i)
			continue
		case d.Date.IsZero():
			skipRecord(operation, reasonMissingDate, i)
			continue
		}
		key := dayLocation{day: d.Date.Day(), location: d.LocationID}
		lookup[key] = append(lookup[key], d.CommodityID)
	}

	result := make([]models.CommodityVesselFrequency, 0)
	if len(lookup) == 0 {
		return result
	}

	index := make(map[commodityVesselLocation]int)
	for i := range movements {
		m := &movements[i]
		if m.VesselID == "" || m.LocationID == "" || m.Date.IsZero() {
			skipRecord(operation, movementSkipReason(m), i)
			continue
		}

		commodities := lookup[dayLocation{day: m.Date.Day(), location: m.LocationID}]
		for _, commodityID := range commodities {
			k := commodityVesselLocation{commodity: commodityID, vessel: m.VesselID, location: m.LocationID}
			if pos, ok := index[k]; ok {
				result[pos].Frequency++
				continue
			}
			index[k] = len(result)
			result = append(result, models.CommodityVesselFrequency{
				CommodityID: commodityID,
				VesselID:    m.VesselID,
				LocationID:  m.LocationID,
				Frequency:   1,
			})
		}
	}

	return result
}

func movementSkipReason(m *models.MovementRecord) string {
	switch {
	case m.VesselID == "":
		return reasonMissingEntity
	case m.LocationID == "":
		return reasonMissingLocation
	default:
		return reasonMissingDate
	}
}
