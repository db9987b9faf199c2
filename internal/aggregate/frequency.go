// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import "github.com/tomtom215/oceanus/internal/models"

// KeyFunc extracts the grouping key of a record: the entity id (vessel or
// commodity) and the location id.
type KeyFunc[T any] func(record *T) (entityID, locationID string)

type entityLocation struct {
	entity   string
	location string
}

// LocationFrequency groups records by (entity id, location id) and returns
// one entry per distinct key. Entries appear in the order their key was
// first seen. Records with an empty entity or location id are skipped.
//
// The frequencies of the result sum to the number of records not skipped.
func LocationFrequency[T any](operation string, records []T, key KeyFunc[T]) []models.FrequencyEntry {
	index := make(map[entityLocation]int)
	entries := make([]models.FrequencyEntry, 0)

	for i := range records {
		entityID, locationID := key(&records[i])
		if entityID == "" {
			skipRecord(operation, reasonMissingEntity, i)
			continue
		}
		if locationID == "" {
			skipRecord(operation, reasonMissingLocation, i)
			continue
		}

		k := entityLocation{entity: entityID, location: locationID}
		if pos, ok := index[k]; ok {
			entries[pos].Frequency++
			continue
		}
		index[k] = len(entries)
		entries = append(entries, models.FrequencyEntry{
			EntityID:   entityID,
			LocationID: locationID,
			Frequency:  1,
		})
	}

	return entries
}

// VesselLocationFrequency counts movements per (vessel, location).
func VesselLocationFrequency(movements []models.MovementRecord) []models.VesselLocationFrequency {
	entries := LocationFrequency("vessel_location_frequency", movements, func(r *models.MovementRecord) (string, string) {
		return r.VesselID, r.LocationID
	})

	out := make([]models.VesselLocationFrequency, len(entries))
	for i, e := range entries {
		out[i] = models.VesselLocationFrequency{VesselID: e.EntityID, LocationID: e.LocationID, Frequency: e.Frequency}
	}
	return out
}

// CommodityLocationFrequency counts distributions per (commodity, location).
func CommodityLocationFrequency(distributions []models.DistributionRecord) []models.CommodityLocationFrequency {
	entries := LocationFrequency("commodity_location_frequency", distributions, func(r *models.DistributionRecord) (string, string) {
		return r.CommodityID, r.LocationID
	})

	out := make([]models.CommodityLocationFrequency, len(entries))
	for i, e := range entries {
		out[i] = models.CommodityLocationFrequency{CommodityID: e.EntityID, LocationID: e.LocationID, Frequency: e.Frequency}
	}
	return out
}
