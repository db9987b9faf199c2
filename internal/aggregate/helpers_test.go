// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import "github.com/tomtom215/oceanus/internal/models"

func movement(date, vesselID, locationID string) models.MovementRecord {
	return models.MovementRecord{
		Date:       models.MustParseTimestamp(date),
		VesselID:   vesselID,
		LocationID: locationID,
	}
}

func distribution(date, commodityID, locationID string) models.DistributionRecord {
	return models.DistributionRecord{
		Date:        models.MustParseTimestamp(date),
		CommodityID: commodityID,
		LocationID:  locationID,
	}
}

func stay(vesselID, locationID, start, end string) models.TransportEvent {
	return models.TransportEvent{
		VesselID:   vesselID,
		LocationID: locationID,
		StartTime:  models.MustParseTimestamp(start),
		EndTime:    models.MustParseTimestamp(end),
	}
}

func query(start, end string, vessels, locations []string) models.AnalyticsQuery {
	return models.AnalyticsQuery{
		StartDate:   models.MustParseDay(start),
		EndDate:     models.MustParseDay(end),
		VesselIDs:   vessels,
		LocationIDs: locations,
	}
}
