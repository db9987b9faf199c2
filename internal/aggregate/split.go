// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"time"

	"github.com/tomtom215/oceanus/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// MovementID builds the identifier of a vessel visit, as used by unions
// and pairs: vessel_location_YYYY-MM-DDTHH:MM:SS.
func MovementID(vesselID, locationID string, at time.Time) string {
	return vesselID + "_" + locationID + "_" + at.Format("2006-01-02T15:04:05")
}

// SplitTransportEvents turns each stay into one daily movement record per
// calendar day it touches. Dwell is the number of seconds of the stay that
// fall on that day: start to midnight on the first day, whole days in
// between, midnight to end on the last day.
func SplitTransportEvents(events []models.TransportEvent) []models.MovementRecord {
	const operation = "split_transport_events"

	records := make([]models.MovementRecord, 0, len(events))
	for i := range events {
		e := &events[i]
		switch {
		case e.VesselID == "":
			skipRecord(operation, reasonMissingEntity, i)
			continue
		case e.LocationID == "":
			skipRecord(operation, reasonMissingLocation, i)
			continue
		case e.StartTime.IsZero() || e.EndTime.IsZero():
			skipRecord(operation, reasonMissingDate, i)
			continue
		case e.EndTime.Before(e.StartTime.Time):
			skipRecord(operation, reasonInvertedSpan, i)
			continue
		}

		start, end := e.StartTime.Time, e.EndTime.Time
		lastDay := e.EndTime.Day()
		for day := e.StartTime.Day(); !day.After(lastDay); day = day.AddDays(1) {
			from := day.Time()
			if from.Before(start) {
				from = start
			}
			to := day.AddDays(1).Time()
			if to.After(end) {
				to = end
			}

			records = append(records, models.MovementRecord{
				Date:       models.TimestampOfDay(day),
				VesselID:   e.VesselID,
				LocationID: e.LocationID,
				Type:       models.MovementTransport,
				Dwell:      to.Sub(from).Seconds(),
				MovementID: MovementID(e.VesselID, e.LocationID, from),
			})
		}
	}
	return records
}
