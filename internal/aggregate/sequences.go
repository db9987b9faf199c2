// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"sort"

	"github.com/tomtom215/oceanus/internal/models"
)

// MovementSequences groups movements by vessel and orders each vessel's
// steps by date ascending. The sort is stable: steps with equal dates keep
// their input order.
func MovementSequences(movements []models.MovementRecord) map[string][]models.MovementStep {
	const operation = "movement_sequences"

	sequences := make(map[string][]models.MovementStep)
	for i := range movements {
		m := &movements[i]
		if m.VesselID == "" || m.LocationID == "" || m.Date.IsZero() {
			skipRecord(operation, movementSkipReason(m), i)
			continue
		}
		sequences[m.VesselID] = append(sequences[m.VesselID], models.MovementStep{
			Date:       m.Date,
			LocationID: m.LocationID,
		})
	}

	for _, steps := range sequences {
		SortSteps(steps)
	}
	return sequences
}

// SortSteps stable-sorts steps by date in place.
func SortSteps(steps []models.MovementStep) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Date.Before(steps[j].Date.Time)
	})
}
