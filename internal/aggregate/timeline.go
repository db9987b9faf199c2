// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/oceanus/internal/models"
)

type span struct {
	location string
	start    time.Time
	end      time.Time
}

// ctxCheckEvery is how many cut points the sweep processes between
// context checks.
const ctxCheckEvery = 4096

// AggregateMovements summarizes where the selected vessels were over the
// query interval, from midnight of StartDate to midnight of EndDate.
//
// Every start and end instant of a matching stay cuts the interval into
// elementary spans. Each span is assigned the location with the most stays
// overlapping it; ties go to the location whose first matching stay comes
// earliest in events, and a span nobody overlaps gets an empty location.
// Consecutive spans with the same location are merged. Every segment
// carries models.AggregateVesselID.
func AggregateMovements(events []models.TransportEvent, query models.AnalyticsQuery) []models.AggregateSegment {
	segments, _ := AggregateMovementsContext(context.Background(), events, query)
	return segments
}

// AggregateMovementsContext is AggregateMovements with cancellation. It
// sweeps the cut points once, so it runs in O(n log n + points x locations)
// for n matching stays, and returns ctx.Err() if ctx ends first.
func AggregateMovementsContext(ctx context.Context, events []models.TransportEvent, query models.AnalyticsQuery) ([]models.AggregateSegment, error) {
	const operation = "aggregate_movements"

	segments := make([]models.AggregateSegment, 0)
	if query.StartDate.IsZero() || query.EndDate.IsZero() || query.EndDate.Before(query.StartDate) {
		return segments, nil
	}
	start, end := query.StartDate.Time(), query.EndDate.Time()
	vessels, locations := newIDSet(query.VesselIDs), newIDSet(query.LocationIDs)

	var stays []span
	rank := make(map[string]int)
	for i := range events {
		e := &events[i]
		if e.StartTime.IsZero() || e.EndTime.IsZero() {
			skipRecord(operation, reasonMissingDate, i)
			continue
		}
		if e.EndTime.Before(e.StartTime.Time) {
			skipRecord(operation, reasonInvertedSpan, i)
			continue
		}
		if !vessels.has(e.VesselID) || !locations.has(e.LocationID) {
			continue
		}
		if e.StartTime.After(end) || e.EndTime.Before(start) {
			continue
		}
		if _, ok := rank[e.LocationID]; !ok {
			rank[e.LocationID] = len(rank)
		}
		stays = append(stays, span{location: e.LocationID, start: e.StartTime.Time, end: e.EndTime.Time})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// A stay overlaps the span (p[i], p[i+1]) exactly when it started at or
	// before p[i] and ends after it: every boundary inside the interval is a
	// cut point, so no stay starts or ends strictly inside a span.
	byStart := make([]span, len(stays))
	copy(byStart, stays)
	sort.SliceStable(byStart, func(i, j int) bool { return byStart[i].start.Before(byStart[j].start) })
	byEnd := stays
	sort.SliceStable(byEnd, func(i, j int) bool { return byEnd[i].end.Before(byEnd[j].end) })

	counts := make([]int, len(rank))
	ranked := make([]string, len(rank))
	for location, r := range rank {
		ranked[r] = location
	}

	points := cutPoints(stays, start, end)
	si, ei := 0, 0
	for i := 0; i+1 < len(points); i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		from, to := points[i], points[i+1]
		for ; si < len(byStart) && !byStart[si].start.After(from); si++ {
			counts[rank[byStart[si].location]]++
		}
		for ; ei < len(byEnd) && !byEnd[ei].end.After(from); ei++ {
			counts[rank[byEnd[ei].location]]--
		}
		location := busiestLocation(counts, ranked)

		if n := len(segments); n > 0 && segments[n-1].LocationID == location {
			segments[n-1].EndTime = models.NewTimestamp(to)
			continue
		}
		segments = append(segments, models.AggregateSegment{
			StartTime:  models.NewTimestamp(from),
			EndTime:    models.NewTimestamp(to),
			LocationID: location,
			VesselID:   models.AggregateVesselID,
		})
	}
	return segments, nil
}

// cutPoints returns the sorted distinct stay boundaries inside [start, end],
// always including start and end themselves.
func cutPoints(stays []span, start, end time.Time) []time.Time {
	seen := map[int64]struct{}{start.UnixNano(): {}, end.UnixNano(): {}}
	points := []time.Time{start}
	if !end.Equal(start) {
		points = append(points, end)
	}
	add := func(t time.Time) {
		if t.Before(start) || t.After(end) {
			return
		}
		if _, ok := seen[t.UnixNano()]; ok {
			return
		}
		seen[t.UnixNano()] = struct{}{}
		points = append(points, t)
	}
	for _, s := range stays {
		add(s.start)
		add(s.end)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })
	return points
}

// busiestLocation returns the location with the highest positive count,
// preferring lower ranks on ties, or "" when every count is zero.
func busiestLocation(counts []int, ranked []string) string {
	best, bestCount := "", 0
	for r, c := range counts {
		if c > bestCount {
			best, bestCount = ranked[r], c
		}
	}
	return best
}
