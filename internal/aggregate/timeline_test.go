// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package aggregate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/tomtom215/oceanus/internal/models"
)

type segment struct{ start, end, location string }

func segmentsOf(in []models.AggregateSegment) []segment {
	out := make([]segment, len(in))
	for i, s := range in {
		out[i] = segment{s.StartTime.String(), s.EndTime.String(), s.LocationID}
	}
	return out
}

func TestAggregateMovements(t *testing.T) {
	t.Parallel()

	vessels := []string{"v1", "v2", "v3"}
	locations := []string{"A", "B"}

	tests := []struct {
		name   string
		events []models.TransportEvent
		query  models.AnalyticsQuery
		want   []segment
	}{
		{
			name:   "no events",
			events: nil,
			query:  query("2035-02-01", "2035-02-02", vessels, locations),
			want:   []segment{{"2035-02-01T00:00:00", "2035-02-02T00:00:00", ""}},
		},
		{
			name:   "empty interval",
			events: []models.TransportEvent{stay("v1", "A", "2035-02-01T01:00:00", "2035-02-01T02:00:00")},
			query:  query("2035-02-01", "2035-02-01", vessels, locations),
			want:   []segment{},
		},
		{
			name: "majority wins and merges",
			events: []models.TransportEvent{
				stay("v1", "A", "2035-02-01T06:00:00", "2035-02-01T18:00:00"),
				stay("v2", "B", "2035-02-01T08:00:00", "2035-02-01T10:00:00"),
				stay("v3", "B", "2035-02-01T08:00:00", "2035-02-01T10:00:00"),
			},
			query: query("2035-02-01", "2035-02-02", vessels, locations),
			want: []segment{
				{"2035-02-01T00:00:00", "2035-02-01T06:00:00", ""},
				{"2035-02-01T06:00:00", "2035-02-01T08:00:00", "A"},
				{"2035-02-01T08:00:00", "2035-02-01T10:00:00", "B"},
				{"2035-02-01T10:00:00", "2035-02-01T18:00:00", "A"},
				{"2035-02-01T18:00:00", "2035-02-02T00:00:00", ""},
			},
		},
		{
			name: "tie goes to first seen",
			events: []models.TransportEvent{
				stay("v1", "B", "2035-02-01T00:00:00", "2035-02-02T00:00:00"),
				stay("v2", "A", "2035-02-01T00:00:00", "2035-02-02T00:00:00"),
			},
			query: query("2035-02-01", "2035-02-02", vessels, locations),
			want:  []segment{{"2035-02-01T00:00:00", "2035-02-02T00:00:00", "B"}},
		},
		{
			name: "clamped to interval and filtered",
			events: []models.TransportEvent{
				stay("v1", "A", "2035-01-31T12:00:00", "2035-02-01T12:00:00"),
				stay("v9", "B", "2035-02-01T00:00:00", "2035-02-02T00:00:00"),
				stay("v2", "C", "2035-02-01T00:00:00", "2035-02-02T00:00:00"),
			},
			query: query("2035-02-01", "2035-02-02", vessels, locations),
			want: []segment{
				{"2035-02-01T00:00:00", "2035-02-01T12:00:00", "A"},
				{"2035-02-01T12:00:00", "2035-02-02T00:00:00", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AggregateMovements(tt.events, tt.query)
			gotSegs := segmentsOf(got)
			if len(gotSegs) != len(tt.want) {
				t.Fatalf("segments = %+v, want %+v", gotSegs, tt.want)
			}
			for i := range gotSegs {
				if gotSegs[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, gotSegs[i], tt.want[i])
				}
				if got[i].VesselID != models.AggregateVesselID {
					t.Errorf("segment %d vessel = %q, want %q", i, got[i].VesselID, models.AggregateVesselID)
				}
			}
		})
	}
}

// randomStays builds n stays of up to a day each, spread over February 2035,
// across vessels v0..v9 and locations A..E.
func randomStays(n int, seed int64) []models.TransportEvent {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2035, time.February, 1, 0, 0, 0, 0, time.UTC)
	events := make([]models.TransportEvent, n)
	for i := range events {
		from := base.Add(time.Duration(rng.Intn(28*24*60)) * time.Minute)
		to := from.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		events[i] = models.TransportEvent{
			VesselID:   fmt.Sprintf("v%d", rng.Intn(10)),
			LocationID: string(rune('A' + rng.Intn(5))),
			StartTime:  models.NewTimestamp(from),
			EndTime:    models.NewTimestamp(to),
		}
	}
	return events
}

// naiveLocation counts overlapping stays for one span directly.
func naiveLocation(events []models.TransportEvent, rank map[string]int, from, to time.Time) string {
	counts := make(map[string]int)
	for _, e := range events {
		if e.StartTime.Before(to) && e.EndTime.After(from) {
			counts[e.LocationID]++
		}
	}
	best, bestCount := "", 0
	for location, c := range counts {
		if c > bestCount || (c == bestCount && rank[location] < rank[best]) {
			best, bestCount = location, c
		}
	}
	return best
}

func TestAggregateMovements_MatchesDirectCount(t *testing.T) {
	t.Parallel()

	events := randomStays(400, 7)
	q := query("2035-02-01", "2035-03-01",
		[]string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9"},
		[]string{"A", "B", "C", "D", "E"})
	rank := make(map[string]int)
	for _, e := range events {
		if _, ok := rank[e.LocationID]; !ok {
			rank[e.LocationID] = len(rank)
		}
	}

	got := AggregateMovements(events, q)
	if len(got) == 0 {
		t.Fatal("no segments")
	}
	for i, seg := range got {
		if i > 0 && !got[i-1].EndTime.Equal(seg.StartTime.Time) {
			t.Fatalf("gap between segment %d and %d", i-1, i)
		}
		// Checking at every boundary inside the segment would be quadratic;
		// the midpoint of its first and last minute is enough.
		for _, at := range []time.Time{seg.StartTime.Add(30 * time.Second), seg.EndTime.Add(-30 * time.Second)} {
			if want := naiveLocation(events, rank, at, at.Add(time.Second)); want != seg.LocationID {
				t.Errorf("segment %d at %s = %q, direct count says %q", i, at, seg.LocationID, want)
			}
		}
	}
}

func TestAggregateMovements_ScalesToManyStays(t *testing.T) {
	t.Parallel()

	events := randomStays(100000, 11)
	q := query("2035-02-01", "2035-03-01",
		[]string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9"},
		[]string{"A", "B", "C", "D", "E"})

	start := time.Now()
	got := AggregateMovements(events, q)
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("100000 stays took %v", elapsed)
	}
	if len(got) == 0 {
		t.Error("no segments")
	}
}

func TestAggregateMovementsContext_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := query("2035-02-01", "2035-03-01", []string{"v0", "v1"}, []string{"A", "B"})
	got, err := AggregateMovementsContext(ctx, randomStays(1000, 3), q)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if got != nil {
		t.Errorf("segments = %d, want nil", len(got))
	}
}

func BenchmarkAggregateMovements(b *testing.B) {
	events := randomStays(50000, 5)
	q := query("2035-02-01", "2035-03-01",
		[]string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9"},
		[]string{"A", "B", "C", "D", "E"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AggregateMovements(events, q)
	}
}
