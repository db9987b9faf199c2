// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/models"
)

// TSNEQuery is the t-SNE request for the current state: every vessel in the
// catalog, projected over the selected locations and interval.
func (s *Store) TSNEQuery() models.AnalyticsQuery {
	st := s.State()
	return models.AnalyticsQuery{
		StartDate:   st.StartDate,
		EndDate:     st.EndDate,
		VesselIDs:   s.data.Catalog.VesselIDs(),
		LocationIDs: st.LocationIDs,
	}
}

// AggregateQuery is the aggregated movements request for the current
// selection and interval.
func (s *Store) AggregateQuery() models.AnalyticsQuery {
	st := s.State()
	return models.AnalyticsQuery{
		StartDate:   st.StartDate,
		EndDate:     st.EndDate,
		VesselIDs:   st.VesselIDs,
		LocationIDs: st.LocationIDs,
	}
}

// RefreshVesselTSNE fetches the t-SNE projection and stores it. On error the
// previous projection is kept.
//
// A projection computed for a location set or interval that has changed
// while the call was in flight is dropped, and the current state returned.
func (s *Store) RefreshVesselTSNE(ctx context.Context) (State, error) {
	query := s.TSNEQuery()
	points, err := s.analytics.GetVesselTSNE(ctx, query)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to refresh vessel t-SNE, keeping previous result")
		return State{}, fmt.Errorf("refresh vessel t-SNE: %w", err)
	}
	return s.update("refresh_vessel_tsne", EventTSNEUpdated, func(st *State) error {
		if !queryMatches(query, st, false) {
			logging.Ctx(ctx).Debug().Msg("Dropping superseded t-SNE result")
			return errUnchanged
		}
		st.VesselTSNE = points
		return nil
	})
}

// RefreshAggregateMovements fetches the aggregated movement timeline and
// stores it. On error the previous timeline is kept; a result for a
// selection or interval that changed meanwhile is dropped.
func (s *Store) RefreshAggregateMovements(ctx context.Context) (State, error) {
	query := s.AggregateQuery()
	segments, err := s.analytics.GetAggregateVesselMovements(ctx, query)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to refresh aggregate movements, keeping previous result")
		return State{}, fmt.Errorf("refresh aggregate movements: %w", err)
	}
	return s.update("refresh_aggregate_movements", EventAggregateUpdated, func(st *State) error {
		if !queryMatches(query, st, true) {
			logging.Ctx(ctx).Debug().Msg("Dropping superseded aggregate movements result")
			return errUnchanged
		}
		st.AggregateMovements = segments
		return nil
	})
}

// queryMatches reports whether query still describes st. The t-SNE query
// always covers the whole catalog, so vessels are compared only when asked.
func queryMatches(query models.AnalyticsQuery, st *State, vessels bool) bool {
	if query.StartDate != st.StartDate || query.EndDate != st.EndDate {
		return false
	}
	if !slices.Equal(query.LocationIDs, st.LocationIDs) {
		return false
	}
	return !vessels || slices.Equal(query.VesselIDs, st.VesselIDs)
}
