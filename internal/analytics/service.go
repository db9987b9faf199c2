// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package analytics

import (
	"context"
	"errors"

	"github.com/tomtom215/oceanus/internal/aggregate"
	"github.com/tomtom215/oceanus/internal/models"
)

// Endpoint names on the analytics server.
const (
	EndpointVesselTSNE         = "get_vessel_tsne"
	EndpointAggregateMovements = "get_aggregate_vessel_movements"
)

// ErrTSNEUnavailable is returned when no t-SNE backend is configured.
var ErrTSNEUnavailable = errors.New("t-SNE projection requires the analytics server")

// Service is the remote computation boundary.
type Service interface {
	GetVesselTSNE(ctx context.Context, query models.AnalyticsQuery) ([]models.TSNEPoint, error)
	GetAggregateVesselMovements(ctx context.Context, query models.AnalyticsQuery) ([]models.AggregateSegment, error)
}

// Local computes what it can in-process.
type Local struct {
	events []models.TransportEvent
}

// NewLocal returns a Local over the given stays. The slice must not be
// modified afterwards.
func NewLocal(events []models.TransportEvent) *Local {
	return &Local{events: events}
}

// GetVesselTSNE always fails with ErrTSNEUnavailable.
func (l *Local) GetVesselTSNE(_ context.Context, _ models.AnalyticsQuery) ([]models.TSNEPoint, error) {
	return nil, ErrTSNEUnavailable
}

// GetAggregateVesselMovements aggregates the stays in-process. It stops
// with ctx.Err() when ctx ends mid-computation.
func (l *Local) GetAggregateVesselMovements(ctx context.Context, query models.AnalyticsQuery) ([]models.AggregateSegment, error) {
	return aggregate.AggregateMovementsContext(ctx, l.events, query)
}
