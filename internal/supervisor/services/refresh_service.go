// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/store"
)

// RemoteRefresher is satisfied by *store.Store.
type RemoteRefresher interface {
	Subscribe(l store.Listener)
	RefreshVesselTSNE(ctx context.Context) (store.State, error)
	RefreshAggregateMovements(ctx context.Context) (store.State, error)
}

// refreshCommands are the mutations that change an analytics query.
var refreshCommands = map[string]bool{
	"set_selection":     true,
	"set_date_interval": true,
	"initialize":        true,
	"restore":           true,
}

// RemoteRefreshService recomputes the t-SNE projection and the aggregated
// timeline after the queries they depend on change. Bursts of changes are
// coalesced: a refresh starts once no change has arrived for debounce.
type RemoteRefreshService struct {
	src      RemoteRefresher
	debounce time.Duration
	trigger  chan struct{}
}

// NewRemoteRefreshService subscribes to src. Subscribe before the store
// takes commands so that no change is missed.
func NewRemoteRefreshService(src RemoteRefresher, debounce time.Duration) *RemoteRefreshService {
	s := &RemoteRefreshService{
		src:      src,
		debounce: debounce,
		trigger:  make(chan struct{}, 1),
	}
	src.Subscribe(s.onEvent)
	return s
}

func (s *RemoteRefreshService) onEvent(e store.Event) {
	if e.Type != store.EventStateChanged || !refreshCommands[e.Command] {
		return
	}
	// A pending trigger already covers this change.
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Serve implements suture.Service.
func (s *RemoteRefreshService) Serve(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.trigger:
			timer.Reset(s.debounce)
		case <-timer.C:
			s.refresh(ctx)
		}
	}
}

// refresh runs both refreshes concurrently. Failures are logged by the
// store and keep the previous results, so they never stop the service.
func (s *RemoteRefreshService) refresh(ctx context.Context) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := logging.Ctx(ctx)
	start := time.Now()

	var g errgroup.Group
	g.Go(func() error {
		_, err := s.src.RefreshVesselTSNE(ctx)
		return err
	})
	g.Go(func() error {
		_, err := s.src.RefreshAggregateMovements(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("Background refresh incomplete")
		return
	}
	logger.Debug().Dur("duration", time.Since(start)).Msg("Background refresh complete")
}

func (s *RemoteRefreshService) String() string {
	return "remote-refresh"
}
