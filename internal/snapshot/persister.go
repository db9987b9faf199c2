// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package snapshot

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/store"
)

// Source is satisfied by *store.Store.
type Source interface {
	Subscribe(l store.Listener)
	State() store.State
}

// Persister writes a snapshot after state changes. It subscribes on
// construction, so create it before the store takes commands.
type Persister struct {
	db         *DB
	src        Source
	gcInterval time.Duration
	dirty      chan struct{}
}

// NewPersister creates a persister for src. A non-positive gcInterval
// disables value log GC.
func NewPersister(db *DB, src Source, gcInterval time.Duration) *Persister {
	p := &Persister{
		db:         db,
		src:        src,
		gcInterval: gcInterval,
		dirty:      make(chan struct{}, 1),
	}
	src.Subscribe(func(store.Event) {
		select {
		case p.dirty <- struct{}{}:
		default:
		}
	})
	return p
}

// Serve implements suture.Service. Before returning on shutdown it writes
// any change that arrived since the last snapshot.
func (p *Persister) Serve(ctx context.Context) error {
	logger := logging.WithComponent("snapshot")

	var gc <-chan time.Time
	if p.gcInterval > 0 {
		ticker := time.NewTicker(p.gcInterval)
		defer ticker.Stop()
		gc = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			select {
			case <-p.dirty:
				p.save(&logger)
			default:
			}
			return ctx.Err()
		case <-p.dirty:
			p.save(&logger)
		case <-gc:
			if err := p.db.RunGC(); err != nil {
				logger.Warn().Err(err).Msg("Snapshot value log GC failed")
			}
		}
	}
}

func (p *Persister) save(logger *zerolog.Logger) {
	st := p.src.State()
	if err := p.db.Save(st); err != nil {
		// The next change retries with a newer state.
		logger.Error().Err(err).Uint64("version", st.Version).Msg("Failed to write state snapshot")
		return
	}
	logger.Debug().Uint64("version", st.Version).Msg("State snapshot written")
}

func (p *Persister) String() string {
	return "state-snapshot"
}
