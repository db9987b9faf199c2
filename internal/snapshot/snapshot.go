// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package snapshot

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
	"github.com/tomtom215/oceanus/internal/store"
)

// schemaVersion is bumped when the stored layout changes. Snapshots with a
// different schema are ignored.
const schemaVersion = 1

var stateKey = []byte("state:current")

// ErrClosed is returned by operations on a closed DB.
var ErrClosed = errors.New("snapshot store is closed")

// record is the stored value.
type record struct {
	Schema  int         `json:"schema"`
	SavedAt time.Time   `json:"saved_at"`
	State   store.State `json:"state"`
}

// DB stores dashboard state snapshots.
type DB struct {
	db *badger.DB

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the snapshot database at cfg.Path.
func Open(cfg *config.PersistConfig) (*DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("snapshot path is required")
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	// One small key; the defaults are sized for large databases.
	opts.MemTableSize = 8 << 20
	opts.ValueLogFileSize = 16 << 20
	opts.NumCompactors = 2
	opts.BlockCacheSize = 8 << 20
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB at %s: %w", cfg.Path, err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("State snapshot store opened")
	return &DB{db: db}, nil
}

// Save replaces the stored snapshot with st.
func (d *DB) Save(st store.State) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	start := time.Now()
	data, err := json.Marshal(record{Schema: schemaVersion, SavedAt: start.UTC(), State: st})
	if err != nil {
		metrics.RecordSnapshotWrite(st.Version, 0, err)
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stateKey, data)
	})
	metrics.RecordSnapshotWrite(st.Version, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. ok is false when there is none, or
// when it was written with another schema.
func (d *DB) Load() (st store.State, ok bool, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return store.State{}, false, ErrClosed
	}

	var rec record
	err = d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.State{}, false, nil
	}
	if err != nil {
		return store.State{}, false, fmt.Errorf("read snapshot: %w", err)
	}
	if rec.Schema != schemaVersion {
		logging.Warn().
			Int("schema", rec.Schema).
			Int("want", schemaVersion).
			Msg("Ignoring state snapshot with unknown schema")
		return store.State{}, false, nil
	}
	return rec.State, true, nil
}

// RunGC reclaims value log space. It returns nil when there was nothing to
// rewrite.
func (d *DB) RunGC() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	for {
		err := d.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("value log GC: %w", err)
		}
	}
}

// Close closes the database. Further calls return ErrClosed.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	return d.db.Close()
}
