// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package snapshot

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/models"
	"github.com/tomtom215/oceanus/internal/store"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(&config.PersistConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleState(version uint64) store.State {
	return store.State{
		Version:       version,
		VesselIDs:     []string{"v1", "v2"},
		LocationIDs:   []string{"L1"},
		CommodityIDs:  []string{},
		StartDate:     models.MustParseDay("2035-02-01"),
		EndDate:       models.MustParseDay("2035-05-17"),
		FocusVesselID: "v1",
		Pairs: []models.VesselCommodityPair{{
			Date:       models.MustParseDay("2035-03-01"),
			LocationID: "L1",
			Vessel:     models.UnionVessel{MovementID: "m1", VesselID: "v1"},
			Commodity:  models.UnionCommodity{DocumentID: "d1", CommodityID: "c1", QtyTons: 2.5},
		}},
		Unions:     []models.DateLocationUnion{},
		VesselTSNE: []models.TSNEPoint{{VesselID: "v1", X: 0.5, Y: -1}},
		UpdatedAt:  time.Date(2035, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	if _, ok, err := db.Load(); err != nil || ok {
		t.Fatalf("Load() on empty db = ok %v, err %v; want no snapshot", ok, err)
	}

	want := sampleState(7)
	if err := db.Save(sampleState(6)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := db.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v\nwant %+v", got, want)
	}
}

func TestReopenKeepsSnapshot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	db, err := Open(&config.PersistConfig{Path: dir, SyncWrites: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Save(sampleState(3)); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = Open(&config.PersistConfig{Path: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	got, ok, err := db.Load()
	if err != nil || !ok || got.Version != 3 || len(got.Pairs) != 1 {
		t.Errorf("Load() after reopen = %+v, ok %v, err %v", got, ok, err)
	}
}

func TestLoad_IgnoresOtherSchema(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stateKey, []byte(`{"schema":99,"state":{"version":4}}`))
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := db.Load(); err != nil || ok {
		t.Errorf("Load() = ok %v, err %v; want schema mismatch ignored", ok, err)
	}
}

func TestClosed(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	if err := db.Save(sampleState(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Save() after Close = %v, want ErrClosed", err)
	}
	if _, _, err := db.Load(); !errors.Is(err, ErrClosed) {
		t.Errorf("Load() after Close = %v, want ErrClosed", err)
	}
	if err := db.RunGC(); !errors.Is(err, ErrClosed) {
		t.Errorf("RunGC() after Close = %v, want ErrClosed", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()
	if _, err := Open(&config.PersistConfig{}); err == nil {
		t.Error("Open() with empty path succeeded")
	}
}

type fakeSource struct {
	mu       sync.Mutex
	state    store.State
	listener store.Listener
}

func (f *fakeSource) Subscribe(l store.Listener) { f.listener = l }

func (f *fakeSource) State() store.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSource) set(st store.State) {
	f.mu.Lock()
	f.state = st
	f.mu.Unlock()
	f.listener(store.Event{Type: store.EventStateChanged, Version: st.Version})
}

func waitForVersion(t *testing.T, db *DB, version uint64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if st, ok, _ := db.Load(); ok && st.Version == version {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("snapshot version %d never written", version)
}

func TestPersister(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)
	src := &fakeSource{}
	p := NewPersister(db, src, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Serve(ctx) }()

	src.set(sampleState(2))
	waitForVersion(t, db, 2)

	for v := uint64(3); v <= 10; v++ {
		src.set(sampleState(v))
	}
	waitForVersion(t, db, 10)

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestPersister_FlushesOnShutdown(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)
	src := &fakeSource{}
	p := NewPersister(db, src, 0)

	// A change made before Serve runs is still pending at shutdown.
	src.set(sampleState(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}

	st, ok, err := db.Load()
	if err != nil || !ok || st.Version != 5 {
		t.Errorf("snapshot after shutdown = version %d, ok %v, err %v; want 5", st.Version, ok, err)
	}
}
