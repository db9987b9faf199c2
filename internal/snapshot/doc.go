// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package snapshot keeps the dashboard state on disk in BadgerDB so that
confirmed pairs, the selection and the last analytics results survive a
restart.

Only the latest state is kept, under a single key. Persister is a
suture.Service that writes a snapshot after every state change, coalescing
bursts so that at most one write is in flight, and runs value log GC
periodically.

	db, err := snapshot.Open(&cfg.Persist)
	saved, ok, err := db.Load()
	if ok {
	    st.Restore(saved)
	}
	tree.AddMessagingService(snapshot.NewPersister(db, st, cfg.Persist.GCInterval))
*/
package snapshot
