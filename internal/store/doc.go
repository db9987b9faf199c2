// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package store holds the dashboard state and serves its derived views.

A Store pairs the immutable reference data loaded at startup with the
mutable dashboard State: the selected vessel, location and commodity ids,
the date interval, the focus vessel, the confirmed vessel/commodity pairs,
the unions still open for pairing, and the last analytics results.

Concurrency:

State is never mutated in place. Each command copies the current State,
applies its change, bumps Version and swaps the copy in under a write lock.
Readers take a clone under a read lock, so an aggregation pass always sees
one consistent snapshot. Views are memoized per Version.

Analytics calls (RefreshVesselTSNE, RefreshAggregateMovements) run without
holding the lock. On failure they log, leave the previous result in place,
and return the error.

Listeners registered with Subscribe are called after every successful
change, outside the lock, in registration order.
*/
package store
