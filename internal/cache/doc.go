// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The analytics client memoizes server responses in it, keyed by endpoint and
the canonical JSON of the request, so repeated dashboard refreshes with the
same selection do not recompute a t-SNE projection.

# Usage Example

	c := cache.NewLRU[[]models.TSNEPoint](128, 5*time.Minute)
	if points, ok := c.Get(key); ok {
	    return points, nil
	}
	points, err := fetch()
	if err == nil {
	    c.Add(key, points)
	}

Expired entries are dropped lazily on Get; CleanupExpired sweeps them all.
*/
package cache
