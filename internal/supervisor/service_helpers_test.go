// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// testService counts its runs. It fails the first fails runs, then blocks
// until canceled.
type testService struct {
	name   string
	fails  int32
	starts atomic.Int32

	mu      sync.Mutex
	running chan struct{}
}

func newTestService(name string, fails int32) *testService {
	return &testService{name: name, fails: fails, running: make(chan struct{})}
}

func (s *testService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.fails {
		return errors.New("simulated failure")
	}
	s.mu.Lock()
	select {
	case <-s.running:
	default:
		close(s.running)
	}
	s.mu.Unlock()

	<-ctx.Done()
	return ctx.Err()
}

func (s *testService) String() string { return s.name }
