// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/oceanus/internal/analytics"
	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/fixtures"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
	"github.com/tomtom215/oceanus/internal/models"
)

// Event types delivered to listeners.
const (
	EventStateChanged     = "state_changed"
	EventTSNEUpdated      = "tsne_updated"
	EventAggregateUpdated = "aggregate_updated"
)

// Event describes a change. Command names the mutation that caused it.
type Event struct {
	Type    string    `json:"type"`
	Command string    `json:"command"`
	Version uint64    `json:"version"`
	At      time.Time `json:"at"`
}

// Listener receives change events. It must not block.
type Listener func(Event)

// Options configures the initial state.
type Options struct {
	StartDate     models.Day
	EndDate       models.Day
	InitStartDate models.Day
	InitEndDate   models.Day
	FocusVesselID string

	// MaxIntervalDays bounds SetDateInterval and Restore. Zero means
	// DefaultMaxIntervalDays.
	MaxIntervalDays int
}

// DefaultMaxIntervalDays is roughly ten years.
const DefaultMaxIntervalDays = 3660

// OptionsFromConfig parses the dashboard section of the configuration.
func OptionsFromConfig(cfg *config.DashboardConfig) (Options, error) {
	var opts Options
	dates := []struct {
		field string
		value string
		dst   *models.Day
	}{
		{"start_date", cfg.StartDate, &opts.StartDate},
		{"end_date", cfg.EndDate, &opts.EndDate},
		{"init_start_date", cfg.InitStartDate, &opts.InitStartDate},
		{"init_end_date", cfg.InitEndDate, &opts.InitEndDate},
	}
	for _, d := range dates {
		day, err := models.ParseDay(d.value)
		if err != nil {
			return Options{}, fmt.Errorf("dashboard %s: %w", d.field, err)
		}
		*d.dst = day
	}
	opts.FocusVesselID = cfg.FocusVesselID
	opts.MaxIntervalDays = cfg.MaxIntervalDays
	return opts, nil
}

// Store is the dashboard state over one loaded dataset.
type Store struct {
	data      *fixtures.Dataset
	analytics analytics.Service
	opts      Options

	mu    sync.RWMutex
	state State

	viewsMu sync.Mutex
	views   *Views

	listenersMu sync.RWMutex
	listeners   []Listener
}

// New creates a store with every catalog id selected and the configured
// interval and focus vessel. Pairs and unions start from the dataset's
// defaults.
func New(data *fixtures.Dataset, svc analytics.Service, opts Options) *Store {
	s := &Store{
		data:      data,
		analytics: svc,
		opts:      opts,
	}
	s.state = State{
		Version:       1,
		VesselIDs:     data.Catalog.VesselIDs(),
		LocationIDs:   data.Catalog.LocationIDs(),
		CommodityIDs:  data.Catalog.CommodityIDs(),
		StartDate:     opts.StartDate,
		EndDate:       opts.EndDate,
		FocusVesselID: opts.FocusVesselID,
		Pairs:         append([]models.VesselCommodityPair{}, data.Pairs...),
		Unions:        cloneUnions(data.Unions),
		UpdatedAt:     time.Now().UTC(),
	}
	metrics.StoreVersion.Set(float64(s.state.Version))
	return s
}

// Data returns the reference dataset. It must not be modified.
func (s *Store) Data() *fixtures.Dataset {
	return s.data
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version returns the current state version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Version
}

// Subscribe registers l for change events.
func (s *Store) Subscribe(l Listener) {
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, l)
	s.listenersMu.Unlock()
}

func (s *Store) notify(event Event) {
	s.listenersMu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

// errUnchanged tells update to keep the current state without failing.
var errUnchanged = errors.New("state unchanged")

// update applies fn to a copy of the state and swaps it in when fn
// succeeds. The event is published after the lock is released. When fn
// returns errUnchanged the current state is returned as is.
func (s *Store) update(command, eventType string, fn func(*State) error) (State, error) {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); errors.Is(err, errUnchanged) {
		out := s.state.Clone()
		s.mu.Unlock()
		logging.Debug().Str("command", command).Uint64("version", out.Version).Msg("Store command left state unchanged")
		return out, nil
	} else if err != nil {
		version := s.state.Version
		s.mu.Unlock()
		metrics.RecordMutation(command, version, err)
		logging.Debug().Str("command", command).Err(err).Msg("Store command rejected")
		return State{}, err
	}
	next.Version = s.state.Version + 1
	next.UpdatedAt = time.Now().UTC()
	s.state = next
	out := next.Clone()
	s.mu.Unlock()

	metrics.RecordMutation(command, out.Version, nil)
	logging.Debug().Str("command", command).Uint64("version", out.Version).Msg("Store state updated")
	s.notify(Event{Type: eventType, Command: command, Version: out.Version, At: out.UpdatedAt})
	return out, nil
}

// SetSelection replaces the selected ids. A nil list leaves that dimension
// unchanged; an empty non-nil list deselects everything.
func (s *Store) SetSelection(vesselIDs, locationIDs, commodityIDs []string) (State, error) {
	return s.update("set_selection", EventStateChanged, func(st *State) error {
		if vesselIDs != nil {
			st.VesselIDs = distinctIDs(vesselIDs)
		}
		if locationIDs != nil {
			st.LocationIDs = distinctIDs(locationIDs)
		}
		if commodityIDs != nil {
			st.CommodityIDs = distinctIDs(commodityIDs)
		}
		return nil
	})
}

// SetDateInterval sets the inclusive date interval.
func (s *Store) SetDateInterval(start, end models.Day) (State, error) {
	return s.update("set_date_interval", EventStateChanged, func(st *State) error {
		if start.IsZero() || end.IsZero() {
			return fmt.Errorf("%w: both dates are required", ErrInvalidInterval)
		}
		if err := s.checkInterval(start, end); err != nil {
			return err
		}
		st.StartDate, st.EndDate = start, end
		return nil
	})
}

// SetFocusVessel sets the vessel highlighted across views.
func (s *Store) SetFocusVessel(vesselID string) (State, error) {
	return s.update("set_focus_vessel", EventStateChanged, func(st *State) error {
		st.FocusVesselID = vesselID
		return nil
	})
}

// Initialize selects every catalog id and applies the initialization
// interval.
func (s *Store) Initialize() (State, error) {
	return s.update("initialize", EventStateChanged, func(st *State) error {
		st.VesselIDs = s.data.Catalog.VesselIDs()
		st.LocationIDs = s.data.Catalog.LocationIDs()
		st.CommodityIDs = s.data.Catalog.CommodityIDs()
		st.StartDate, st.EndDate = s.opts.InitStartDate, s.opts.InitEndDate
		return nil
	})
}

// Restore replaces the state with saved, typically a snapshot from a
// previous run. The interval must be valid; the version continues from the
// current one so listeners see a newer state.
func (s *Store) Restore(saved State) (State, error) {
	return s.update("restore", EventStateChanged, func(st *State) error {
		if saved.StartDate.IsZero() || saved.EndDate.IsZero() {
			return fmt.Errorf("%w: saved interval %s..%s", ErrInvalidInterval, saved.StartDate, saved.EndDate)
		}
		if err := s.checkInterval(saved.StartDate, saved.EndDate); err != nil {
			return fmt.Errorf("saved state: %w", err)
		}
		version := st.Version
		*st = saved.Clone()
		st.Version = version
		return nil
	})
}

// checkInterval rejects inverted intervals and intervals longer than
// MaxIntervalDays. Views such as the time series allocate per day.
func (s *Store) checkInterval(start, end models.Day) error {
	if end.Before(start) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidInterval, start, end)
	}
	limit := s.opts.MaxIntervalDays
	if limit <= 0 {
		limit = DefaultMaxIntervalDays
	}
	if days := start.DaysUntil(end) + 1; days > limit {
		return fmt.Errorf("%w: %s..%s spans %d days, limit is %d", ErrIntervalTooLong, start, end, days, limit)
	}
	return nil
}

func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
