// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package store

import (
	"fmt"
	"sort"

	"github.com/tomtom215/oceanus/internal/models"
)

// AddPair confirms that vessel carried commodity at (date, location). The
// pair goes to the front of the list and both sides leave the matching
// union. The vessel and commodity must still be open in that union.
func (s *Store) AddPair(date models.Day, locationID string, vessel models.UnionVessel, commodity models.UnionCommodity) (State, error) {
	return s.update("add_pair", EventStateChanged, func(st *State) error {
		i := findUnion(st.Unions, date, locationID)
		if i < 0 {
			return fmt.Errorf("%w: %s at %s", ErrUnionNotFound, date, locationID)
		}
		union := &st.Unions[i]

		vi := indexOf(union.Vessels, vessel)
		if vi < 0 {
			return fmt.Errorf("%w: vessel %s is not open at %s on %s", ErrUnionNotFound, vessel.VesselID, locationID, date)
		}
		ci := indexOf(union.Commodities, commodity)
		if ci < 0 {
			return fmt.Errorf("%w: commodity %s is not open at %s on %s", ErrUnionNotFound, commodity.CommodityID, locationID, date)
		}
		union.Vessels = removeAt(union.Vessels, vi)
		union.Commodities = removeAt(union.Commodities, ci)

		pair := models.VesselCommodityPair{Date: date, LocationID: locationID, Vessel: vessel, Commodity: commodity}
		st.Pairs = append([]models.VesselCommodityPair{pair}, st.Pairs...)
		return nil
	})
}

// DeletePair removes pair and returns its vessel and commodity to the
// union for its date and location, creating the union if none is left.
func (s *Store) DeletePair(pair models.VesselCommodityPair) (State, error) {
	return s.update("delete_pair", EventStateChanged, func(st *State) error {
		pi := indexOf(st.Pairs, pair)
		if pi < 0 {
			return ErrPairNotFound
		}
		st.Pairs = removeAt(st.Pairs, pi)

		i := findUnion(st.Unions, pair.Date, pair.LocationID)
		if i < 0 {
			st.Unions = insertUnion(st.Unions, models.DateLocationUnion{
				Date:        pair.Date,
				LocationID:  pair.LocationID,
				Commodities: []models.UnionCommodity{},
				Vessels:     []models.UnionVessel{},
			})
			i = findUnion(st.Unions, pair.Date, pair.LocationID)
		}
		union := &st.Unions[i]
		union.Vessels = append(union.Vessels, pair.Vessel)
		union.Commodities = append(union.Commodities, pair.Commodity)
		return nil
	})
}

// ResetPairs restores the default pairs and a fresh copy of the default
// unions.
func (s *Store) ResetPairs() (State, error) {
	return s.update("reset_pairs", EventStateChanged, func(st *State) error {
		st.Pairs = append([]models.VesselCommodityPair{}, s.data.Pairs...)
		st.Unions = cloneUnions(s.data.Unions)
		return nil
	})
}

func findUnion(unions []models.DateLocationUnion, date models.Day, locationID string) int {
	for i := range unions {
		if unions[i].LocationID == locationID && unions[i].Date.Compare(date) == 0 {
			return i
		}
	}
	return -1
}

// insertUnion keeps unions ordered by date.
func insertUnion(unions []models.DateLocationUnion, u models.DateLocationUnion) []models.DateLocationUnion {
	i := sort.Search(len(unions), func(i int) bool { return unions[i].Date.After(u.Date) })
	unions = append(unions, models.DateLocationUnion{})
	copy(unions[i+1:], unions[i:])
	unions[i] = u
	return unions
}

func indexOf[T comparable](list []T, v T) int {
	for i := range list {
		if list[i] == v {
			return i
		}
	}
	return -1
}

func removeAt[T any](list []T, i int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}
