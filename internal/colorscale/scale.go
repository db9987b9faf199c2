// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package colorscale assigns stable categorical colors to entity ids.
//
// A Scale maps the i-th distinct id of its domain to the i-th palette color,
// cycling when the domain is longer than the palette. The mapping depends
// only on the domain order and the palette, so the same catalog always
// yields the same colors. Ids outside the domain get UnknownColor rather
// than being appended to the domain on first use.
package colorscale

import "fmt"

// UnknownColor is returned for ids outside a scale's domain. It is not a
// member of any palette.
const UnknownColor = "#cccccc"

// Category selects the palette used for an entity kind.
type Category string

// Categories with a palette.
const (
	// CategoryVessel colors vessels by vessel type; its domain is the list
	// of distinct vessel types.
	CategoryVessel    Category = "vessel"
	CategoryLocation  Category = "location"
	CategoryCommodity Category = "commodity"
)

// ParseCategory validates a category name from a request path.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryVessel, CategoryLocation, CategoryCommodity:
		return c, nil
	default:
		return "", fmt.Errorf("unknown color category %q", s)
	}
}

// PaletteFor returns a copy of the palette used for category.
func PaletteFor(category Category) []string {
	switch category {
	case CategoryVessel:
		return concat(Category10)
	case CategoryLocation:
		return concat(Set3, Tableau10, Pastel1)
	case CategoryCommodity:
		return concat(Set1)
	default:
		return nil
	}
}

// Scale is an immutable ordinal color scale.
type Scale struct {
	domain  []string
	palette []string
	index   map[string]int
}

// New builds a scale over domain. Repeated ids keep their first position.
// An empty palette maps every id to UnknownColor.
func New(domain, palette []string) *Scale {
	s := &Scale{
		domain:  make([]string, 0, len(domain)),
		palette: append([]string(nil), palette...),
		index:   make(map[string]int, len(domain)),
	}
	for _, id := range domain {
		if _, seen := s.index[id]; seen {
			continue
		}
		s.index[id] = len(s.domain)
		s.domain = append(s.domain, id)
	}
	return s
}

// For builds the scale for category over domain.
func For(category Category, domain []string) *Scale {
	return New(domain, PaletteFor(category))
}

// Lookup returns the color for id and whether id is in the domain.
func (s *Scale) Lookup(id string) (string, bool) {
	i, ok := s.index[id]
	if !ok || len(s.palette) == 0 {
		return UnknownColor, false
	}
	return s.palette[i%len(s.palette)], true
}

// Color returns the color for id, or UnknownColor.
func (s *Scale) Color(id string) string {
	c, _ := s.Lookup(id)
	return c
}

// Domain returns the distinct ids in order.
func (s *Scale) Domain() []string {
	return append([]string(nil), s.domain...)
}

// Map returns id -> color for the whole domain.
func (s *Scale) Map() map[string]string {
	out := make(map[string]string, len(s.domain))
	for _, id := range s.domain {
		out[id] = s.Color(id)
	}
	return out
}
