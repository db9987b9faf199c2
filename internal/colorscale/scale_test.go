// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package colorscale

import (
	"fmt"
	"testing"
)

func TestScaleDeterministic(t *testing.T) {
	t.Parallel()

	domain := []string{"c1", "c2", "c3"}
	a := For(CategoryCommodity, domain)
	b := For(CategoryCommodity, domain)

	for _, id := range domain {
		if a.Color(id) != b.Color(id) {
			t.Errorf("Color(%s) differs between identical scales: %s vs %s", id, a.Color(id), b.Color(id))
		}
	}
	if got := a.Color("c2"); got != Set1[1] {
		t.Errorf("Color(c2) = %s, want %s", got, Set1[1])
	}
}

func TestScaleCycles(t *testing.T) {
	t.Parallel()

	domain := make([]string, len(Category10)+3)
	for i := range domain {
		domain[i] = fmt.Sprintf("type-%d", i)
	}
	s := For(CategoryVessel, domain)

	for i, id := range domain {
		want := Category10[i%len(Category10)]
		if got := s.Color(id); got != want {
			t.Errorf("Color(%s) = %s, want %s", id, got, want)
		}
	}
}

func TestLocationPaletteConcatenation(t *testing.T) {
	t.Parallel()

	p := PaletteFor(CategoryLocation)
	if len(p) != len(Set3)+len(Tableau10)+len(Pastel1) {
		t.Fatalf("len(location palette) = %d, want %d", len(p), len(Set3)+len(Tableau10)+len(Pastel1))
	}
	if p[len(Set3)] != Tableau10[0] {
		t.Errorf("palette[%d] = %s, want first Tableau10 color %s", len(Set3), p[len(Set3)], Tableau10[0])
	}

	// Mutating the returned palette must not leak into later scales.
	p[0] = "#000000"
	if PaletteFor(CategoryLocation)[0] != Set3[0] {
		t.Error("PaletteFor returned a shared slice")
	}
}

func TestUnknownID(t *testing.T) {
	t.Parallel()

	s := For(CategoryCommodity, []string{"c1"})
	color, ok := s.Lookup("nope")
	if ok || color != UnknownColor {
		t.Errorf("Lookup(nope) = %s, %v; want %s, false", color, ok, UnknownColor)
	}
	// The miss does not extend the domain.
	if len(s.Domain()) != 1 {
		t.Errorf("Domain() = %v, want [c1]", s.Domain())
	}

	empty := New([]string{"a"}, nil)
	if got := empty.Color("a"); got != UnknownColor {
		t.Errorf("Color with empty palette = %s, want %s", got, UnknownColor)
	}
}

func TestDuplicateDomainEntries(t *testing.T) {
	t.Parallel()

	s := For(CategoryLocation, []string{"L1", "L2", "L1", "L3"})
	if got := s.Color("L3"); got != Set3[2] {
		t.Errorf("Color(L3) = %s, want %s", got, Set3[2])
	}
	m := s.Map()
	if len(m) != 3 {
		t.Errorf("len(Map()) = %d, want 3", len(m))
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"vessel", "location", "commodity"} {
		if _, err := ParseCategory(name); err != nil {
			t.Errorf("ParseCategory(%q) error = %v", name, err)
		}
	}
	if _, err := ParseCategory("planet"); err == nil {
		t.Error("ParseCategory(planet) error = nil, want error")
	}
}
