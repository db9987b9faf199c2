// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package catalog indexes the vessels, locations, commodities and documents
// of the knowledge graph. A Catalog is built once at startup and is
// read-only afterwards, so it is safe for concurrent use.
package catalog

import (
	"github.com/tomtom215/oceanus/internal/models"
)

// UnknownName is returned by Name for ids not in the catalog.
const UnknownName = "unknown"

// Entry is one catalog entity.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Catalog holds the entity collections in graph order.
type Catalog struct {
	vessels     []models.Node
	locations   []models.Node
	commodities []models.Node
	documents   []models.Node

	byID map[string]*models.Node
}

// New builds a catalog from graph nodes. A node belongs to a collection
// when its type contains the collection's taxonomy prefix. Nodes are
// copied; later changes to the input do not affect the catalog.
func New(nodes []models.Node) *Catalog {
	c := &Catalog{byID: make(map[string]*models.Node, len(nodes))}

	for i := range nodes {
		n := nodes[i]
		switch {
		case n.IsA(models.EntityVessel):
			c.vessels = append(c.vessels, n)
		case n.IsA(models.EntityLocation):
			c.locations = append(c.locations, n)
		case n.IsA(models.EntityCommodity):
			c.commodities = append(c.commodities, n)
		case n.IsA(models.EntityDocument):
			c.documents = append(c.documents, n)
		}
	}

	for _, coll := range [][]models.Node{c.vessels, c.locations, c.commodities, c.documents} {
		for i := range coll {
			if _, dup := c.byID[coll[i].ID]; !dup {
				c.byID[coll[i].ID] = &coll[i]
			}
		}
	}
	return c
}

// Vessels returns the vessel entries in graph order.
func (c *Catalog) Vessels() []Entry { return entries(c.vessels) }

// Locations returns the location entries in graph order.
func (c *Catalog) Locations() []Entry { return entries(c.locations) }

// Commodities returns the commodity entries in graph order.
func (c *Catalog) Commodities() []Entry { return entries(c.commodities) }

// VesselIDs returns the distinct vessel ids in first-seen order.
func (c *Catalog) VesselIDs() []string { return distinct(c.vessels, nodeID) }

// LocationIDs returns the distinct location ids in first-seen order.
func (c *Catalog) LocationIDs() []string { return distinct(c.locations, nodeID) }

// CommodityIDs returns the distinct commodity ids in first-seen order.
func (c *Catalog) CommodityIDs() []string { return distinct(c.commodities, nodeID) }

// VesselTypes returns the distinct vessel type strings in first-seen order.
// This is the domain of the vessel color scale.
func (c *Catalog) VesselTypes() []string { return distinct(c.vessels, nodeType) }

// Lookup returns the node with the given id.
func (c *Catalog) Lookup(id string) (models.Node, bool) {
	n, ok := c.byID[id]
	if !ok {
		return models.Node{}, false
	}
	return *n, true
}

// Name returns the display name of id, UnknownName when the id is not in
// the catalog, or the id itself when the entity has no name.
func (c *Catalog) Name(id string) string {
	n, ok := c.byID[id]
	if !ok {
		return UnknownName
	}
	if n.Name == "" {
		return n.ID
	}
	return n.Name
}

// Names returns id → display name for every vessel, location and commodity.
func (c *Catalog) Names() map[string]string {
	out := make(map[string]string, len(c.vessels)+len(c.locations)+len(c.commodities))
	for _, coll := range [][]models.Node{c.vessels, c.locations, c.commodities} {
		for i := range coll {
			if _, ok := out[coll[i].ID]; !ok {
				out[coll[i].ID] = c.Name(coll[i].ID)
			}
		}
	}
	return out
}

// VesselType returns the type of a vessel, or "" when unknown.
func (c *Catalog) VesselType(id string) string {
	if n, ok := c.byID[id]; ok && n.IsA(models.EntityVessel) {
		return n.Type
	}
	return ""
}

// DocumentQty returns the qty_tons of a delivery report.
func (c *Catalog) DocumentQty(id string) (float64, bool) {
	n, ok := c.byID[id]
	if !ok || n.QtyTons == nil {
		return 0, false
	}
	return *n.QtyTons, true
}

// FishingLocations maps each fish commodity id to the region ids whose
// fish_species_present lists the commodity's name. Commodities found in no
// region map to an empty slice.
func (c *Catalog) FishingLocations() map[string][]string {
	var regions []*models.Node
	for i := range c.locations {
		if c.locations[i].Type == models.EntityLocationRegion {
			regions = append(regions, &c.locations[i])
		}
	}

	out := make(map[string][]string)
	for i := range c.commodities {
		commodity := &c.commodities[i]
		if commodity.Type != models.EntityCommodityFish {
			continue
		}
		ids := []string{}
		for _, region := range regions {
			if containsString(region.FishSpeciesPresent, commodity.Name) {
				ids = append(ids, region.ID)
			}
		}
		out[commodity.ID] = ids
	}
	return out
}

func entries(nodes []models.Node) []Entry {
	out := make([]Entry, len(nodes))
	for i := range nodes {
		out[i] = Entry{ID: nodes[i].ID, Name: nodes[i].Name, Type: nodes[i].Type}
	}
	return out
}

func nodeID(n *models.Node) string   { return n.ID }
func nodeType(n *models.Node) string { return n.Type }

func distinct(nodes []models.Node, field func(*models.Node) string) []string {
	seen := make(map[string]struct{}, len(nodes))
	out := make([]string, 0, len(nodes))
	for i := range nodes {
		v := field(&nodes[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
