// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package models

import (
	"strings"

	"github.com/goccy/go-json"
)

// Entity type prefixes. Node types are dotted taxonomies, matched by prefix
// or substring so that e.g. "Entity.Vessel.Ferry.Cargo" is a vessel.
const (
	EntityVessel    = "Entity.Vessel"
	EntityLocation  = "Entity.Location"
	EntityCommodity = "Entity.Commodity"
	EntityDocument  = "Entity.Document"
)

// Concrete entity types present in the knowledge graph.
const (
	EntityDeliveryReport = "Entity.Document.DeliveryReport"

	EntityFishingVessel  = "Entity.Vessel.FishingVessel"
	EntityCargoVessel    = "Entity.Vessel.CargoVessel"
	EntityTourVessel     = "Entity.Vessel.Tour"
	EntityOtherVessel    = "Entity.Vessel.Other"
	EntityResearchVessel = "Entity.Vessel.Research"
	EntityPassengerFerry = "Entity.Vessel.Ferry.Passenger"
	EntityCargoFerry     = "Entity.Vessel.Ferry.Cargo"
	EntityLocationPoint  = "Entity.Location.Point"
	EntityLocationCity   = "Entity.Location.City"
	EntityLocationRegion = "Entity.Location.Region"
	EntityCommodityFish  = "Entity.Commodity.Fish"
)

// Event (link) types.
const (
	EventTransponderPing = "Event.TransportEvent.TransponderPing"
	EventTransaction     = "Event.Transaction"
	EventHarborReport    = "Event.HarborReport"
)

// Graph is the knowledge graph fixture: entities as nodes, events as links.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is one entity. The graph spells the display name "Name" for vessels
// and locations and "name" for commodities; both land in Name. Every other
// attribute is kept in Properties and written back out unchanged.
type Node struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Name               string   `json:"name"`
	FishSpeciesPresent []string `json:"fish_species_present,omitempty"`
	QtyTons            *float64 `json:"qty_tons,omitempty"`

	Properties map[string]json.RawMessage `json:"-"`
}

// IsA reports whether the node's type falls under the given taxonomy prefix.
func (n *Node) IsA(typePrefix string) bool {
	return strings.Contains(n.Type, typePrefix)
}

// UnmarshalJSON decodes a node, keeping unknown attributes.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = Node{Properties: make(map[string]json.RawMessage, len(raw))}
	for key, value := range raw {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(value, &n.ID)
		case "type":
			err = json.Unmarshal(value, &n.Type)
		case "name", "Name":
			var name string
			if err = json.Unmarshal(value, &name); err == nil && n.Name == "" {
				n.Name = name
			}
		case "fish_species_present":
			err = json.Unmarshal(value, &n.FishSpeciesPresent)
		case "qty_tons":
			var qty float64
			if err = json.Unmarshal(value, &qty); err == nil {
				n.QtyTons = &qty
			}
		default:
			n.Properties[key] = value
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes the known fields plus every preserved property.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(n.Properties)+5)
	for key, value := range n.Properties {
		out[key] = value
	}
	out["id"] = n.ID
	out["type"] = n.Type
	out["name"] = n.Name
	if len(n.FishSpeciesPresent) > 0 {
		out["fish_species_present"] = n.FishSpeciesPresent
	}
	if n.QtyTons != nil {
		out["qty_tons"] = *n.QtyTons
	}
	return json.Marshal(out)
}

// Link is one event between two entities.
//
//   - TransponderPing: source is the location, target the vessel; Time and
//     Dwell (seconds) give the stay.
//   - HarborReport: source is the vessel, target the location; Date is set.
//   - Transaction: source is a delivery report; the document has one link to
//     its commodity and one to the location it was delivered to.
type Link struct {
	Type   string    `json:"type"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Time   Timestamp `json:"time,omitempty"`
	Date   Timestamp `json:"date,omitempty"`
	Dwell  float64   `json:"dwell,omitempty"`
}
