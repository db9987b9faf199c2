// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package fixtures

import (
	"sort"
	"time"

	"github.com/tomtom215/oceanus/internal/aggregate"
	"github.com/tomtom215/oceanus/internal/catalog"
	"github.com/tomtom215/oceanus/internal/models"
)

// TransportEventsFromGraph converts transponder pings into stays. A ping's
// source is the location and its target the vessel; the stay lasts Dwell
// seconds from Time.
func TransportEventsFromGraph(g *models.Graph) []models.TransportEvent {
	var events []models.TransportEvent
	for i := range g.Links {
		link := &g.Links[i]
		if link.Type != models.EventTransponderPing || link.Time.IsZero() {
			continue
		}
		end := link.Time.Add(time.Duration(link.Dwell * float64(time.Second)))
		events = append(events, models.TransportEvent{
			VesselID:   link.Target,
			LocationID: link.Source,
			StartTime:  link.Time,
			EndTime:    models.NewTimestamp(end),
		})
	}
	return events
}

// HarborMovementsFromGraph converts harbor reports into movements sorted by
// date. A report's source is the vessel and its target the location.
func HarborMovementsFromGraph(g *models.Graph, cat *catalog.Catalog) []models.MovementRecord {
	var movements []models.MovementRecord
	for i := range g.Links {
		link := &g.Links[i]
		if link.Type != models.EventHarborReport || link.Date.IsZero() {
			continue
		}
		at := models.NewTimestamp(link.Date.Time)
		movements = append(movements, models.MovementRecord{
			Date:       at,
			VesselID:   link.Source,
			LocationID: link.Target,
			Type:       models.MovementHarbor,
			VesselType: cat.VesselType(link.Source),
			MovementID: aggregate.MovementID(link.Source, link.Target, at.Time),
		})
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date.Before(movements[j].Date.Time)
	})
	return movements
}

// DistributionsFromGraph groups transaction links by delivery report. Each
// report links to one commodity and one location; when the catalog knows
// neither target the first link is taken as the commodity and the second
// as the location. The report's qty_tons is attached when known.
func DistributionsFromGraph(g *models.Graph, cat *catalog.Catalog) []models.DistributionRecord {
	type group struct {
		date    models.Timestamp
		targets []string
	}
	groups := make(map[string]*group)
	var order []string

	for i := range g.Links {
		link := &g.Links[i]
		if link.Type != models.EventTransaction || link.Source == "" {
			continue
		}
		grp, ok := groups[link.Source]
		if !ok {
			grp = &group{date: link.Date}
			groups[link.Source] = grp
			order = append(order, link.Source)
		}
		grp.targets = append(grp.targets, link.Target)
	}

	records := make([]models.DistributionRecord, 0, len(order))
	for _, documentID := range order {
		grp := groups[documentID]
		commodityID, locationID := splitTargets(grp.targets, cat)

		record := models.DistributionRecord{
			Date:        models.TimestampOfDay(grp.date.Day()),
			CommodityID: commodityID,
			LocationID:  locationID,
			DocumentID:  documentID,
		}
		if qty, ok := cat.DocumentQty(documentID); ok {
			record.QtyTons = &qty
		}
		records = append(records, record)
	}
	return records
}

func splitTargets(targets []string, cat *catalog.Catalog) (commodityID, locationID string) {
	for _, target := range targets {
		node, ok := cat.Lookup(target)
		switch {
		case ok && node.IsA(models.EntityCommodity) && commodityID == "":
			commodityID = target
		case ok && node.IsA(models.EntityLocation) && locationID == "":
			locationID = target
		}
	}
	if commodityID == "" && len(targets) > 0 {
		commodityID = targets[0]
	}
	if locationID == "" && len(targets) > 1 {
		locationID = targets[1]
	}
	return commodityID, locationID
}
