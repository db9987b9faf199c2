// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import "github.com/tomtom215/oceanus/internal/models"

// SelectionRequest replaces the selected ids. An omitted list leaves that
// selection unchanged; an empty list clears it.
type SelectionRequest struct {
	VesselIDs    []string `json:"vessel_ids" validate:"omitempty,max=10000,dive,required,max=256"`
	LocationIDs  []string `json:"location_ids" validate:"omitempty,max=10000,dive,required,max=256"`
	CommodityIDs []string `json:"commodity_ids" validate:"omitempty,max=10000,dive,required,max=256"`
}

// IntervalRequest sets the inclusive date interval.
type IntervalRequest struct {
	StartDate string `json:"start_date" validate:"required,calendarday"`
	EndDate   string `json:"end_date" validate:"required,calendarday"`
}

// FocusRequest sets the focus vessel.
type FocusRequest struct {
	VesselID string `json:"vessel_id" validate:"required,max=256"`
}

// PairVessel is the vessel half of a pair request.
type PairVessel struct {
	MovementID string `json:"movement_id" validate:"max=512"`
	VesselID   string `json:"vessel_id" validate:"required,max=256"`
	Key        string `json:"key" validate:"max=512"`
}

// PairCommodity is the commodity half of a pair request.
type PairCommodity struct {
	DocumentID  string  `json:"document_id" validate:"max=512"`
	CommodityID string  `json:"commodity_id" validate:"required,max=256"`
	QtyTons     float64 `json:"qty_tons"`
}

// PairRequest identifies a vessel/commodity pair at a day and location. It
// is the body of both POST and DELETE /pairs.
type PairRequest struct {
	Date       string        `json:"date" validate:"required,calendarday"`
	LocationID string        `json:"location_id" validate:"required,max=256"`
	Vessel     PairVessel    `json:"vessel"`
	Commodity  PairCommodity `json:"commodity"`
}

// pair converts a validated request.
func (p *PairRequest) pair() models.VesselCommodityPair {
	return models.VesselCommodityPair{
		Date:       models.MustParseDay(p.Date),
		LocationID: p.LocationID,
		Vessel: models.UnionVessel{
			MovementID: p.Vessel.MovementID,
			VesselID:   p.Vessel.VesselID,
			Key:        p.Vessel.Key,
		},
		Commodity: models.UnionCommodity{
			DocumentID:  p.Commodity.DocumentID,
			CommodityID: p.Commodity.CommodityID,
			QtyTons:     p.Commodity.QtyTons,
		},
	}
}
