// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package models

import "github.com/goccy/go-json"

// Movement types.
const (
	MovementTransport = "transport"
	MovementHarbor    = "harbor"
)

// MovementRecord is one observation of a vessel at a location.
// Records derived from transponder pings carry Dwell, the seconds spent at
// the location on that day.
type MovementRecord struct {
	Date       Timestamp `json:"date" validate:"required"`
	VesselID   string    `json:"vessel_id" validate:"required"`
	LocationID string    `json:"location_id" validate:"required"`
	Type       string    `json:"type,omitempty" validate:"omitempty,oneof=transport harbor"`
	Dwell      float64   `json:"dwell,omitempty" validate:"gte=0"`
	VesselType string    `json:"vessel_type,omitempty"`
	MovementID string    `json:"movement_id,omitempty"`
}

// DistributionRecord is a delivery of a commodity at a location on a date.
// QtyTons is positive for imports and zero or negative for exports.
type DistributionRecord struct {
	Date        Timestamp `json:"date" validate:"required"`
	CommodityID string    `json:"commodity_id" validate:"required"`
	LocationID  string    `json:"location_id" validate:"required"`
	DocumentID  string    `json:"document_id"`
	QtyTons     *float64  `json:"qty_tons,omitempty"`
}

// IsImport reports whether the delivery brought goods in. Records without a
// quantity are neither imports nor exports.
func (r *DistributionRecord) IsImport() bool {
	return r.QtyTons != nil && *r.QtyTons > 0
}

// IsExport reports whether the delivery shipped goods out.
func (r *DistributionRecord) IsExport() bool {
	return r.QtyTons != nil && *r.QtyTons <= 0
}

// TransportEvent is a vessel's stay at a location, from a transponder ping.
type TransportEvent struct {
	VesselID   string    `json:"vessel_id" validate:"required"`
	LocationID string    `json:"location_id" validate:"required"`
	StartTime  Timestamp `json:"start_time" validate:"required"`
	EndTime    Timestamp `json:"end_time" validate:"required"`
}

// UnionVessel identifies one vessel visit inside a DateLocationUnion.
type UnionVessel struct {
	MovementID string `json:"movement_id"`
	VesselID   string `json:"vessel_id"`
	Key        string `json:"key"`
}

// UnionCommodity identifies one delivery inside a DateLocationUnion.
type UnionCommodity struct {
	DocumentID  string  `json:"document_id"`
	CommodityID string  `json:"commodity_id"`
	QtyTons     float64 `json:"qty_tons"`
}

// DateLocationUnion lists the deliveries and vessel visits that share a
// calendar day and location. Pairing removes one of each.
type DateLocationUnion struct {
	Date        Day              `json:"date"`
	LocationID  string           `json:"location_id"`
	Commodities []UnionCommodity `json:"commodities"`
	Vessels     []UnionVessel    `json:"vessels"`
}

// UnmarshalJSON also accepts the "commoditys" spelling used by older fixture files.
func (u *DateLocationUnion) UnmarshalJSON(data []byte) error {
	type plain DateLocationUnion
	var aux struct {
		plain
		Commoditys []UnionCommodity `json:"commoditys"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*u = DateLocationUnion(aux.plain)
	if len(u.Commodities) == 0 && len(aux.Commoditys) > 0 {
		u.Commodities = aux.Commoditys
	}
	return nil
}

// Clone returns a deep copy of u.
func (u *DateLocationUnion) Clone() DateLocationUnion {
	out := *u
	out.Commodities = append([]UnionCommodity(nil), u.Commodities...)
	out.Vessels = append([]UnionVessel(nil), u.Vessels...)
	return out
}

// VesselCommodityPair is a user-confirmed link between a vessel visit and a
// delivery at the same day and location.
type VesselCommodityPair struct {
	Date       Day            `json:"date" validate:"required"`
	LocationID string         `json:"location_id" validate:"required"`
	Vessel     UnionVessel    `json:"vessel"`
	Commodity  UnionCommodity `json:"commodity"`
}
