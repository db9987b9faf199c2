// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

// Package validation wraps go-playground/validator v10 with a shared,
// lazily configured instance.
//
// It is used in two places: the fixture loader validates every record
// before it reaches aggregation (invalid records are logged and skipped),
// and the API validates decoded request bodies.
//
//	type SelectionRequest struct {
//	    VesselIDs []string `json:"vessel_ids" validate:"omitempty,dive,required"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
