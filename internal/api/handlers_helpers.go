// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package api

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/oceanus/internal/analytics"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/models"
	"github.com/tomtom215/oceanus/internal/store"
	"github.com/tomtom215/oceanus/internal/validation"
)

// maxRequestBodySize bounds JSON request bodies. The largest legitimate
// body is a selection listing every catalog id.
const maxRequestBodySize = 1 << 20

// Error codes.
const (
	codeValidation           = "VALIDATION_ERROR"
	codeNotFound             = "NOT_FOUND"
	codeAnalyticsUnavailable = "ANALYTICS_UNAVAILABLE"
	codeAnalyticsError       = "ANALYTICS_ERROR"
	codeInternal             = "INTERNAL_ERROR"
)

// sanitizeLogValue escapes control characters so request data cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes response. Successful GETs carry an ETag over the
// payload and version, and a matching If-None-Match gets 304 Not Modified.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if status == http.StatusOK && r.Method == http.MethodGet {
		if etag, ok := generateETag(response); ok {
			w.Header().Set("ETag", etag)
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag hashes the payload with FNV-1a. The metadata timestamp
// changes on every response and is left out.
func generateETag(response *models.APIResponse) (string, bool) {
	payload, err := json.Marshal(response.Data)
	if err != nil {
		return "", false
	}
	h := fnv.New64a()
	_, _ = h.Write(payload)
	_, _ = h.Write([]byte(strconv.FormatUint(response.Metadata.Version, 10)))
	return `"` + strconv.FormatUint(h.Sum64(), 16) + `"`, true
}

// respondSuccess wraps data in a success envelope tagged with version.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, version uint64) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			Version:   version,
		},
	})
}

// respondList is respondSuccess with metadata.count.
func respondList(w http.ResponseWriter, r *http.Request, data interface{}, count int, version uint64) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			Version:   version,
			Count:     &count,
		},
	})
}

// respondError writes an error envelope. err, when set, is logged.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: code, Message: message},
	})
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	respondJSON(w, r, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	})
}

// validateRequest runs the struct's validate tags.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeAndValidate decodes a JSON body into v and validates it. It writes
// the error response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := "Invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		respondError(w, r, http.StatusBadRequest, codeValidation, msg, err)
		return false
	}
	if apiErr := validateRequest(v); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return false
	}
	return true
}

// respondStoreError maps a store command error to a response.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInterval), errors.Is(err, store.ErrIntervalTooLong):
		respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
	case errors.Is(err, store.ErrPairNotFound), errors.Is(err, store.ErrUnionNotFound):
		respondError(w, r, http.StatusNotFound, codeNotFound, err.Error(), nil)
	default:
		respondError(w, r, http.StatusInternalServerError, codeInternal, "Command failed", err)
	}
}

// respondAnalyticsError maps an analytics failure to a response.
func respondAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, analytics.ErrTSNEUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, codeAnalyticsUnavailable, "t-SNE requires the analytics server, which is disabled", nil)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, r, http.StatusServiceUnavailable, codeAnalyticsUnavailable, "Analytics server is unavailable, try again later", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		respondError(w, r, http.StatusServiceUnavailable, codeAnalyticsUnavailable, "Request canceled", nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, codeAnalyticsError, "Analytics server timed out", err)
	default:
		respondError(w, r, http.StatusBadGateway, codeAnalyticsError, "Analytics server request failed", err)
	}
}
