// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"hash/fnv"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/models"
)

// respondJSON sends a JSON response with proper headers. Successful
// responses carry an ETag; a matching If-None-Match yields 304 so polling
// dashboards skip unchanged payloads. Clients must always revalidate.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		writeJSON(w, http.StatusInternalServerError, []byte(`{"detail":"failed to encode response"}`))
		return
	}

	if status == http.StatusOK {
		etag := generateETag(data)
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from the FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return `W/"` + strconv.FormatUint(h.Sum64(), 16) + `"`
}

// respondDetail sends {"detail": detail} with status.
func respondDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	respondJSON(w, r, status, models.ErrorResponse{Detail: detail})
}

// respondError logs err and sends it as a 500 with the message as detail.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().
		Str("method", r.Method).
		Str("path", logging.SanitizeValue(r.URL.Path)).
		Str("error", logging.SanitizeValue(err.Error())).
		Msg("API Error")

	respondDetail(w, r, http.StatusInternalServerError, err.Error())
}
