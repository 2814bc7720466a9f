// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"net/http"

	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/models"
)

// Root confirms the API process is up.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.MessageResponse{Message: "Clinical Dashboard API is running!"})
}

// Health is the liveness probe. It never touches the database.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.StatusResponse{Status: "healthy"})
}

// HealthReady is the readiness probe: it opens a connection through the
// tier chain and runs a trivial query.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondDetail(w, r, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, r, http.StatusOK, models.StatusResponse{Status: "ready"})
}
