// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"context"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/database"
)

// Store is the database surface the handlers need. *database.Executor
// satisfies it.
type Store interface {
	database.Querier
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by dashboard page:
//   - handlers_exec.go: executive summary (/exec)
//   - handlers_adherence.go: patient adherence (/adherence)
//   - handlers_siteanalysis.go: site analysis (/siteanalysis)
//   - handlers_operational.go: operational metrics (/operationalmetrics)
//   - handlers_trialjourney.go: trial journey (/trialjourney)
//   - handlers_health.go: root, liveness and readiness
type Handler struct {
	db  Store
	cfg config.APIConfig
}

// NewHandler creates a new API handler.
//
// Example:
//
//	exec := database.NewExecutor(database.NewConnector(cfg.Database))
//	handler := api.NewHandler(exec, cfg.API)
//	router := api.NewRouter(handler, cfg)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(db Store, cfg config.APIConfig) *Handler {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = 50
	}
	if cfg.MaxPageSize < 1 {
		cfg.MaxPageSize = 1000
	}
	return &Handler{db: db, cfg: cfg}
}
