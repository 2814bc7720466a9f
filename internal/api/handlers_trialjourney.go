// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/trialscope/internal/database"
	"github.com/tomtom215/trialscope/internal/models"
)

// JourneyKPIs returns the trial journey scorecard.
func (h *Handler) JourneyKPIs(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlJourneyKPIs, zeroRow(0,
		"total_visits", "screening_passed", "randomized", "total_ae_reported", "avg_medicationtakenpct"))
}

func (h *Handler) JourneyScreeningResults(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyScreeningResults)
}

func (h *Handler) JourneyScreeningFailureReasons(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyScreeningFailureReasons)
}

func (h *Handler) JourneyScreeningSources(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyScreeningSources)
}

func (h *Handler) JourneyEDiarySubmission(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyEDiarySubmission)
}

func (h *Handler) JourneyWeeklyVisits(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyWeeklyVisits)
}

func (h *Handler) JourneyAECategoryDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyAECategoryDistribution)
}

func (h *Handler) JourneyAECountSummary(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlJourneyAECountSummary)
}

// JourneyDashboardData returns every trial journey series in one response.
// An empty KPI view yields {} here, not the zero scorecard.
func (h *Handler) JourneyDashboardData(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		kpis, err := h.first(ctx, sqlJourneyKPIs, database.Row{})
		if err != nil {
			return nil, err
		}
		set, err := h.rowSet(ctx,
			sqlJourneyScreeningResults,
			sqlJourneyScreeningFailureReasons,
			sqlJourneyScreeningSources,
			sqlJourneyEDiarySubmission,
			sqlJourneyWeeklyVisits,
			sqlJourneyAECategoryDistribution,
			sqlJourneyAECountSummary,
		)
		if err != nil {
			return nil, err
		}
		return models.TrialJourneyDashboard{
			KPIs:                    kpis,
			ScreeningResults:        set[0],
			ScreeningFailureReasons: set[1],
			ScreeningSources:        set[2],
			EDiarySubmission:        set[3],
			WeeklyVisits:            set[4],
			AECategoryDistribution:  set[5],
			AECountSummary:          set[6],
		}, nil
	})
}
