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

func defaultOperationalKPIs() database.Row {
	return zeroRow(0, "total_queries", "closed_queries", "open_queries",
		"avg_query_completeness", "avg_resolution_time")
}

// getOr returns the named column, or def when the row has no such column.
// A column that exists with a NULL value stays nil.
func getOr(row database.Row, col string, def any) any {
	if v, ok := row.Get(col); ok {
		return v
	}
	return def
}

// OperationalMainKPIs returns the raw om_kpi2 row.
func (h *Handler) OperationalMainKPIs(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlOpsMainKPIs, defaultOperationalKPIs())
}

func (h *Handler) OperationalQueryCompleteness(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlOpsQueryCompleteness)
}

func (h *Handler) OperationalMedicationTakePercent(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlOpsMedicationTakePercent)
}

func (h *Handler) OperationalTimeliness(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlOpsTimeliness)
}

func (h *Handler) OperationalRandomizedStats(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlOpsRandomizedStats)
}

func (h *Handler) OperationalComprehensiveTable(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlOpsComprehensiveTable)
}

// OperationalKPIs reshapes om_kpi2 into the scorecard contract. The view
// spells the resolution column avg_resolutontime.
func (h *Handler) OperationalKPIs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlOpsMainKPIs)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return models.OperationalKPIs{TotalQueries: 0, ClosedQueries: 0, OpenQueries: 0}, nil
		}
		row := rows[0]
		return models.OperationalKPIs{
			TotalQueries:         getOr(row, "total_queries", 0),
			ClosedQueries:        getOr(row, "closed_queries", 0),
			OpenQueries:          getOr(row, "open_queries", 0),
			AvgQueryCompleteness: database.AsFloat(getOr(row, "avg_query_completeness", 0)),
			AvgResolutionTime:    database.AsFloat(getOr(row, "avg_resolutontime", 0)),
		}, nil
	})
}

func (h *Handler) operationalCharts(ctx context.Context) (models.OperationalCharts, error) {
	set, err := h.rowSet(ctx,
		sqlOpsQueryCompleteness,
		sqlOpsMedicationTakePercent,
		sqlOpsTimeliness,
		sqlOpsRandomizedStats,
	)
	if err != nil {
		return models.OperationalCharts{}, err
	}
	return models.OperationalCharts{
		QueryCompleteness:     set[0],
		MedicationTakePercent: set[1],
		Timeliness:            set[2],
		RandomizedStats:       set[3],
	}, nil
}

// OperationalCharts returns the four operational chart series.
func (h *Handler) OperationalCharts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		return h.operationalCharts(ctx)
	})
}

// OperationalCompleteData returns the whole operational page: main KPIs,
// chart series and the site table.
func (h *Handler) OperationalCompleteData(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		main, err := h.first(ctx, sqlOpsMainKPIs, database.Row{})
		if err != nil {
			return nil, err
		}
		charts, err := h.operationalCharts(ctx)
		if err != nil {
			return nil, err
		}
		table, err := h.rows(ctx, sqlOpsComprehensiveTable)
		if err != nil {
			return nil, err
		}
		return models.OperationalCompleteData{
			MainKPIs:           main,
			OperationalCharts:  charts,
			ComprehensiveTable: table,
		}, nil
	})
}
