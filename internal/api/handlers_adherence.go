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
	"github.com/tomtom215/trialscope/internal/validation"
)

func defaultActivePatients() database.Row {
	return zeroRow(0, "Total_Active_Patients")
}

func defaultRate(col string) database.Row {
	return zeroRow(0.0, col)
}

// AdherenceActive returns the active patient count.
func (h *Handler) AdherenceActive(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlAdherenceActive, defaultActivePatients())
}

// AdherenceDropoutRate returns the study-wide dropout rate.
func (h *Handler) AdherenceDropoutRate(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlAdherenceDropoutRate, defaultRate("dropout_rate"))
}

// AdherenceRate returns the study-wide adherence rate.
func (h *Handler) AdherenceRate(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlAdherenceRate, defaultRate("adherence_rate"))
}

// AdherencePendingRate returns the share of patients with pending status.
func (h *Handler) AdherencePendingRate(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlAdherencePendingRate, defaultRate("pending_rate"))
}

// AdherenceNonAdherenceRate returns the study-wide non-adherence rate.
func (h *Handler) AdherenceNonAdherenceRate(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlAdherenceNonAdherenceRate, defaultRate("non_adherence_rate"))
}

// AdherenceCategories returns patient counts per adherence category.
func (h *Handler) AdherenceCategories(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlAdherenceCategories)
}

// AdherenceDropoutTrend returns dropouts by month.
func (h *Handler) AdherenceDropoutTrend(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlAdherenceDropoutTrend)
}

// AdherenceSiteDistribution returns adherence bands per site.
func (h *Handler) AdherenceSiteDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteAdherenceDistribution)
}

// AdherenceSiteGenderDistribution returns gender split per site.
func (h *Handler) AdherenceSiteGenderDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteGenderDistribution)
}

// AdherencePatientDetails returns one page of per-patient adherence, best
// adherence first, along with the total row count.
//
// Query parameters:
//   - page: 1-based page number (default 1)
//   - page_size: rows per page (default 50, max 1000)
func (h *Handler) AdherencePatientDetails(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.ParsePagination(r.URL.Query(), h.cfg.DefaultPageSize, h.cfg.MaxPageSize)
	if verr != nil {
		respondDetail(w, r, http.StatusUnprocessableEntity, verr.Detail())
		return
	}

	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.rows(ctx, sqlAdherencePatientDetails, p.PageSize, p.Offset())
		if err != nil {
			return nil, err
		}
		countRows, err := h.db.Run(ctx, sqlAdherencePatientCount)
		if err != nil {
			return nil, err
		}

		var total int64
		if len(countRows) > 0 {
			v, _ := countRows[0].Get("total_rows")
			total = database.AsInt(v)
		}

		return models.PatientDetailsPage{
			Page:      p.Page,
			PageSize:  p.PageSize,
			TotalRows: total,
			Data:      rows,
		}, nil
	})
}

// AdherenceKPIs combines the five adherence scorecards in one response.
func (h *Handler) AdherenceKPIs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		var kpis models.AdherenceKPIs
		steps := []struct {
			query string
			def   database.Row
			dst   *database.Row
		}{
			{sqlAdherenceActive, defaultActivePatients(), &kpis.Active},
			{sqlAdherenceDropoutRate, defaultRate("dropout_rate"), &kpis.DropoutRate},
			{sqlAdherenceRate, defaultRate("adherence_rate"), &kpis.AdherenceRate},
			{sqlAdherenceNonAdherenceRate, defaultRate("non_adherence_rate"), &kpis.NonAdherenceRate},
			{sqlAdherencePendingRate, defaultRate("pending_rate"), &kpis.PendingRate},
		}
		for _, s := range steps {
			row, err := h.first(ctx, s.query, s.def)
			if err != nil {
				return nil, err
			}
			*s.dst = row
		}
		return kpis, nil
	})
}
