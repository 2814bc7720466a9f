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

// SiteTotalActive returns the number of active sites.
func (h *Handler) SiteTotalActive(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlSiteTotalActive, zeroRow(0, "total_active_sites"))
}

// SiteAvgPatients returns the mean enrolled patients per site. The view's
// first column is reported as a float whatever it is named.
func (h *Handler) SiteAvgPatients(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlSiteAvgPatients)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return models.AvgPatientsPerSite{}, nil
		}
		return models.AvgPatientsPerSite{AvgPatientsPerSite: database.AsFloat(rows[0].At(0))}, nil
	})
}

// SiteTopPerformer returns the best performing site, or {}.
func (h *Handler) SiteTopPerformer(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlSiteTopPerformer, database.Row{})
}

// SiteLeastPerformer returns the worst performing site, or {}.
func (h *Handler) SiteLeastPerformer(w http.ResponseWriter, r *http.Request) {
	h.serveFirst(w, r, sqlSiteLeastPerformer, database.Row{})
}

func (h *Handler) SitePatientsBar(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSitePatientsBar)
}

func (h *Handler) SiteMissedVisits(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteMissedVisits)
}

func (h *Handler) SiteRescheduledVisits(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteRescheduledVisits)
}

func (h *Handler) SiteGenderDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteGenderDistribution)
}

func (h *Handler) SiteAgeDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlAgeDistribution)
}

func (h *Handler) SiteAdherenceDistribution(w http.ResponseWriter, r *http.Request) {
	h.serveRows(w, r, sqlSiteAdherenceDistribution)
}

// SiteKPIs combines the four site scorecards. Unlike /avg_patients, the
// average is passed through as the raw view row.
func (h *Handler) SiteKPIs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		var kpis models.SiteKPIs
		var err error
		if kpis.TotalActiveSites, err = h.first(ctx, sqlSiteTotalActive, zeroRow(0, "total_active_sites")); err != nil {
			return nil, err
		}
		if kpis.AvgPatientsPerSite, err = h.first(ctx, sqlSiteAvgPatients, zeroRow(0, "avg_patients_per_site")); err != nil {
			return nil, err
		}
		if kpis.TopPerformer, err = h.first(ctx, sqlSiteTopPerformer, database.Row{}); err != nil {
			return nil, err
		}
		if kpis.LeastPerformer, err = h.first(ctx, sqlSiteLeastPerformer, database.Row{}); err != nil {
			return nil, err
		}
		return kpis, nil
	})
}

// SiteCharts returns all six site chart series in one response.
func (h *Handler) SiteCharts(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		set, err := h.rowSet(ctx,
			sqlSitePatientsBar,
			sqlSiteMissedVisits,
			sqlSiteRescheduledVisits,
			sqlSiteGenderDistribution,
			sqlAgeDistribution,
			sqlSiteAdherenceDistribution,
		)
		if err != nil {
			return nil, err
		}
		return models.SiteCharts{
			PatientsBar:           set[0],
			MissedVisits:          set[1],
			RescheduledVisits:     set[2],
			GenderDistribution:    set[3],
			AgeDistribution:       set[4],
			AdherenceDistribution: set[5],
		}, nil
	})
}
