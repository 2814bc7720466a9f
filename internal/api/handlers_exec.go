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

// Executive views are read positionally: the dashboard relies on column
// order, not column names.

// ExecKPIs returns the headline scorecard for the executive summary.
func (h *Handler) ExecKPIs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlExecKPIs)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return models.ExecKPIs{TotalUniquePatients: 0, TotalVisits: 0, VisitMissed: 0}, nil
		}
		row := rows[0]
		return models.ExecKPIs{
			TotalUniquePatients: row.At(0),
			TotalVisits:         row.At(1),
			VisitCompletionPct:  database.AsFloat(row.At(2)),
			VisitMissed:         row.At(3),
		}, nil
	})
}

// ExecEnrollmentGauge returns enrolled vs. target patients.
func (h *Handler) ExecEnrollmentGauge(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlExecEnrollmentGauge)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return models.EnrollmentGauge{TotalEnrolled: 0, TotalTarget: 0}, nil
		}
		return models.EnrollmentGauge{
			TotalEnrolled: rows[0].At(0),
			TotalTarget:   rows[0].At(1),
		}, nil
	})
}

// ExecVisitStatus returns completed, missed and rescheduled visit counts.
func (h *Handler) ExecVisitStatus(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlExecVisitStatus)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return models.VisitStatus{Completed: 0, Missed: 0, Rescheduled: 0}, nil
		}
		return models.VisitStatus{
			Completed:   rows[0].At(0),
			Missed:      rows[0].At(1),
			Rescheduled: rows[0].At(2),
		}, nil
	})
}

// ExecEnrollmentTrend returns monthly enrollment as {month, enrollment} points.
func (h *Handler) ExecEnrollmentTrend(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		rows, err := h.db.Run(ctx, sqlExecEnrollmentTrend)
		if err != nil {
			return nil, err
		}
		points := make([]models.EnrollmentTrendPoint, 0, len(rows))
		for _, row := range rows {
			month, _ := row.Get("month_name")
			enrollment, _ := row.Get("monthly_enrollment")
			points = append(points, models.EnrollmentTrendPoint{Month: month, Enrollment: enrollment})
		}
		return points, nil
	})
}
