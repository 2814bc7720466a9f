// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package models

// The executive views are read by position, so these structs fix the
// response keys regardless of how the view names its columns.
// Counts keep the driver's type (normally int64); a NULL stays null.

// ExecKPIs is the executive summary scorecard.
type ExecKPIs struct {
	TotalUniquePatients any     `json:"total_unique_patients"`
	TotalVisits         any     `json:"total_visits"`
	VisitCompletionPct  float64 `json:"visit_completion_pct"`
	VisitMissed         any     `json:"visit_missed"`
}

// EnrollmentGauge compares enrolled patients with the enrollment target.
type EnrollmentGauge struct {
	TotalEnrolled any `json:"total_enrolled"`
	TotalTarget   any `json:"total_target"`
}

// VisitStatus is the visit outcome breakdown for the donut chart.
type VisitStatus struct {
	Completed   any `json:"completed"`
	Missed      any `json:"missed"`
	Rescheduled any `json:"rescheduled"`
}

// EnrollmentTrendPoint is one month of the enrollment trend.
type EnrollmentTrendPoint struct {
	Month      any `json:"month"`
	Enrollment any `json:"enrollment"`
}
