// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package models

import "github.com/tomtom215/trialscope/internal/database"

// AdherenceKPIs merges the five patient adherence scorecards. Each member
// is the view's first row, or that view's zero-value default.
type AdherenceKPIs struct {
	Active           database.Row `json:"active"`
	DropoutRate      database.Row `json:"dropout_rate"`
	AdherenceRate    database.Row `json:"adherence_rate"`
	NonAdherenceRate database.Row `json:"non_adherence_rate"`
	PendingRate      database.Row `json:"pending_rate"`
}

// SiteKPIs merges the site analysis scorecards.
type SiteKPIs struct {
	TotalActiveSites   database.Row `json:"total_active_sites"`
	AvgPatientsPerSite database.Row `json:"avg_patients_per_site"`
	TopPerformer       database.Row `json:"top_performer"`
	LeastPerformer     database.Row `json:"least_performer"`
}

// AvgPatientsPerSite is the reshaped average patients scorecard.
type AvgPatientsPerSite struct {
	AvgPatientsPerSite float64 `json:"avg_patients_per_site"`
}

// SiteCharts bundles every site analysis chart.
type SiteCharts struct {
	PatientsBar           []database.Row `json:"patients_bar"`
	MissedVisits          []database.Row `json:"missed_visits"`
	RescheduledVisits     []database.Row `json:"rescheduled_visits"`
	GenderDistribution    []database.Row `json:"gender_distribution"`
	AgeDistribution       []database.Row `json:"age_distribution"`
	AdherenceDistribution []database.Row `json:"adherence_distribution"`
}

// OperationalKPIs is the reshaped operational scorecard. Counts are passed
// through; the two averages are always numbers.
type OperationalKPIs struct {
	TotalQueries         any     `json:"total_queries"`
	ClosedQueries        any     `json:"closed_queries"`
	OpenQueries          any     `json:"open_queries"`
	AvgQueryCompleteness float64 `json:"avg_query_completeness"`
	AvgResolutionTime    float64 `json:"avg_resolution_time"`
}

// OperationalCharts bundles the operational metrics charts.
type OperationalCharts struct {
	QueryCompleteness     []database.Row `json:"query_completeness"`
	MedicationTakePercent []database.Row `json:"medication_take_percent"`
	Timeliness            []database.Row `json:"timeliness"`
	RandomizedStats       []database.Row `json:"randomized_stats"`
}

// OperationalCompleteData is every operational metric in one payload.
// MainKPIs is an empty object when om_kpi2 has no rows.
type OperationalCompleteData struct {
	MainKPIs database.Row `json:"main_kpis"`
	OperationalCharts
	ComprehensiveTable []database.Row `json:"comprehensive_table"`
}

// TrialJourneyDashboard is every trial journey metric in one payload.
// KPIs is an empty object when v_kpi1 has no rows.
type TrialJourneyDashboard struct {
	KPIs                    database.Row   `json:"kpis"`
	ScreeningResults        []database.Row `json:"screening_results"`
	ScreeningFailureReasons []database.Row `json:"screening_failure_reasons"`
	ScreeningSources        []database.Row `json:"screening_sources"`
	EDiarySubmission        []database.Row `json:"ediary_submission"`
	WeeklyVisits            []database.Row `json:"weekly_visits"`
	AECategoryDistribution  []database.Row `json:"ae_category_distribution"`
	AECountSummary          []database.Row `json:"ae_count_summary"`
}
