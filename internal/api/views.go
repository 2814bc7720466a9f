// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

// Fixed statements, one per view. Views are defined and maintained in the
// reporting database; their column contracts are what the dashboard reads.

// Executive summary
const (
	sqlExecKPIs            = "SELECT * FROM public.v_exec_kpis"
	sqlExecEnrollmentGauge = "SELECT * FROM v_exec_enrollment_gauge"
	sqlExecVisitStatus     = "SELECT * FROM v_exec_visitstatus_donut"
	sqlExecEnrollmentTrend = "SELECT month_name, monthly_enrollment FROM v_exec_enrollment_trend"
)

// Patient adherence
const (
	sqlAdherenceActive           = "SELECT * FROM v_pa_Active_Patient"
	sqlAdherenceDropoutRate      = "SELECT * FROM v_pa_dropout_rate"
	sqlAdherenceRate             = "SELECT * FROM v_pa_adherence_rate"
	sqlAdherencePendingRate      = "SELECT * FROM v_pa_pending_rate"
	sqlAdherenceNonAdherenceRate = "SELECT * FROM v_pa_non_adherence_rate"
	sqlAdherenceCategories       = "SELECT * FROM v_pa_adherence_category"
	sqlAdherenceDropoutTrend     = "SELECT * FROM v_pa_dropout_trend ORDER BY month_name"
	sqlAdherencePatientDetails   = "SELECT * FROM v_pa_patient_details_table ORDER BY adherence_rate DESC NULLS LAST LIMIT $1 OFFSET $2"
	sqlAdherencePatientCount     = "SELECT COUNT(*) AS total_rows FROM (SELECT patientpk FROM v_pa_patient_details_table) t"
	sqlSiteAdherenceDistribution = "SELECT * FROM v_pa_site_adherence_distribution"
	sqlSiteGenderDistribution    = "SELECT * FROM pa_site_gender_distribution"
	sqlAgeDistribution           = "SELECT * FROM v_pa_bucket_active_patients"
)

// Site analysis
const (
	sqlSiteTotalActive       = "SELECT * FROM v_site_total_active"
	sqlSiteAvgPatients       = "SELECT * FROM v_site_avg_patients"
	sqlSiteTopPerformer      = "SELECT * FROM v_site_top_performer"
	sqlSiteLeastPerformer    = "SELECT * FROM v_site_least_performer"
	sqlSitePatientsBar       = "SELECT * FROM v_site_patients_bar"
	sqlSiteMissedVisits      = "SELECT * FROM v_site_missed_visits"
	sqlSiteRescheduledVisits = "SELECT * FROM v_site_Rescheduled_visits"
)

// Operational metrics
const (
	sqlOpsMainKPIs              = "SELECT * FROM om_kpi2"
	sqlOpsQueryCompleteness     = "SELECT * FROM om_querycompleteness"
	sqlOpsMedicationTakePercent = "SELECT * FROM om_medicationtakepercent"
	sqlOpsTimeliness            = "SELECT * FROM tj_timeliness"
	sqlOpsRandomizedStats       = "SELECT * FROM tj_randomizedflag"
	sqlOpsComprehensiveTable    = "SELECT * FROM tj_table"
)

// Trial journey
const (
	sqlJourneyKPIs                    = "SELECT * FROM v_kpi1"
	sqlJourneyScreeningResults        = "SELECT * FROM tj_screenresult"
	sqlJourneyScreeningFailureReasons = "SELECT * FROM tj_screenfailurreason"
	sqlJourneyScreeningSources        = "SELECT * FROM tj_screensource"
	sqlJourneyEDiarySubmission        = "SELECT * FROM tj_ediary_submission"
	sqlJourneyWeeklyVisits            = "SELECT * FROM tj_weekly_site_visits"
	sqlJourneyAECategoryDistribution  = "SELECT * FROM tj_category_distribution_site"
	sqlJourneyAECountSummary          = "SELECT * FROM tj_ae_count"
)
