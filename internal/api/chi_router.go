// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/middleware"
)

// compressionLevel is the gzip/deflate level for chi's Compress middleware.
const compressionLevel = 5

// Router wires handlers and middleware into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	prefix        string
}

// NewRouter creates a router for handler using the API and security
// sections of cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security)),
		prefix:        normalizePrefix(cfg.API.Prefix),
	}
}

// normalizePrefix returns "" for the root, otherwise a path with one
// leading slash and no trailing slash.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chimiddleware.Compress(compressionLevel))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Liveness & Observability
	// ========================
	r.Get("/", router.handler.Root)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Dashboard Endpoints
	// ========================
	routes := func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Route("/exec", router.execRoutes)
		r.Route("/adherence", router.adherenceRoutes)
		r.Route("/siteanalysis", router.siteAnalysisRoutes)
		r.Route("/operationalmetrics", router.operationalRoutes)
		r.Route("/trialjourney", router.trialJourneyRoutes)
	}
	if router.prefix == "" {
		r.Group(routes)
	} else {
		r.Route(router.prefix, routes)
	}

	return r
}

func (router *Router) execRoutes(r chi.Router) {
	h := router.handler
	r.Get("/kpis", h.ExecKPIs)
	r.Get("/enrollment-gauge", h.ExecEnrollmentGauge)
	r.Get("/visit-status", h.ExecVisitStatus)
	r.Get("/enrollment-trend", h.ExecEnrollmentTrend)
}

func (router *Router) adherenceRoutes(r chi.Router) {
	h := router.handler
	r.Get("/active", h.AdherenceActive)
	r.Get("/dropout-rate", h.AdherenceDropoutRate)
	r.Get("/adherence-rate", h.AdherenceRate)
	r.Get("/pending-rate", h.AdherencePendingRate)
	r.Get("/non-adherence-rate", h.AdherenceNonAdherenceRate)
	r.Get("/categories", h.AdherenceCategories)
	r.Get("/dropout-trend", h.AdherenceDropoutTrend)
	r.Get("/patient-details", h.AdherencePatientDetails)
	r.Get("/kpis", h.AdherenceKPIs)
	r.Get("/site-adherence-distribution", h.AdherenceSiteDistribution)
	r.Get("/site-gender-distribution", h.AdherenceSiteGenderDistribution)
}

func (router *Router) siteAnalysisRoutes(r chi.Router) {
	h := router.handler
	r.Get("/total_active", h.SiteTotalActive)
	r.Get("/avg_patients", h.SiteAvgPatients)
	r.Get("/top_performer", h.SiteTopPerformer)
	r.Get("/least_performer", h.SiteLeastPerformer)
	r.Get("/patients_bar", h.SitePatientsBar)
	r.Get("/missed_visits", h.SiteMissedVisits)
	r.Get("/rescheduled_visits", h.SiteRescheduledVisits)
	r.Get("/gender_distribution", h.SiteGenderDistribution)
	r.Get("/age_distribution", h.SiteAgeDistribution)
	r.Get("/adherence_distribution", h.SiteAdherenceDistribution)
	r.Get("/kpis", h.SiteKPIs)
	r.Get("/charts", h.SiteCharts)
}

func (router *Router) operationalRoutes(r chi.Router) {
	h := router.handler
	r.Get("/main_kpis", h.OperationalMainKPIs)
	r.Get("/query_completeness", h.OperationalQueryCompleteness)
	r.Get("/medication_take_percent", h.OperationalMedicationTakePercent)
	r.Get("/timeliness", h.OperationalTimeliness)
	r.Get("/randomized_stats", h.OperationalRandomizedStats)
	r.Get("/comprehensive_table", h.OperationalComprehensiveTable)
	r.Get("/kpis", h.OperationalKPIs)
	r.Get("/charts", h.OperationalCharts)
	r.Get("/complete_data", h.OperationalCompleteData)
}

func (router *Router) trialJourneyRoutes(r chi.Router) {
	h := router.handler
	r.Get("/kpis", h.JourneyKPIs)
	r.Get("/screening_results", h.JourneyScreeningResults)
	r.Get("/screening_failure_reasons", h.JourneyScreeningFailureReasons)
	r.Get("/screening_sources", h.JourneyScreeningSources)
	r.Get("/ediary_submission", h.JourneyEDiarySubmission)
	r.Get("/weekly_visits", h.JourneyWeeklyVisits)
	r.Get("/ae_category_distribution", h.JourneyAECategoryDistribution)
	r.Get("/ae_count_summary", h.JourneyAECountSummary)
	r.Get("/dashboard_data", h.JourneyDashboardData)
}
