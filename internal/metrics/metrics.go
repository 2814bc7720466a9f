// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of analytics view queries in seconds, including connection setup",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed analytics view queries",
		},
		[]string{"view", "error_type"},
	)

	DBQueryRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_rows",
			Help:    "Number of rows materialized per query",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"view"},
	)

	DBConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_connect_attempts_total",
			Help: "Connection attempts per resolution tier",
		},
		[]string{"tier", "result"}, // result: "success", "failure"
	)

	DBConnectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_connect_duration_seconds",
			Help:    "Time to open and ping a connection per tier",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"tier"},
	)

	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Connections currently held by in-flight queries",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordDBQuery records one executor run. errorType is empty on success.
func RecordDBQuery(view string, duration time.Duration, rows int, errorType string) {
	DBQueryDuration.WithLabelValues(view).Observe(duration.Seconds())
	if errorType != "" {
		DBQueryErrors.WithLabelValues(view, errorType).Inc()
		return
	}
	DBQueryRows.WithLabelValues(view).Observe(float64(rows))
}

// RecordDBConnect records one tier attempt.
func RecordDBConnect(tier string, duration time.Duration, err error) {
	DBConnectDuration.WithLabelValues(tier).Observe(duration.Seconds())
	result := "success"
	if err != nil {
		result = "failure"
	}
	DBConnectAttempts.WithLabelValues(tier, result).Inc()
}

// TrackOpenConnection adjusts the open connection gauge.
func TrackOpenConnection(inc bool) {
	if inc {
		DBOpenConnections.Inc()
	} else {
		DBOpenConnections.Dec()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
