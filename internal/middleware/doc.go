// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - AccessLog: one zerolog line per completed request
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled
    by chi route pattern

All three use the http.HandlerFunc middleware shape. The api package adapts
them to chi's func(http.Handler) http.Handler:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Ordering matters: RequestID must wrap AccessLog so log lines carry the
request ID, and PrometheusMetrics must run inside a chi router so the
route pattern is available once the request has been served.
*/
package middleware
