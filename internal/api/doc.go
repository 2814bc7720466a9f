// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

/*
Package api serves the clinical trial dashboard over HTTP.

Every endpoint is a GET that runs one or more fixed statements against
reporting views and reshapes the rows into JSON. Handlers never build SQL
from request input; the only parameters are the LIMIT and OFFSET of the
patient details page.

# Routes

Routes are grouped by dashboard page under the configured prefix
(default /api):

	/exec                  executive summary
	/adherence             patient adherence, including paginated details
	/siteanalysis          per-site performance
	/operationalmetrics    data queries and visit timeliness
	/trialjourney          screening, randomization and adverse events

Liveness (/ and /health), readiness (/health/ready) and Prometheus
metrics (/metrics) are served outside the prefix.

# Errors

A failed query yields 500 with {"detail": "<message>"}. Invalid pagination
yields 422 in the same shape. Composite endpoints either return every
section or fail as a whole.

# Middleware

Request IDs, access logging, panic recovery, CORS, request metrics and
response compression apply to all routes. Dashboard routes additionally
get per-IP rate limiting and security headers.
*/
package api
