// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

/*
Package metrics defines the Prometheus collectors exported on /metrics.

Collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them.

# Database

  - db_query_duration_seconds{view}
  - db_query_errors_total{view,error_type}
  - db_query_rows{view}
  - db_connect_attempts_total{tier,result}
  - db_connect_duration_seconds{tier}
  - db_open_connections

The view label is the first relation named in the FROM clause, never the
full SQL text, to keep label cardinality bounded.

# HTTP

  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

# Circuit breaker

  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
