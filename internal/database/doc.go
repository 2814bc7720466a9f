// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package database acquires PostgreSQL connections and runs read-only
// queries against the analytics views.
//
// # Connection tiers
//
// PostgresConnector resolves parameters in priority order:
//
//  1. url: DATABASE_URL as given. Hosts of managed providers get
//     sslmode=require appended when the URL has no sslmode. A configured
//     URL is the only tier; its failure is final.
//  2. discrete: DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD with
//     sslmode=require.
//  3. local: localhost:5432 with the same name and credentials, without
//     forced TLS. Disabled with DB_LOCAL_FALLBACK=false.
//
// Any failure of the discrete tier, a malformed port included, falls
// through to local with a warning. When every tier fails Connect returns
// a *ConnectionError joining each tier's error.
//
// # Execution
//
// Executor.Run opens one connection per call, binds parameters
// positionally, materializes all rows as ordered Row values and closes the
// connection on every exit path. No pool is shared between calls.
//
// # Drivers
//
// DB_DRIVER selects "pgx" (github.com/jackc/pgx/v5/stdlib, default) or
// "postgres" (github.com/lib/pq). Both are registered by this package.
//
// # Circuit breaker
//
// BreakerConnector is an opt-in wrapper (DB_CIRCUIT_BREAKER=true) that
// rejects connection attempts for a cool-down period after repeated failures.
package database
