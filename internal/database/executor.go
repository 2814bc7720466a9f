// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/metrics"
)

// Querier runs a read-only statement and returns every row.
// Handlers depend on this rather than on *Executor.
type Querier interface {
	Run(ctx context.Context, query string, params ...any) ([]Row, error)
}

// Executor runs each query on its own freshly acquired connection and
// releases that connection before returning.
type Executor struct {
	connector Connector
}

// NewExecutor returns an Executor that acquires connections from c.
func NewExecutor(c Connector) *Executor {
	return &Executor{connector: c}
}

// Run executes query with positional parameters bound to $1..$n.
//
// The parameter count must equal the highest placeholder index; a mismatch
// is rejected with a QueryError wrapping ErrParamCount before any
// connection is opened. Rows are fully materialized before the connection
// is closed, and the connection is closed exactly once on every path.
// Connection failures are returned unchanged as *ConnectionError.
func (e *Executor) Run(ctx context.Context, query string, params ...any) (rows []Row, err error) {
	start := time.Now()
	view := viewName(query)
	defer func() {
		metrics.RecordDBQuery(view, time.Since(start), len(rows), errorType(err))
		l := logging.Ctx(ctx)
		if err != nil {
			l.Warn().Err(err).Str("view", view).Dur("elapsed", time.Since(start)).Msg("Query failed")
			return
		}
		l.Debug().Str("view", view).Int("rows", len(rows)).Dur("elapsed", time.Since(start)).Msg("Query finished")
	}()

	if want := maxPlaceholder(query); want != len(params) {
		return nil, &QueryError{
			SQL: query,
			Err: fmt.Errorf("%w: statement uses %d, got %d", ErrParamCount, want, len(params)),
		}
	}

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	metrics.TrackOpenConnection(true)
	defer func() {
		metrics.TrackOpenConnection(false)
		closeWithLog(conn, "database connection")
	}()

	rs, err := conn.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, newQueryError(query, err)
	}
	defer closeQuietly(rs)

	rows, err = scanRows(rs)
	if err != nil {
		return nil, newQueryError(query, err)
	}
	return rows, nil
}

// Ping checks end-to-end reachability through the same path as Run.
func (e *Executor) Ping(ctx context.Context) error {
	_, err := e.Run(ctx, "SELECT 1 AS ok")
	return err
}
