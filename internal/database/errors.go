// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/tomtom215/trialscope/internal/logging"
)

// ErrParamCount is wrapped by QueryError when the number of parameters does
// not match the highest $n placeholder in the statement.
var ErrParamCount = errors.New("parameter count does not match placeholders")

// ConfigurationError reports a malformed connection setting.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid database configuration %s: %s", e.Field, e.Reason)
}

// ConnectionError reports that no tier produced a usable connection.
// Err joins the failure of every tier that was attempted, in order.
type ConnectionError struct {
	Tier TierName
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed (last tier %s): %v", e.Tier, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError reports a failure after a connection was acquired, or a
// statement rejected before one was.
type QueryError struct {
	SQL      string
	SQLState string
	Err      error
}

func (e *QueryError) Error() string {
	if e.SQLState != "" {
		return fmt.Sprintf("query failed (SQLSTATE %s): %v", e.SQLState, e.Err)
	}
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func newQueryError(query string, err error) *QueryError {
	return &QueryError{SQL: query, SQLState: sqlState(err), Err: err}
}

// sqlState extracts the SQLSTATE code from either driver's error type.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// errorType classifies err for the db_query_errors_total label.
func errorType(err error) string {
	var connErr *ConnectionError
	var queryErr *QueryError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParamCount):
		return "param_count"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &connErr):
		return "connection"
	case errors.As(err, &queryErr):
		if queryErr.SQLState != "" {
			return "sqlstate_" + queryErr.SQLState
		}
		return "query"
	default:
		return "other"
	}
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
