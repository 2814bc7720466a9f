// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/trialscope/internal/database"
)

// Every analytics handler follows one of three shapes:
//
//  1. list: run a view query and return all rows
//  2. first row: return the first row, or a default when the view is empty
//  3. composite: run several queries in order and merge them into one payload
//
// The helpers below implement those shapes so each handler is a single
// call. Any query error aborts the request with a 500; composites never
// return partial results.

// buildFunc assembles a response body from one or more queries.
type buildFunc func(ctx context.Context) (any, error)

// serveRows responds with every row of query.
func (h *Handler) serveRows(w http.ResponseWriter, r *http.Request, query string) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		return h.rows(ctx, query)
	})
}

// serveFirst responds with the first row of query, or def when there is none.
func (h *Handler) serveFirst(w http.ResponseWriter, r *http.Request, query string, def database.Row) {
	h.serve(w, r, func(ctx context.Context) (any, error) {
		return h.first(ctx, query, def)
	})
}

// serve runs build and writes its result as JSON.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, build buildFunc) {
	body, err := build(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, body)
}

// rows runs query and never returns a nil slice on success, so empty
// views encode as [] rather than null.
func (h *Handler) rows(ctx context.Context, query string, params ...any) ([]database.Row, error) {
	rows, err := h.db.Run(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []database.Row{}
	}
	return rows, nil
}

// first returns the first row of query or def.
func (h *Handler) first(ctx context.Context, query string, def database.Row) (database.Row, error) {
	rows, err := h.db.Run(ctx, query)
	if err != nil {
		return database.Row{}, err
	}
	return firstOr(rows, def), nil
}

func firstOr(rows []database.Row, def database.Row) database.Row {
	if len(rows) == 0 {
		return def
	}
	return rows[0]
}

// zeroRow builds a default row whose columns are all v.
func zeroRow(v any, cols ...string) database.Row {
	vals := make([]any, len(cols))
	for i := range vals {
		vals[i] = v
	}
	return database.NewRow(cols, vals)
}

// rowSet runs several list queries in order, stopping at the first error.
// The result has one entry per query.
func (h *Handler) rowSet(ctx context.Context, queries ...string) ([][]database.Row, error) {
	out := make([][]database.Row, len(queries))
	for i, q := range queries {
		rows, err := h.rows(ctx, q)
		if err != nil {
			return nil, err
		}
		out[i] = rows
	}
	return out, nil
}
