// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package validation provides request validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and translates its
// field errors into short messages suitable for the "detail" member of a
// 422 response. Field names in messages come from the `query` struct tag
// (then `json`), so clients see the parameter name they sent.
//
// # Pagination
//
// ParsePagination reads page and page_size from a query string:
//
//	req, verr := validation.ParsePagination(r.URL.Query(), 50, 1000)
//	if verr != nil {
//	    respondDetail(w, http.StatusUnprocessableEntity, verr.Detail())
//	    return
//	}
//	rows, err := q.Run(ctx, sql, req.PageSize, req.Offset())
//
// Absent parameters default to page 1 and the configured page size.
// Non-integer values, page < 1, and page_size outside 1..max are rejected.
//
// # Thread Safety
//
// GetValidator, ValidateStruct, ValidateVar and ParsePagination are safe
// for concurrent use.
package validation
