// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package validation

import (
	"net/url"
	"strconv"
	"strings"
)

// PaginationRequest holds the page and page_size query parameters.
// Page is capped at MaxInt32 so the computed offset cannot overflow.
type PaginationRequest struct {
	Page     int `query:"page" validate:"min=1,max=2147483647"`
	PageSize int `query:"page_size" validate:"min=1"`
}

// Offset returns the number of rows to skip.
func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads and validates page and page_size from q.
// Absent parameters take page 1 and defaultSize; page_size may not exceed maxSize.
func ParsePagination(q url.Values, defaultSize, maxSize int) (PaginationRequest, *RequestValidationError) {
	req := PaginationRequest{Page: 1, PageSize: defaultSize}

	var errs []ValidationError
	if v, ok := intParam(q, "page", &req.Page); !ok {
		errs = append(errs, NewFieldError("page", "int", v, "page must be a valid integer"))
	}
	if v, ok := intParam(q, "page_size", &req.PageSize); !ok {
		errs = append(errs, NewFieldError("page_size", "int", v, "page_size must be a valid integer"))
	}
	if len(errs) > 0 {
		return req, NewRequestValidationError(errs...)
	}

	if verr := ValidateStruct(&req); verr != nil {
		return req, verr
	}
	if verr := ValidateVar("page_size", req.PageSize, "max="+strconv.Itoa(maxSize)); verr != nil {
		return req, verr
	}
	return req, nil
}

// intParam parses q[name] into dst when present. It reports the raw value
// and false when the parameter is present but not an integer.
func intParam(q url.Values, name string, dst *int) (string, bool) {
	values, present := q[name]
	if !present || len(values) == 0 {
		return "", true
	}
	raw := strings.TrimSpace(values[0])
	n, err := strconv.Atoi(raw)
	if err != nil {
		return values[0], false
	}
	*dst = n
	return raw, true
}
