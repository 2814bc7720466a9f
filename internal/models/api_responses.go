// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package models

import "github.com/tomtom215/trialscope/internal/database"

// ErrorResponse is the body of every non-2xx response.
//
//	{"detail": "relation \"v_pa_dropout_rate\" does not exist"}
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by the health endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// PatientDetailsPage is one page of the patient details table.
// TotalRows counts every row of the view, not just this page.
type PatientDetailsPage struct {
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
	TotalRows int64          `json:"total_rows"`
	Data      []database.Row `json:"data"`
}
