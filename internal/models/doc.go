// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package models defines the JSON response shapes of the HTTP API.
//
// Most endpoints pass view rows through unchanged as database.Row values,
// which keep the view's column order. The types here cover the responses
// that are reshaped: positional executive metrics, the pagination envelope,
// and the composite dashboard payloads.
package models
