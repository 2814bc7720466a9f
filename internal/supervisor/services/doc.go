// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe of an *http.Server
// into a context-aware Serve with graceful shutdown.
package services
