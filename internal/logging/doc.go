// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package logging provides the zerolog-based structured logger used across Trialscope.
//
// A single global logger is configured once from main via Init. Everything
// else logs through the package-level helpers or, inside request handling,
// through Ctx so that request_id and correlation_id are attached.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Query failed")
//
// # Configuration
//
// Environment variables (read by internal/config, not by this package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # Suture integration
//
// NewSlogLogger returns an slog.Logger that writes into zerolog, which is
// what sutureslog expects for supervisor event logging.
//
// # Secrets
//
// Connection strings must go through RedactDSN before being logged, and
// request-derived strings through SanitizeValue.
package logging
