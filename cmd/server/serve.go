// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trialscope/internal/api"
	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/database"
	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/supervisor"
	"github.com/tomtom215/trialscope/internal/supervisor/services"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// runServe starts the API under the supervisor tree and blocks until
// SIGINT or SIGTERM.
func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("api_prefix", cfg.API.Prefix).
		Str("driver", cfg.Database.Driver).
		Bool("url_configured", cfg.Database.URL != "").
		Bool("local_fallback", cfg.Database.LocalFallback).
		Bool("read_only", cfg.Database.ReadOnly).
		Bool("circuit_breaker", cfg.Database.CircuitBreaker.Enabled).
		Msg("Starting Trialscope")

	warnInsecureDefaults(cfg)

	srv := newHTTPServer(cfg, newExecutor(cfg.Database))

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("Services did not stop within the shutdown timeout")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor stopped: %w", err)
	}

	logging.Info().Msg("Trialscope stopped")
	return nil
}

// newConnector builds the tiered connector, wrapped in a circuit breaker
// when enabled.
func newConnector(cfg config.DatabaseConfig) database.Connector {
	var c database.Connector = database.NewConnector(cfg)
	if cfg.CircuitBreaker.Enabled {
		c = database.NewBreakerConnector(c, cfg.CircuitBreaker)
	}
	return c
}

func newExecutor(cfg config.DatabaseConfig) *database.Executor {
	return database.NewExecutor(newConnector(cfg))
}

// newHTTPServer wires the router for store into an http.Server.
func newHTTPServer(cfg *config.Config, store api.Store) *http.Server {
	router := api.NewRouter(api.NewHandler(store, cfg.API), cfg)
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
}

func warnInsecureDefaults(cfg *config.Config) {
	for _, o := range cfg.Security.CORSOrigins {
		if o == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
			break
		}
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.Database.URL == "" && cfg.Database.Password == "" {
		logging.Warn().Msg("No DATABASE_URL and no DB_PASSWORD set; connections rely on trust or peer authentication")
	}
}
