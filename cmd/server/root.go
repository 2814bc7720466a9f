// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/logging"
)

// newRootCmd builds the command tree. Running the binary with no
// subcommand starts the API server.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "trialscope",
		Short:         "Clinical trial analytics API",
		Long:          `Trialscope serves read-only clinical trial dashboard metrics from PostgreSQL reporting views as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv(config.ConfigPathEnvVar, configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (overrides "+config.ConfigPathEnvVar+")")

	root.AddCommand(newServeCmd(), newDBCheckCmd())
	return root
}

// loadConfig loads configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	return cfg, nil
}
