// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/database"
)

// pinger is the part of *database.Executor dbcheck needs.
type pinger interface {
	Ping(ctx context.Context) error
}

func newDBCheckCmd() *cobra.Command {
	var planOnly bool

	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Show the database connection plan and test it",
		Long: `The dbcheck command prints the connection tiers that will be tried, in order,
with passwords redacted. Unless --plan-only is given it then opens a connection
through the same tier chain the API uses and runs SELECT 1.

It exits non-zero when the connection check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			var p pinger
			if !planOnly {
				p = newExecutor(cfg.Database)
			}
			return runDBCheck(cmd.Context(), cmd.OutOrStdout(), cfg.Database, p)
		},
	}
	cmd.Flags().BoolVar(&planOnly, "plan-only", false, "print the tier plan without connecting")
	return cmd
}

// runDBCheck writes the tier plan for cfg to w and, when p is non-nil,
// pings through it.
func runDBCheck(ctx context.Context, w io.Writer, cfg config.DatabaseConfig, p pinger) error {
	data := pterm.TableData{{"#", "Tier", "Connection", "Status"}}
	for i, t := range database.Describe(cfg) {
		status, target := "planned", t.DSN
		if t.Err != nil {
			status, target = "skipped", t.Err.Error()
		}
		data = append(data, []string{fmt.Sprint(i + 1), string(t.Name), target, status})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "driver: %s  read_only: %t  connect_timeout: %s\n",
		cfg.Driver, cfg.ReadOnly, cfg.ConnectTimeout)

	if p == nil {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.Ping(ctx); err != nil {
		fmt.Fprintln(w, pterm.Error.Sprintf("connection failed: %v", err))
		return fmt.Errorf("database check failed: %w", err)
	}
	fmt.Fprintln(w, pterm.Success.Sprint("connected"))
	return nil
}
