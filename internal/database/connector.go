// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/metrics"
)

// Conn is a live, exclusively owned database connection.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Close() error
}

// Connector hands out one new connection per call.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// OpenFunc opens a database handle for a driver and DSN. sql.Open satisfies it.
type OpenFunc func(driverName, dsn string) (*sql.DB, error)

// PostgresConnector resolves connection parameters through the URL,
// discrete and local tiers and returns the first connection that answers
// a ping. It keeps no connections between calls.
type PostgresConnector struct {
	cfg    config.DatabaseConfig
	open   OpenFunc
	logger zerolog.Logger
}

// NewConnector creates a connector for cfg. The configuration is copied;
// later changes to the caller's struct or the environment have no effect.
func NewConnector(cfg config.DatabaseConfig) *PostgresConnector {
	cfg.ManagedHostSuffixes = append([]string(nil), cfg.ManagedHostSuffixes...)
	return &PostgresConnector{
		cfg:    cfg,
		open:   sql.Open,
		logger: logging.WithComponent("database"),
	}
}

// WithOpenFunc replaces sql.Open, mainly for tests.
func (c *PostgresConnector) WithOpenFunc(open OpenFunc) *PostgresConnector {
	c.open = open
	return c
}

// Connect tries each tier in priority order. A failing tier is logged and
// the next one is tried; if every tier fails the returned ConnectionError
// carries all of their errors.
func (c *PostgresConnector) Connect(ctx context.Context) (Conn, error) {
	tiers := planTiers(&c.cfg)
	errs := make([]error, 0, len(tiers))
	var last TierName

	for i, tier := range tiers {
		last = tier.Name
		res := c.attempt(ctx, tier)
		if res.Err == nil {
			return res.Conn, nil
		}
		errs = append(errs, res.Err)

		if ctx.Err() != nil {
			break
		}
		if i < len(tiers)-1 {
			logging.Ctx(ctx).Warn().
				Str("component", "database").
				Str("tier", string(tier.Name)).
				Str("next_tier", string(tiers[i+1].Name)).
				Err(res.Err).
				Msg("Connection tier failed, falling back")
		}
	}

	return nil, &ConnectionError{Tier: last, Err: errors.Join(errs...)}
}

// attempt opens and pings one tier and pins the pinged connection. The
// handle is capped at a single physical connection so that closing it
// releases exactly that session.
func (c *PostgresConnector) attempt(ctx context.Context, tier Tier) (res TierResult) {
	res.Tier = tier.Name
	start := time.Now()
	defer func() {
		metrics.RecordDBConnect(string(tier.Name), time.Since(start), res.Err)
	}()

	dsn, err := tier.DSN()
	if err != nil {
		res.Err = fmt.Errorf("%s tier: %w", tier.Name, err)
		return res
	}

	db, err := c.open(c.cfg.Driver, dsn)
	if err != nil {
		res.Err = fmt.Errorf("%s tier: open: %w", tier.Name, err)
		return res
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx := ctx
	if c.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, c.cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db)
		res.Err = fmt.Errorf("%s tier: %w", tier.Name, err)
		return res
	}

	// Pin the pinged session. Queries on a *sql.Conn fail with
	// driver.ErrBadConn instead of being retried on a new connection.
	sc, err := db.Conn(ctx)
	if err != nil {
		closeQuietly(db)
		res.Err = fmt.Errorf("%s tier: %w", tier.Name, err)
		return res
	}

	c.logger.Debug().
		Str("tier", string(tier.Name)).
		Str("dsn", logging.RedactDSN(dsn)).
		Dur("elapsed", time.Since(start)).
		Msg("Database connection established")
	res.Conn = &session{Conn: sc, db: db}
	return res
}

// session is one pinned connection plus the handle that owns it.
type session struct {
	*sql.Conn
	db *sql.DB
}

// Close releases the session and closes its handle. Closing twice is not an error.
func (s *session) Close() error {
	err := s.Conn.Close()
	if errors.Is(err, sql.ErrConnDone) {
		err = nil
	}
	return errors.Join(err, s.db.Close())
}
