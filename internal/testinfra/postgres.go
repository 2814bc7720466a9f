// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultPostgresImage is the image used when no override is given.
	DefaultPostgresImage = "postgres:16-alpine"

	// DefaultPostgresPort is the container-side listening port.
	DefaultPostgresPort = "5432"

	DefaultPostgresUser     = "postgres"
	DefaultPostgresPassword = "trialscope-test"
	DefaultPostgresDatabase = "clinical"
)

// PostgresContainer is a running Postgres instance for integration tests.
type PostgresContainer struct {
	testcontainers.Container
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// URL returns a postgres:// connection URL for the container with TLS disabled.
func (p *PostgresContainer) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// PostgresOption configures the Postgres container.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	image        string
	password     string
	database     string
	initScripts  []string
	startTimeout time.Duration
}

// WithPostgresImage sets a custom Postgres Docker image.
func WithPostgresImage(image string) PostgresOption {
	return func(c *postgresConfig) {
		c.image = image
	}
}

// WithPostgresDatabase sets the database created at startup.
func WithPostgresDatabase(name string) PostgresOption {
	return func(c *postgresConfig) {
		c.database = name
	}
}

// WithInitSQL adds SQL that runs once when the cluster is first initialized.
// Scripts run in the order they were added.
func WithInitSQL(sql string) PostgresOption {
	return func(c *postgresConfig) {
		c.initScripts = append(c.initScripts, sql)
	}
}

// WithPostgresStartTimeout sets the timeout for waiting for Postgres to accept connections.
func WithPostgresStartTimeout(timeout time.Duration) PostgresOption {
	return func(c *postgresConfig) {
		c.startTimeout = timeout
	}
}

// NewPostgresContainer creates and starts a Postgres container.
//
// Example:
//
//	pg, err := testinfra.NewPostgresContainer(ctx,
//	    testinfra.WithInitSQL("CREATE VIEW v_exec_kpis AS SELECT 1 AS total_unique_patients"),
//	)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	t.Cleanup(func() { testinfra.CleanupContainer(t, pg) })
func NewPostgresContainer(ctx context.Context, opts ...PostgresOption) (*PostgresContainer, error) {
	cfg := &postgresConfig{
		image:        DefaultPostgresImage,
		password:     DefaultPostgresPassword,
		database:     DefaultPostgresDatabase,
		startTimeout: 90 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	files := make([]testcontainers.ContainerFile, 0, len(cfg.initScripts))
	for i, script := range cfg.initScripts {
		files = append(files, testcontainers.ContainerFile{
			Reader:            strings.NewReader(script),
			ContainerFilePath: fmt.Sprintf("/docker-entrypoint-initdb.d/%03d-init.sql", i),
			FileMode:          0o644,
		})
	}

	// The entrypoint starts a temporary server for init scripts and then
	// restarts, so the ready line appears twice before the real server is up.
	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     DefaultPostgresUser,
			"POSTGRES_PASSWORD": cfg.password,
			"POSTGRES_DB":       cfg.database,
			"TZ":                "UTC",
		},
		Files: files,
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultPostgresPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		Host:      host,
		Port:      port.Port(),
		User:      DefaultPostgresUser,
		Password:  cfg.password,
		Database:  cfg.database,
	}, nil
}
