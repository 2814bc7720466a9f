// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

// Package testinfra starts real backing services in Docker for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # Postgres Container
//
// NewPostgresContainer starts a disposable Postgres with optional init SQL,
// which is how integration tests create the reporting views the API reads:
//
//	func TestExecutorAgainstPostgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(ctx, testinfra.WithInitSQL(schema))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    t.Cleanup(func() { testinfra.CleanupContainer(t, pg) })
//
//	    cfg := config.DatabaseConfig{URL: pg.URL(), Driver: "pgx"}
//	    exec := database.NewExecutor(database.NewConnector(cfg))
//	    // ...
//	}
//
// Tests are skipped when Docker is unavailable. The first run pulls the image.
package testinfra
