// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/database"
)

type queryCall struct {
	query  string
	params []any
}

// fakeStore answers queries by exact SQL text. Unknown statements return
// no rows.
type fakeStore struct {
	mu      sync.Mutex
	rows    map[string][]database.Row
	dynamic map[string]func(params []any) []database.Row
	errs    map[string]error
	pingErr error
	calls   []queryCall
	pings   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:    make(map[string][]database.Row),
		dynamic: make(map[string]func([]any) []database.Row),
		errs:    make(map[string]error),
	}
}

func (f *fakeStore) Run(_ context.Context, query string, params ...any) ([]database.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, queryCall{query: query, params: params})
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if fn, ok := f.dynamic[query]; ok {
		return fn(params), nil
	}
	return f.rows[query], nil
}

func (f *fakeStore) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeStore) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.query
	}
	return out
}

func (f *fakeStore) set(query string, rows ...database.Row) {
	f.rows[query] = rows
}

func row(cols []string, vals ...any) database.Row {
	return database.NewRow(cols, vals)
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			Prefix:          "/api",
			DefaultPageSize: 50,
			MaxPageSize:     1000,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     600,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
	}
}

// newTestServer builds the full chi handler over store.
func newTestServer(t *testing.T, store Store, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return NewRouter(NewHandler(store, cfg.API), cfg).SetupChi()
}

func newGet(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(h, newGet(target))
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return rec.Body.String()
}
