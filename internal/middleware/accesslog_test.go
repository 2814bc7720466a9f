// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/trialscope/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() {
		logging.SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestAccessLog_WritesOneLinePerRequest(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestID(AccessLog(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/exec/kpis?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn for a 5xx", entry["level"])
	}
	if entry["status"] != float64(500) || entry["request_id"] != "req-123" || entry["path"] != "/api/exec/kpis" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["bytes"] != float64(len(`{"detail":"boom"}`)) {
		t.Errorf("bytes = %v", entry["bytes"])
	}
}

func TestAccessLog_SuccessLogsAtDebug(t *testing.T) {
	buf := captureLogs(t)

	handler := AccessLog(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if !strings.Contains(buf.String(), `"level":"debug"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
