// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/trialscope/internal/config"
)

const (
	localHost = "localhost"
	localPort = "5432"

	// driverPQ is the database/sql name registered by lib/pq.
	driverPQ = "postgres"
)

// isManagedHost reports whether host ends with one of the managed provider suffixes.
func isManagedHost(host string, suffixes []string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if strings.HasSuffix(host, s) || host == strings.TrimPrefix(s, ".") {
			return true
		}
	}
	return false
}

// augmentURL appends sslmode=require to a URL that points at a managed host
// and carries no sslmode. Any other URL is returned byte-for-byte, which
// makes the operation idempotent.
func augmentURL(raw string, suffixes []string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if _, ok := u.Query()["sslmode"]; ok {
		return raw
	}
	if !isManagedHost(u.Hostname(), suffixes) {
		return raw
	}
	return appendParam(raw, "sslmode", "require")
}

// appendParam adds key=value to the query part of raw without re-encoding
// the rest of the string.
func appendParam(raw, key, value string) string {
	frag := ""
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw, frag = raw[:i], raw[i:]
	}
	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
		if strings.HasSuffix(raw, "?") || strings.HasSuffix(raw, "&") {
			sep = ""
		}
	}
	return raw + sep + url.QueryEscape(key) + "=" + url.QueryEscape(value) + frag
}

// parsePort validates a port string from configuration.
func parsePort(port string) (string, error) {
	p := strings.TrimSpace(port)
	n, err := strconv.Atoi(p)
	if err != nil {
		return "", &ConfigurationError{Field: "DB_PORT", Reason: strconv.Quote(port) + " is not a number"}
	}
	if n < 1 || n > 65535 {
		return "", &ConfigurationError{Field: "DB_PORT", Reason: strconv.Quote(port) + " is out of range 1-65535"}
	}
	return p, nil
}

// buildURL assembles a postgres:// URL from discrete fields. Credentials and
// the database name are escaped, so passwords containing '@' or '/' are safe.
func buildURL(host, port string, cfg *config.DatabaseConfig, sslmode string) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + cfg.Name,
	}
	switch {
	case cfg.Password != "":
		u.User = url.UserPassword(cfg.User, cfg.Password)
	case cfg.User != "":
		u.User = url.User(cfg.User)
	}
	if sslmode != "" {
		q := url.Values{}
		q.Set("sslmode", sslmode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// discreteDSN builds the tier 2 URL with forced TLS.
func discreteDSN(cfg *config.DatabaseConfig) (string, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = localHost
	}
	port, err := parsePort(cfg.Port)
	if err != nil {
		return "", err
	}
	return buildURL(host, port, cfg, "require"), nil
}

// localDSN builds the tier 3 URL: fixed host and port, TLS not forced.
// pgx negotiates with its default sslmode=prefer. lib/pq has no prefer
// mode and defaults to require, so it gets sslmode=disable.
func localDSN(cfg *config.DatabaseConfig) string {
	sslmode := ""
	if cfg.Driver == driverPQ {
		sslmode = "disable"
	}
	return buildURL(localHost, localPort, cfg, sslmode)
}

// withSessionParams adds runtime parameters that apply to every tier.
func withSessionParams(dsn string, cfg *config.DatabaseConfig) string {
	if cfg.ReadOnly {
		dsn = appendParam(dsn, "default_transaction_read_only", "on")
	}
	return dsn
}
