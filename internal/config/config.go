// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// It is built once at process start and passed down by value or pointer;
// no component re-reads the environment after Load returns.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds every input of the three connection tiers.
//
// Port is kept as a string: a malformed DB_PORT is not a start-up error,
// it makes the discrete tier fail so resolution can fall through to the
// local tier.
type DatabaseConfig struct {
	// URL is the full connection URL (DATABASE_URL). When set it is the only tier used.
	URL string `koanf:"url"`

	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Driver selects the database/sql driver: "pgx" or "postgres" (lib/pq).
	Driver string `koanf:"driver"`

	// LocalFallback enables the localhost tier after a failed discrete tier.
	LocalFallback bool `koanf:"local_fallback"`

	// ReadOnly sets default_transaction_read_only=on for every session.
	ReadOnly bool `koanf:"read_only"`

	// ConnectTimeout bounds each tier's connect-and-ping.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// ManagedHostSuffixes lists host suffixes of hosted Postgres providers
	// that require TLS. A URL pointing at one gets sslmode=require appended.
	ManagedHostSuffixes []string `koanf:"managed_host_suffixes"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig configures the optional breaker around connection acquisition.
type CircuitBreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxFailures uint32        `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// APIConfig holds routing and pagination settings.
type APIConfig struct {
	// Prefix is prepended to every analytics route group. Empty serves them at the root.
	Prefix          string `koanf:"prefix"`
	DefaultPageSize int    `koanf:"default_page_size"`
	MaxPageSize     int    `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or CONFIG_PATH)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
