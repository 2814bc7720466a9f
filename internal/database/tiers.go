// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/logging"
)

// TierName identifies a source of connection parameters.
type TierName string

const (
	TierURL      TierName = "url"
	TierDiscrete TierName = "discrete"
	TierLocal    TierName = "local"
)

// Tier is one prioritized way of building a DSN.
type Tier struct {
	Name TierName
	dsn  func() (string, error)
}

// DSN returns the tier's connection string, or a ConfigurationError when
// the configuration for this tier is malformed.
func (t Tier) DSN() (string, error) {
	return t.dsn()
}

// TierResult is the outcome of one tier attempt.
type TierResult struct {
	Tier TierName
	Conn Conn
	Err  error
}

// planTiers returns the tiers to try, highest priority first.
// A configured URL is the only tier: its failure is final.
func planTiers(cfg *config.DatabaseConfig) []Tier {
	if cfg.URL != "" {
		return []Tier{{
			Name: TierURL,
			dsn: func() (string, error) {
				return withSessionParams(augmentURL(cfg.URL, cfg.ManagedHostSuffixes), cfg), nil
			},
		}}
	}

	tiers := []Tier{{
		Name: TierDiscrete,
		dsn: func() (string, error) {
			dsn, err := discreteDSN(cfg)
			if err != nil {
				return "", err
			}
			return withSessionParams(dsn, cfg), nil
		},
	}}
	if cfg.LocalFallback {
		tiers = append(tiers, Tier{
			Name: TierLocal,
			dsn: func() (string, error) {
				return withSessionParams(localDSN(cfg), cfg), nil
			},
		})
	}
	return tiers
}

// PlannedTier describes a tier for operators without connecting.
type PlannedTier struct {
	Name TierName
	// DSN has its password redacted. Empty when Err is set.
	DSN string
	Err error
}

// Describe returns the tier plan for cfg with secrets redacted.
func Describe(cfg config.DatabaseConfig) []PlannedTier {
	tiers := planTiers(&cfg)
	out := make([]PlannedTier, 0, len(tiers))
	for _, t := range tiers {
		dsn, err := t.DSN()
		p := PlannedTier{Name: t.Name, Err: err}
		if err == nil {
			p.DSN = logging.RedactDSN(dsn)
		}
		out = append(out, p)
	}
	return out
}
