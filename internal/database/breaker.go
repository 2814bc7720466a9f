// Trialscope - Clinical Trial Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trialscope

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/trialscope/internal/config"
	"github.com/tomtom215/trialscope/internal/logging"
	"github.com/tomtom215/trialscope/internal/metrics"
)

// TierBreaker names the pseudo-tier reported when the breaker rejects a call.
const TierBreaker TierName = "circuit-breaker"

const breakerName = "postgres-connect"

// BreakerConnector fails fast while the database is known to be down.
// Only connection acquisition is guarded; query errors never trip it.
type BreakerConnector struct {
	next Connector
	cb   *gobreaker.CircuitBreaker[Conn]
}

// NewBreakerConnector wraps next with a breaker that opens after
// cfg.MaxFailures consecutive connection failures and stays open for cfg.Timeout.
func NewBreakerConnector(next Connector, cfg config.CircuitBreakerConfig) *BreakerConnector {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[Conn](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// A client hanging up is not evidence that the database is down.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerConnector{next: next, cb: cb}
}

// Connect delegates to the wrapped connector unless the breaker is open.
func (b *BreakerConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := b.cb.Execute(func() (Conn, error) {
		return b.next.Connect(ctx)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return conn, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		return nil, &ConnectionError{Tier: TierBreaker, Err: err}
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, err
	}
}

// State returns the current breaker state.
func (b *BreakerConnector) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
