// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the reduction engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Only Rank consults the epsilon; RowEchelon, Determinant and Inverse
//     compare pivots with the scalar's exact IsZero.
//   - The logger receives Debug records only (pivot choices, rank deficiency,
//     singular pivots). The default logger drops everything.
package matrix

import (
	"context"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// DefaultRankEpsilon is the magnitude below which Rank treats an entry as zero.
const DefaultRankEpsilon = 1e-10

// Option configures reduction kernels.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	eps    float64      // Rank pivot threshold (>= 0, finite)
	logger *slog.Logger // Debug sink, never nil after gatherOptions
}

// WithEpsilon overrides the Rank zero threshold.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: WithEpsilon requires a finite eps >= 0")
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes Debug records of the reduction engine to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matrix: WithLogger requires a non-nil logger")
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{eps: DefaultRankEpsilon, logger: slog.New(discardHandler{})}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// discardHandler is a slog.Handler that is never enabled.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }
func (d discardHandler) WithGroup(string) slog.Handler { return d }
