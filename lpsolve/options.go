// SPDX-License-Identifier: MIT

package lpsolve

import (
	"io"
	"log/slog"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is handed to the simplex as its zero threshold.
	DefaultTolerance = 1e-10

	// DefaultCleanTolerance bounds the negative round-off clamped to zero.
	DefaultCleanTolerance = 1e-9

	// DefaultVerifyTolerance is the residual bound used by Verify callers
	// that have no better figure (row sums, IC functional, non-negativity).
	DefaultVerifyTolerance = 1e-6
)

const (
	panicToleranceInvalid = "lpsolve: WithTolerance: tol must be finite and > 0"
	panicCleanInvalid     = "lpsolve: WithCleanTolerance: tol must be finite and >= 0"
)

// Option configures Solve.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	Mode           ICMode
	Tolerance      float64
	CleanTolerance float64
	Logger         *slog.Logger
}

// DefaultOptions returns Indifference mode, default tolerances and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Mode:           Indifference,
		Tolerance:      DefaultTolerance,
		CleanTolerance: DefaultCleanTolerance,
		Logger:         discardLogger(),
	}
}

// WithICMode selects equality (Indifference) or inequality (Obedience) IC rows.
func WithICMode(m ICMode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithTolerance sets the simplex zero tolerance. Panics unless 0 < tol < ∞.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithCleanTolerance sets the clamp threshold for tiny negative entries.
// Panics unless 0 ≤ tol < ∞.
func WithCleanTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicCleanInvalid)
	}

	return func(o *Options) { o.CleanTolerance = tol }
}

// WithLogger routes debug records to l; nil restores the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.Logger = l
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
