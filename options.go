// SPDX-License-Identifier: MIT

package bplp

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/lpsolve"
)

const panicParallelism = "bplp: WithParallelism: limit must be >= 1"

// Option configures Solve and SolveBatch.
type Option func(*Options)

// Options is the resolved pipeline configuration.
type Options struct {
	Discretize  []discretize.Option
	Solver      []lpsolve.Option
	Logger      *slog.Logger
	Parallelism int // SolveBatch worker limit
}

// DefaultOptions returns default discretization and solver settings, a
// discarding logger and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithDiscretize appends options passed to discretize.Build.
func WithDiscretize(opts ...discretize.Option) Option {
	return func(o *Options) { o.Discretize = append(o.Discretize, opts...) }
}

// WithSolver appends options passed to lpsolve.SolveSystem.
func WithSolver(opts ...lpsolve.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
}

// WithLogger sets the pipeline logger; it is also handed to the solver.
// nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelism bounds the number of concurrent solves in SolveBatch.
// Panics if limit < 1.
func WithParallelism(limit int) Option {
	if limit < 1 {
		panic(panicParallelism)
	}

	return func(o *Options) { o.Parallelism = limit }
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
