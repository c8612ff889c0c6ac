// SPDX-License-Identifier: MIT

package bplp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/lpsolve"
	"github.com/katalvlaran/bplp/problem"
)

// Solve validates spec, discretizes it and solves the resulting program.
//
// Status transitions are logged at debug level:
//
//	initialized → building → solving → solved | infeasible | unbounded | error
//
// Errors are returned unchanged from the failing stage: *problem.ConfigurationError,
// *discretize.EvaluationError, *lpsolve.SolverError or a ctx error.
func Solve(ctx context.Context, spec problem.Spec, opts ...Option) (*lpsolve.MechanismResult, error) {
	o := gatherOptions(opts...)

	return solve(ctx, spec, o)
}

func solve(ctx context.Context, spec problem.Spec, o Options) (*lpsolve.MechanismResult, error) {
	log := o.Logger.With(slog.String("scenario", spec.Label()), slog.Int("n", spec.GridSize))
	log.Debug("status", slog.String("state", lpsolve.StatusInitialized.String()))

	if err := spec.Validate(); err != nil {
		log.Debug("status", slog.String("state", lpsolve.StatusError.String()), slog.Any("err", err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("status", slog.String("state", lpsolve.StatusBuilding.String()))
	sys, err := discretize.Build(spec, o.Discretize...)
	if err != nil {
		log.Debug("status", slog.String("state", lpsolve.StatusError.String()), slog.Any("err", err))
		return nil, err
	}

	log.Debug("status", slog.String("state", lpsolve.StatusSolving.String()))
	solverOpts := append([]lpsolve.Option{lpsolve.WithLogger(log)}, o.Solver...)
	res, err := lpsolve.SolveSystem(ctx, sys, solverOpts...)
	if err != nil {
		state := lpsolve.StatusError
		var serr *lpsolve.SolverError
		if errors.As(err, &serr) {
			state = serr.Status
		}
		log.Debug("status", slog.String("state", state.String()), slog.Any("err", err))
		return nil, err
	}

	log.Debug("status",
		slog.String("state", res.Status.String()),
		slog.Float64("value", res.Value),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// SolveBatch solves independent specs concurrently, at most Parallelism at a
// time. Results are in input order. The first failure cancels the remaining
// solves that have not started and is returned wrapped with its index.
func SolveBatch(ctx context.Context, specs []problem.Spec, opts ...Option) ([]*lpsolve.MechanismResult, error) {
	o := gatherOptions(opts...)
	out := make([]*lpsolve.MechanismResult, len(specs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i := range specs {
		i := i
		g.Go(func() error {
			res, err := solve(gCtx, specs[i], o)
			if err != nil {
				return fmt.Errorf("bplp: spec %d (%s): %w", i, specs[i].Label(), err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.Logger.Debug("batch solved", slog.Int("specs", len(specs)))

	return out, nil
}
