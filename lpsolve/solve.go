// SPDX-License-Identifier: MIT

package lpsolve

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/matrix"
)

// Solve finds the sender-optimal mechanism for the given value matrix,
// normalized prior and IC coefficient matrix on an n-node grid.
//
// Stages:
//  1. Assemble the standard-form program (see package doc).
//  2. Check ctx once; the simplex itself is not interruptible.
//  3. Drop linearly dependent rows, run lp.Simplex, then check the dropped
//     rows at the optimum; backend errors become *SolverError.
//  4. Reshape vec(μ), clamp round-off, rescale to unit mass.
//  5. Compute value and residual diagnostics.
//
// A single deterministic solve per call; no retries.
func Solve(ctx context.Context, value *matrix.Dense, prior []float64, ic *matrix.Dense, n int, opts ...Option) (*MechanismResult, error) {
	o := gatherOptions(opts...)
	log := o.Logger.With(slog.Int("n", n), slog.String("mode", o.Mode.String()))

	prog, err := Assemble(value, prior, ic, n, o.Mode)
	if err != nil {
		return nil, err
	}
	rows, cols := prog.A.Dims()
	log.Debug("lp assembled",
		slog.Int("rows", rows),
		slog.Int("vars", cols),
		slog.Any("dropped_ic", prog.DroppedIC))

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	a, b, redundant := prog.Reduce()
	_, x, err := lp.Simplex(prog.C, a, b, o.Tolerance, nil)
	elapsed := time.Since(start)
	if err != nil {
		serr := classify(err)
		log.Debug("lp failed", slog.String("status", serr.Status.String()), slog.Any("err", err))

		return nil, serr
	}

	// Rows removed by Reduce must still hold at the optimum; an inconsistent
	// dependent row means the original system has no feasible point.
	redundantIC := make([]int, 0, len(redundant))
	for _, row := range redundant {
		if d := prog.rowResidual(row, x); d > redundantTol*(1+math.Abs(prog.B[row])) {
			log.Debug("dependent constraint violated", slog.Int("row", row), slog.Float64("residual", d))

			return nil, &SolverError{Status: StatusInfeasible, Err: fmt.Errorf("dependent constraint row %d off by %g", row, d)}
		}
		if row >= n {
			redundantIC = append(redundantIC, prog.ICRows[row-n])
		}
	}
	if len(redundantIC) > 0 {
		log.Debug("redundant IC rows removed", slog.Any("columns", redundantIC))
	}

	mu, err := cleanMechanism(x[:prog.NumMechanism], n, o.CleanTolerance)
	if err != nil {
		return nil, &SolverError{Status: StatusError, Err: err}
	}

	res := &MechanismResult{
		GridSize:    n,
		Mechanism:   mu,
		Prior:       append([]float64(nil), prior...),
		IC:          ic.Clone(),
		ICBound:     make([]float64, n),
		ValueMatrix: value.Clone(),
		Mode:        o.Mode,
		Status:      StatusSolved,
		DroppedIC:   prog.DroppedIC,
		RedundantIC: redundantIC,
		Elapsed:     elapsed,
	}
	if err = res.diagnose(); err != nil {
		return nil, &SolverError{Status: StatusError, Err: err}
	}
	log.Debug("lp solved",
		slog.Float64("value", res.Value),
		slog.Float64("max_prior_violation", res.MaxPriorViolation),
		slog.Duration("elapsed", elapsed))

	return res, nil
}

// SolveSystem is Solve over the output of discretize.Build; the result also
// carries the grid.
func SolveSystem(ctx context.Context, sys *discretize.System, opts ...Option) (*MechanismResult, error) {
	if sys == nil {
		return nil, ErrDimensionMismatch
	}
	res, err := Solve(ctx, sys.Value, sys.Prior, sys.IC, len(sys.Grid), opts...)
	if err != nil {
		return nil, err
	}
	res.Grid = append([]float64(nil), sys.Grid...)

	return res, nil
}

// cleanMechanism clamps entries in (−tol, 0) to zero, reshapes and rescales
// to unit total mass.
func cleanMechanism(x []float64, n int, tol float64) (*matrix.Dense, error) {
	v := append([]float64(nil), x...)
	for k := range v {
		if v[k] < 0 && v[k] > -tol {
			v[k] = 0
		}
	}
	mu, err := Reshape(v, n)
	if err != nil {
		return nil, err
	}
	if total := mu.Sum(); total > 0 && !math.IsInf(total, 0) {
		mu.Scale(1 / total)
	}

	return mu, nil
}

// diagnose fills Value and the residual fields from Mechanism.
func (r *MechanismResult) diagnose() error {
	var err error
	if r.Value, err = matrix.Inner(r.ValueMatrix, r.Mechanism); err != nil {
		return err
	}

	r.PriorResidual = r.Mechanism.RowSums()
	floats.Sub(r.PriorResidual, r.Prior)
	r.MaxPriorViolation = floats.Norm(r.PriorResidual, math.Inf(1))

	if r.ICResidual, err = matrix.ColumnInner(r.IC, r.Mechanism); err != nil {
		return err
	}
	var (
		mass   = r.Mechanism.ColSums()
		lowest = math.Inf(1)
	)
	for j, v := range r.ICResidual {
		if mass[j] > 0 && v < lowest {
			lowest = v
		}
	}
	if math.IsInf(lowest, 1) {
		lowest = 0
	}
	r.MinIC = lowest

	return nil
}
