// SPDX-License-Identifier: MIT

package discretize

import (
	"fmt"

	"github.com/katalvlaran/bplp/matrix"
	"github.com/katalvlaran/bplp/problem"
)

// System bundles everything the LP adapter needs for one solve.
// It is built fresh per call and owned by the caller.
type System struct {
	Grid  []float64
	Value *matrix.Dense // V[i][j] = v(s_i, m_j)
	Prior []float64     // normalized prior mass, Σ = 1
	IC    *matrix.Dense // C[i][j], incentive weight of μ[i][j]
}

// Build validates spec and runs Grid → ValueMatrix → Prior → IC.
//
// Errors: *problem.ConfigurationError (before any matrix is allocated),
// *EvaluationError from the first failing builder.
//
// Complexity: O(n²·k) callable evaluations, k = quadrature nodes per cell.
func Build(spec problem.Spec, opts ...Option) (*System, error) {
	grid, err := Grid(spec)
	if err != nil {
		return nil, err
	}
	value, err := ValueMatrix(spec, grid)
	if err != nil {
		return nil, err
	}
	prior, err := Prior(spec, grid)
	if err != nil {
		return nil, err
	}
	ic, err := IC(spec, grid, opts...)
	if err != nil {
		return nil, err
	}

	return &System{Grid: grid, Value: value, Prior: prior, IC: ic}, nil
}

// ValueMatrix evaluates the sender utility on every (state, message) pair.
//
// Errors: *problem.ConfigurationError; *EvaluationError{Func: "SenderUtility",
// Row: i, Col: j} on a panic or a non-finite value.
//
// Complexity: O(n²) evaluations.
func ValueMatrix(spec problem.Spec, grid []float64) (*matrix.Dense, error) {
	n, err := checkGrid(spec, grid)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ { // states
		for j = 0; j < n; j++ { // messages
			if x, err = call2(fnSender, spec.SenderUtility, grid[i], grid[j], i, j, false); err != nil {
				return nil, err
			}
			if err = v.Set(i, j, x); err != nil {
				return nil, &EvaluationError{Func: fnSender, Row: i, Col: j, Value: x, Reason: ReasonNonFinite}
			}
		}
	}

	return v, nil
}

// Prior evaluates the prior density at each state node and normalizes it to
// a probability mass function.
//
// Errors: *problem.ConfigurationError; *EvaluationError{Func: "PriorDensity",
// Row: i} on a negative, non-finite or panicking evaluation;
// *EvaluationError{Reason: ReasonZeroMass, Row: NoIndex} when Σ prior = 0.
//
// Complexity: O(n).
func Prior(spec problem.Spec, grid []float64) ([]float64, error) {
	n, err := checkGrid(spec, grid)
	if err != nil {
		return nil, err
	}

	var (
		out   = make([]float64, n)
		total float64
		i     int
	)
	for i = 0; i < n; i++ {
		if out[i], err = call1(fnPrior, spec.PriorDensity, grid[i], i, true); err != nil {
			return nil, err
		}
		total += out[i]
	}
	if total <= 0 {
		return nil, &EvaluationError{Func: fnPrior, Row: NoIndex, Col: NoIndex, Reason: ReasonZeroMass}
	}
	if err = check(fnPrior, total, NoIndex, NoIndex, false); err != nil {
		return nil, err // overflow of the sum
	}
	for i = 0; i < n; i++ {
		out[i] /= total
	}

	return out, nil
}

// IC builds the incentive coefficient matrix C. Column j holds the weights of
// message j's functional IC_j(μ) = Σ_i C[i][j]·μ[i][j]; see the package
// documentation for the quadrature over the cutoff cell.
//
// Errors: *problem.ConfigurationError; *EvaluationError{Row: i, Col: j} naming
// ReceiverUtility or SignalDensity (negative density is rejected).
//
// Complexity: O(n²·k) evaluations of each callable.
func IC(spec problem.Spec, grid []float64, opts ...Option) (*matrix.Dense, error) {
	n, err := checkGrid(spec, grid)
	if err != nil {
		return nil, err
	}
	var (
		o     = gatherOptions(opts...)
		rule  = newCellRule(o.Rule, o.Subintervals, Spacing(spec))
		c     *matrix.Dense
		i, j  int
		coeff float64
	)
	if c, err = matrix.NewDense(n, n); err != nil {
		return nil, err
	}

	for i = 0; i < n; i++ { // states
		s := grid[i]
		for j = 0; j < n; j++ { // messages (cutoffs)
			coeff, err = rule.average(grid[j], func(r float64) (float64, error) {
				u, uerr := call2(fnReceiver, spec.ReceiverUtility, s, r, i, j, false)
				if uerr != nil {
					return 0, uerr
				}
				g, gerr := call2(fnSignal, spec.SignalDensity, s, r, i, j, true)
				if gerr != nil {
					return 0, gerr
				}

				return u * g, nil
			})
			if err != nil {
				return nil, err
			}
			if err = c.Set(i, j, coeff); err != nil {
				// u·g overflowed to ±Inf even though both factors were finite.
				return nil, &EvaluationError{Func: fnReceiver, Row: i, Col: j, Value: coeff, Reason: ReasonNonFinite}
			}
		}
	}

	return c, nil
}

// checkGrid validates spec and that grid matches its resolution.
func checkGrid(spec problem.Spec, grid []float64) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	if len(grid) != spec.GridSize {
		return 0, &problem.ConfigurationError{
			Field:  "GridSize",
			Reason: fmt.Sprintf("grid has %d nodes, spec expects %d", len(grid), spec.GridSize),
		}
	}

	return spec.GridSize, nil
}
