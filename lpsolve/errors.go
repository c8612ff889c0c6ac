// SPDX-License-Identifier: MIT

package lpsolve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	// ErrInfeasible: no mechanism satisfies Bayes plausibility and IC at this resolution.
	ErrInfeasible = errors.New("lpsolve: problem is infeasible")

	// ErrUnbounded should be unreachable under x ≥ 0 and the prior rows;
	// seeing it indicates an internal-consistency fault.
	ErrUnbounded = errors.New("lpsolve: problem is unbounded")

	// ErrSolver covers every other backend failure (singular basis, Bland
	// cycling guard, linear-solve breakdown).
	ErrSolver = errors.New("lpsolve: solver failure")

	// ErrDimensionMismatch: input shapes disagree with the grid size.
	ErrDimensionMismatch = errors.New("lpsolve: dimension mismatch")

	// ErrNaNInf: a NaN/±Inf input entry or a negative prior mass.
	ErrNaNInf = errors.New("lpsolve: invalid numeric input")

	// ErrVerification: a returned mechanism violates a constraint beyond tolerance.
	ErrVerification = errors.New("lpsolve: verification failed")
)

// SolverError carries the terminal status and the backend error verbatim.
type SolverError struct {
	Status Status
	Err    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("lpsolve: %s: %v", e.Status, e.Err)
}

// Unwrap yields the status sentinel followed by the backend error.
func (e *SolverError) Unwrap() []error {
	var sentinel error
	switch e.Status {
	case StatusInfeasible:
		sentinel = ErrInfeasible
	case StatusUnbounded:
		sentinel = ErrUnbounded
	default:
		sentinel = ErrSolver
	}

	return []error{sentinel, e.Err}
}

// classify maps a gonum lp error to a *SolverError.
func classify(err error) *SolverError {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return &SolverError{Status: StatusInfeasible, Err: err}
	case errors.Is(err, lp.ErrUnbounded):
		return &SolverError{Status: StatusUnbounded, Err: err}
	default:
		return &SolverError{Status: StatusError, Err: err}
	}
}
