// SPDX-License-Identifier: MIT

// Package lpsolve turns the discretized persuasion problem into a
// standard-form linear program, solves it with gonum's simplex and reshapes
// the optimum into a joint mechanism μ over (state, message) pairs.
//
// Vectorization:
//
//	x[i*n + j] = μ[i][j]   (row-major; Flatten / Reshape are exact inverses)
//
// Program (standard form, min cᵀx, A x = b, x ≥ 0):
//
//	c = −vec(V)                          sender utility, negated to maximize
//	Σ_j μ[i][j]          = p_i           i = 0..n−1   Bayes plausibility
//	Σ_i C[i][j]·μ[i][j]  = 0             j kept        Indifference mode
//	Σ_i C[i][j]·μ[i][j] − t_j = 0, t ≥ 0 j kept        Obedience mode (IC_j ≥ 0)
//
// An IC row whose coefficients are all zero is trivially satisfied and is
// dropped before the solve (the simplex rejects all-zero rows). IC rows that
// are linear combinations of earlier rows are removed as well, since the
// simplex requires full row rank; they are re-checked at the optimum and a
// violated one is reported as infeasible.
//
// Post-processing:
//
//	Entries in (−CleanTolerance, 0) are clamped to 0 and μ is rescaled to
//	unit mass. Residuals of both constraint families are reported in the
//	result; Verify re-checks them against a caller tolerance.
//
// Errors:
//
//   - ErrDimensionMismatch / ErrNaNInf for malformed inputs (no solve attempted).
//   - *SolverError for backend outcomes; errors.Is matches ErrInfeasible,
//     ErrUnbounded or ErrSolver according to SolverError.Status, and the
//     gonum error is preserved in the chain.
//
// Complexity: the program has n² (+ n slack) variables and at most 2n rows;
// simplex cost dominates and grows at least quadratically in n.
package lpsolve
