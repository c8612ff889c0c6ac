// SPDX-License-Identifier: MIT

// Package discretize turns a problem.Spec into the vectors and matrices of
// the persuasion linear program.
//
// Grid & notation:
//
//	s_i = m_i = Lower + i·h,  h = (Upper − Lower)/(n − 1),  i = 0..n−1
//
// The same nodes serve as states s_i (rows) and messages m_j (columns).
//
// Builders:
//
//   - Grid:        the n nodes (endpoints inclusive, deterministic).
//   - ValueMatrix: V[i][j] = v(s_i, m_j).
//   - Prior:       p_i = prior(s_i) / Σ_k prior(s_k).
//   - IC:          C[i][j], the weight of μ[i][j] in message j's incentive
//     functional IC_j(μ) = Σ_i C[i][j]·μ[i][j].
//
// Incentive coefficients & quadrature:
//
//	A message m_j is a cutoff recommendation: the receiver whose private
//	signal sits at the cutoff must not gain by deviating. The coefficient
//	averages u·g over the cutoff cell of width h centred at m_j:
//
//	  C[i][j] = (1/h) ∫_{m_j−h/2}^{m_j+h/2} u(s_i, r)·g(s_i, r) dr
//
//	approximated with a composite rule (Midpoint, Trapezoid, Simpson) over k
//	sub-intervals. The default Midpoint with k = 1 is a single evaluation at
//	r = m_j and is exact whenever u·g is affine in r. The cell is not
//	clipped to the domain: with k > 1 or non-midpoint rules the callables
//	are sampled up to h/2 outside [Lower, Upper].
//
// Accuracy depends only on n; there is no adaptive refinement.
//
// Errors:
//
//   - *problem.ConfigurationError before any allocation when the Spec is invalid.
//   - *EvaluationError (errors.Is(err, ErrEvaluation)) with grid indices when a
//     callable panics, returns NaN/±Inf, or returns a negative density.
package discretize
