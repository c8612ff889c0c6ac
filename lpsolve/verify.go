// SPDX-License-Identifier: MIT

package lpsolve

import (
	"fmt"
	"math"
)

// Verify re-checks the solved mechanism against tol:
//   - row-sum law: |Σ_j μ[i][j] − p_i| ≤ tol for every state i;
//   - non-negativity: μ[i][j] ≥ −tol;
//   - IC: for every message column with positive mass, IC_j(μ) ≥ −tol, and
//     additionally |IC_j(μ)| ≤ tol in Indifference mode.
//
// The first violation is returned wrapped in ErrVerification.
// Complexity: O(n²).
func (r *MechanismResult) Verify(tol float64) error {
	if r == nil || r.Mechanism == nil {
		return fmt.Errorf("%w: empty result", ErrVerification)
	}
	for i, d := range r.PriorResidual {
		if math.Abs(d) > tol {
			return fmt.Errorf("%w: row %d sums off prior by %g", ErrVerification, i, d)
		}
	}
	n := r.GridSize
	for k, v := range r.Mechanism.Flatten() {
		if v < -tol {
			return fmt.Errorf("%w: mu[%d][%d] = %g < 0", ErrVerification, k/n, k%n, v)
		}
	}
	mass := r.Mechanism.ColSums()
	for j, v := range r.ICResidual {
		if mass[j] <= 0 {
			continue
		}
		if v < -tol || (r.Mode == Indifference && v > tol) {
			return fmt.Errorf("%w: IC functional of message %d is %g", ErrVerification, j, v)
		}
	}

	return nil
}

// MessageMarginal returns the probability of sending each message.
func (r *MechanismResult) MessageMarginal() []float64 {
	return r.Mechanism.ColSums()
}

// Posterior returns the conditional state distribution given message j.
// ok is false when j is out of range or message j is never sent.
func (r *MechanismResult) Posterior(j int) (post []float64, ok bool) {
	col, err := r.Mechanism.Col(j)
	if err != nil {
		return nil, false
	}
	var mass float64
	for _, v := range col {
		mass += v
	}
	if mass <= 0 {
		return nil, false
	}
	for i := range col {
		col[i] /= mass
	}

	return col, true
}

// PosteriorMean returns E[s | m_j]. ok is false when Posterior(j) is
// undefined or the result carries no grid.
func (r *MechanismResult) PosteriorMean(j int) (mean float64, ok bool) {
	post, ok := r.Posterior(j)
	if !ok || len(r.Grid) != len(post) {
		return 0, false
	}
	for i, p := range post {
		mean += p * r.Grid[i]
	}

	return mean, true
}

// Cell is one (state, message) pair carrying mass.
type Cell struct {
	State   int
	Message int
	Mass    float64
}

// Support lists cells with mass > tol in row-major order.
func (r *MechanismResult) Support(tol float64) []Cell {
	var (
		n   = r.GridSize
		out []Cell
	)
	for k, v := range r.Mechanism.Flatten() {
		if v > tol {
			out = append(out, Cell{State: k / n, Message: k % n, Mass: v})
		}
	}

	return out
}
