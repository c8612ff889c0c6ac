// SPDX-License-Identifier: MIT

package lpsolve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rankTol is the relative residual below which a row counts as dependent.
const rankTol = 1e-9

// redundantTol bounds the residual of a removed row, relative to 1+|b|.
const redundantTol = 1e-7

// Reduce drops rows of A that are linear combinations of earlier rows so the
// simplex sees a full-row-rank system. Rows are scanned in order with
// modified Gram–Schmidt; the n prior rows have disjoint supports and are
// therefore always kept, only IC rows can be removed.
//
// Returns the reduced (A, B) and the indices of the removed rows; when no
// row is removed the original A and B are returned as-is.
//
// Complexity: O(rows² · vars).
func (p *Program) Reduce() (*mat.Dense, []float64, []int) {
	rows, cols := p.A.Dims()
	var (
		basis     = make([][]float64, 0, rows)
		keep      = make([]int, 0, rows)
		redundant []int
	)
	for i := 0; i < rows; i++ {
		v := mat.Row(nil, i, p.A)
		norm0 := floats.Norm(v, 2)
		for _, q := range basis {
			floats.AddScaled(v, -floats.Dot(q, v), q)
		}
		norm := floats.Norm(v, 2)
		if norm0 == 0 || norm <= rankTol*norm0 {
			redundant = append(redundant, i)
			continue
		}
		floats.Scale(1/norm, v)
		basis = append(basis, v)
		keep = append(keep, i)
	}
	if len(redundant) == 0 {
		return p.A, p.B, nil
	}

	a := mat.NewDense(len(keep), cols, nil)
	b := make([]float64, len(keep))
	for r, i := range keep {
		a.SetRow(r, mat.Row(nil, i, p.A))
		b[r] = p.B[i]
	}

	return a, b, redundant
}

// rowResidual returns |A[i]·x − B[i]| for a full-length solution x.
func (p *Program) rowResidual(i int, x []float64) float64 {
	return math.Abs(floats.Dot(mat.Row(nil, i, p.A), x) - p.B[i])
}
