// SPDX-License-Identifier: MIT

package lpsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bplp/matrix"
)

// Flatten vectorizes m row-major: out[i*cols+j] = m[i][j].
func Flatten(m *matrix.Dense) []float64 {
	return m.Flatten()
}

// Reshape is the inverse of Flatten for an n×n matrix.
// Errors: ErrDimensionMismatch when len(x) != n², ErrNaNInf on non-finite entries.
func Reshape(x []float64, n int) (*matrix.Dense, error) {
	if n <= 0 || len(x) != n*n {
		return nil, fmt.Errorf("%w: reshape %d values into %dx%d", ErrDimensionMismatch, len(x), n, n)
	}
	m, err := matrix.NewFromVector(n, n, x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNaNInf, err)
	}

	return m, nil
}

// Program is a standard-form LP: minimize Cᵀx subject to A x = B, x ≥ 0.
// The first NumMechanism variables are vec(μ); any further ones are slacks.
type Program struct {
	C            []float64
	A            *mat.Dense
	B            []float64
	NumMechanism int
	ICRows       []int // message column of each IC row, in row order
	DroppedIC    []int // message columns without an IC row
}

// Assemble validates the inputs and builds the standard-form program.
//
// Implementation:
//   - Stage 1: shape and finiteness checks (value, ic n×n; prior length n, ≥ 0).
//   - Stage 2: cost c = −vec(V).
//   - Stage 3: n prior rows with unit coefficients on row i of μ.
//   - Stage 4: one IC row per column j with a non-zero coefficient; in
//     Obedience mode each row gets its own −1 slack column.
//
// Complexity: O(n³) to fill a dense (n + k) × (n² + s) constraint matrix.
func Assemble(value *matrix.Dense, prior []float64, ic *matrix.Dense, n int, mode ICMode) (*Program, error) {
	if err := validateInputs(value, prior, ic, n); err != nil {
		return nil, err
	}

	var (
		nn      = n * n
		icRows  = make([]int, 0, n)
		dropped []int
		i, j    int
		x       float64
	)
	for j = 0; j < n; j++ {
		zero := true
		for i = 0; i < n && zero; i++ {
			x, _ = ic.At(i, j)
			zero = x == 0
		}
		if zero {
			dropped = append(dropped, j)
			continue
		}
		icRows = append(icRows, j)
	}

	var (
		rows  = n + len(icRows)
		slack = 0
	)
	if mode == Obedience {
		slack = len(icRows)
	}
	cols := nn + slack

	c := make([]float64, cols)
	for k, v := range value.Flatten() {
		c[k] = -v
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	// Bayes plausibility: Σ_j μ[i][j] = p_i.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a.Set(i, i*n+j, 1)
		}
		b[i] = prior[i]
	}

	// Incentive compatibility: Σ_i C[i][j]·μ[i][j] (− t_r) = 0.
	for r, col := range icRows {
		row := n + r
		for i = 0; i < n; i++ {
			x, _ = ic.At(i, col)
			a.Set(row, i*n+col, x)
		}
		if mode == Obedience {
			a.Set(row, nn+r, -1)
		}
	}

	return &Program{
		C:            c,
		A:            a,
		B:            b,
		NumMechanism: nn,
		ICRows:       icRows,
		DroppedIC:    dropped,
	}, nil
}

func validateInputs(value *matrix.Dense, prior []float64, ic *matrix.Dense, n int) error {
	if n < 2 {
		return fmt.Errorf("%w: grid size %d", ErrDimensionMismatch, n)
	}
	if value == nil || ic == nil {
		return fmt.Errorf("%w: nil matrix", ErrDimensionMismatch)
	}
	if value.Rows() != n || value.Cols() != n {
		return fmt.Errorf("%w: value matrix %dx%d, want %dx%d", ErrDimensionMismatch, value.Rows(), value.Cols(), n, n)
	}
	if ic.Rows() != n || ic.Cols() != n {
		return fmt.Errorf("%w: IC matrix %dx%d, want %dx%d", ErrDimensionMismatch, ic.Rows(), ic.Cols(), n, n)
	}
	if len(prior) != n {
		return fmt.Errorf("%w: prior length %d, want %d", ErrDimensionMismatch, len(prior), n)
	}
	for i, p := range prior {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: prior[%d] = %g", ErrNaNInf, i, p)
		}
	}
	for _, m := range []*matrix.Dense{value, ic} {
		for k, v := range m.Flatten() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: entry (%d,%d) = %g", ErrNaNInf, k/n, k%n, v)
			}
		}
	}

	return nil
}
