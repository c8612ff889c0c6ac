// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// RowSums returns s[i] = Σ_j m[i][j].
// For a joint mechanism this is the state marginal.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[i] += m.data[i*m.c+j]
		}
	}

	return out
}

// ColSums returns s[j] = Σ_i m[i][j].
// For a joint mechanism this is the message marginal.
// Complexity: O(r*c).
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}

	return out
}

// Sum returns the total of all entries.
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// Scale multiplies every entry by alpha in place.
func (m *Dense) Scale(alpha float64) {
	for k := range m.data {
		m.data[k] *= alpha
	}
}

// Inner returns the Frobenius inner product Σ_ij a[i][j]·b[i][j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Inner(a, b *Dense) (float64, error) {
	if err := sameShape(a, b); err != nil {
		return 0, err
	}
	var s float64
	for k := range a.data {
		s += a.data[k] * b.data[k]
	}

	return s, nil
}

// ColumnInner returns out[j] = Σ_i a[i][j]·b[i][j], one weighted column sum
// per column. With a = IC coefficients and b = mechanism this evaluates
// every column's incentive functional at once.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func ColumnInner(a, b *Dense) ([]float64, error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, a.c)
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			k = i*a.c + j
			out[j] += a.data[k] * b.data[k]
		}
	}

	return out, nil
}

// sameShape validates that a and b are non-nil with identical dimensions.
func sameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}
