package lpsolve

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in       error
		status   Status
		sentinel error
	}{
		{lp.ErrInfeasible, StatusInfeasible, ErrInfeasible},
		{fmt.Errorf("wrapped: %w", lp.ErrInfeasible), StatusInfeasible, ErrInfeasible},
		{lp.ErrUnbounded, StatusUnbounded, ErrUnbounded},
		{lp.ErrSingular, StatusError, ErrSolver},
		{lp.ErrBland, StatusError, ErrSolver},
		{lp.ErrZeroRow, StatusError, ErrSolver},
	}
	for _, tc := range cases {
		t.Run(tc.in.Error(), func(t *testing.T) {
			serr := classify(tc.in)
			require.Equal(t, tc.status, serr.Status)
			require.ErrorIs(t, serr, tc.sentinel)
			require.ErrorIs(t, serr, tc.in, "backend error stays in the chain")
			require.Contains(t, serr.Error(), tc.status.String())
		})
	}
	require.False(t, errors.Is(classify(lp.ErrSingular), ErrInfeasible))
}

func TestReduce_DropsDependentRows(t *testing.T) {
	// Rows: two prior rows over a 2×2 μ, then IC rows that repeat their sum.
	a := mat.NewDense(4, 4, []float64{
		1, 1, 0, 0,
		0, 0, 1, 1,
		1, 0, 1, 0,
		0, 1, 0, 1, // = row0 + row1 − row2
	})
	p := &Program{
		C:            make([]float64, 4),
		A:            a,
		B:            []float64{0.5, 0.5, 0.4, 0.6},
		NumMechanism: 4,
		ICRows:       []int{0, 1},
	}
	ra, rb, redundant := p.Reduce()
	require.Equal(t, []int{3}, redundant)
	rows, cols := ra.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, []float64{0.5, 0.5, 0.4}, rb)

	x := []float64{0.4, 0.1, 0, 0.5}
	require.InDelta(t, 0, p.rowResidual(3, x), 1e-15)
	p.B[3] = 0.7
	require.InDelta(t, 0.1, p.rowResidual(3, x), 1e-12)
}

func TestCleanMechanism(t *testing.T) {
	mu, err := cleanMechanism([]float64{0.5, -1e-12, 0.25, 0.25}, 2, DefaultCleanTolerance)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0, 0.25, 0.25}, mu.Flatten())

	mu, err = cleanMechanism([]float64{1, 1, 1, 1}, 2, DefaultCleanTolerance)
	require.NoError(t, err)
	require.InDelta(t, 1.0, mu.Sum(), 1e-15)

	_, err = cleanMechanism([]float64{1, 1, 1}, 2, DefaultCleanTolerance)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	// Scaling happens on the matrix, so the raw solver vector is untouched.
	raw := []float64{2, 0, 0, 2}
	mu, err = cleanMechanism(raw, 2, DefaultCleanTolerance)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0, 0, 0.5}, mu.Flatten())
	require.Equal(t, []float64{2, 0, 0, 2}, raw)

	_, err = cleanMechanism([]float64{math.NaN(), 0, 0, 1}, 2, DefaultCleanTolerance)
	require.ErrorIs(t, err, ErrNaNInf)
}
