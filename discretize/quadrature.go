// SPDX-License-Identifier: MIT

package discretize

import "gonum.org/v1/gonum/integrate"

// cellRule averages an integrand over [c − h/2, c + h/2] with a composite rule.
type cellRule struct {
	rule Rule
	k    int     // sub-intervals (even for Simpson)
	h    float64 // cell width = grid spacing
}

func newCellRule(rule Rule, k int, h float64) cellRule {
	if k < 1 {
		k = 1
	}
	if rule == Simpson && k%2 == 1 {
		k++
	}

	return cellRule{rule: rule, k: k, h: h}
}

// average returns (1/h)·∫ f over the cell centred at c.
// All three rules reproduce constants and are exact for affine integrands
// because the cell is symmetric. Nodes are offsets from c, so Midpoint with
// k = 1 samples c exactly. The first error returned by f aborts the evaluation.
//
// Trapezoid and Simpson sample the k+1 cell nodes through f and hand them to
// gonum's integrate package; gonum has no composite midpoint rule, so
// Midpoint is summed here.
func (q cellRule) average(c float64, f func(float64) (float64, error)) (float64, error) {
	var (
		w    = q.h / float64(q.k)
		half = float64(q.k) / 2
		sum  float64
		fx   float64
		err  error
		t    int
	)

	if q.rule != Trapezoid && q.rule != Simpson {
		for t = 0; t < q.k; t++ {
			if fx, err = f(c + (float64(t)+0.5-half)*w); err != nil {
				return 0, err
			}
			sum += fx
		}

		return sum / float64(q.k), nil
	}

	var (
		xs = make([]float64, q.k+1)
		fs = make([]float64, q.k+1)
	)
	for t = 0; t <= q.k; t++ {
		xs[t] = c + (float64(t)-half)*w
		if fs[t], err = f(xs[t]); err != nil {
			return 0, err
		}
	}
	if q.rule == Simpson {
		return integrate.Simpsons(xs, fs) / q.h, nil
	}

	return integrate.Trapezoidal(xs, fs) / q.h, nil
}
