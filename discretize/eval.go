// SPDX-License-Identifier: MIT

package discretize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bplp/problem"
)

// Function labels used in EvaluationError.Func.
const (
	fnSender   = "SenderUtility"
	fnPrior    = "PriorDensity"
	fnReceiver = "ReceiverUtility"
	fnSignal   = "SignalDensity"
)

// call2 evaluates f(x, y), converting panics and non-finite results into an
// EvaluationError at (row, col). nonNegative additionally rejects v < 0.
func call2(name string, f problem.Bivariate, x, y float64, row, col int, nonNegative bool) (v float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, err = 0, &EvaluationError{
				Func: name, Row: row, Col: col, Reason: ReasonPanic,
				Cause: fmt.Errorf("%v", rec),
			}
		}
	}()
	v = f(x, y)

	return v, check(name, v, row, col, nonNegative)
}

// call1 is call2 for univariate callables.
func call1(name string, f problem.Univariate, x float64, row int, nonNegative bool) (v float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, err = 0, &EvaluationError{
				Func: name, Row: row, Col: NoIndex, Reason: ReasonPanic,
				Cause: fmt.Errorf("%v", rec),
			}
		}
	}()
	v = f(x)

	return v, check(name, v, row, NoIndex, nonNegative)
}

func check(name string, v float64, row, col int, nonNegative bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &EvaluationError{Func: name, Row: row, Col: col, Value: v, Reason: ReasonNonFinite}
	}
	if nonNegative && v < 0 {
		return &EvaluationError{Func: name, Row: row, Col: col, Value: v, Reason: ReasonNegative}
	}

	return nil
}
