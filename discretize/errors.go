// SPDX-License-Identifier: MIT

package discretize

import (
	"errors"
	"fmt"
)

// ErrEvaluation is the sentinel behind every *EvaluationError.
var ErrEvaluation = errors.New("discretize: evaluation failed")

// NoIndex marks an EvaluationError coordinate that does not apply
// (e.g. Col for the prior, or both for a zero-mass prior).
const NoIndex = -1

// Reasons reported in EvaluationError.Reason.
const (
	ReasonNonFinite = "non-finite value"
	ReasonNegative  = "negative density"
	ReasonPanic     = "function panicked"
	ReasonZeroMass  = "total prior mass is zero"
)

// EvaluationError identifies the callable and grid coordinates at which a
// caller-supplied function produced an unusable value.
type EvaluationError struct {
	Func   string  // "SenderUtility", "PriorDensity", "ReceiverUtility", "SignalDensity"
	Row    int     // state index i, or NoIndex
	Col    int     // message index j, or NoIndex
	Value  float64 // offending value (0 when the function panicked)
	Reason string
	Cause  error // recovered panic, if any
}

func (e *EvaluationError) Error() string {
	msg := fmt.Sprintf("discretize: %s: %s at (%d,%d)", e.Func, e.Reason, e.Row, e.Col)
	if e.Reason == ReasonNonFinite || e.Reason == ReasonNegative {
		msg += fmt.Sprintf(": %g", e.Value)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes ErrEvaluation and the recovered cause to errors.Is/As.
func (e *EvaluationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrEvaluation, e.Cause}
	}

	return []error{ErrEvaluation}
}
