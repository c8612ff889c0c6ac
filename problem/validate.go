// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"
)

// Validate checks the structural contract of s.
//
// Order (first failure wins):
//  1. GridSize ≥ MinGridSize.
//  2. Domain bounds finite and Lower < Upper.
//  3. ReceiverUtility, SignalDensity, PriorDensity, SenderUtility non-nil.
//
// No callable is evaluated here; value-level problems surface later as
// evaluation errors from the builder.
//
// Complexity: O(1).
func (s Spec) Validate() error {
	if s.GridSize < MinGridSize {
		return &ConfigurationError{
			Field:  "GridSize",
			Reason: fmt.Sprintf("must be >= %d, got %d", MinGridSize, s.GridSize),
		}
	}
	if math.IsNaN(s.Domain.Lower) || math.IsInf(s.Domain.Lower, 0) ||
		math.IsNaN(s.Domain.Upper) || math.IsInf(s.Domain.Upper, 0) {
		return &ConfigurationError{Field: "Domain", Reason: "bounds must be finite"}
	}
	if s.Domain.Lower >= s.Domain.Upper {
		return &ConfigurationError{
			Field:  "Domain",
			Reason: fmt.Sprintf("lower %g must be < upper %g", s.Domain.Lower, s.Domain.Upper),
		}
	}

	switch {
	case s.ReceiverUtility == nil:
		return &ConfigurationError{Field: "ReceiverUtility", Reason: "not set"}
	case s.SignalDensity == nil:
		return &ConfigurationError{Field: "SignalDensity", Reason: "not set"}
	case s.PriorDensity == nil:
		return &ConfigurationError{Field: "PriorDensity", Reason: "not set"}
	case s.SenderUtility == nil:
		return &ConfigurationError{Field: "SenderUtility", Reason: "not set"}
	}

	return nil
}
