// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
)

// MinGridSize is the smallest admissible discretization (two nodes per axis).
const MinGridSize = 2

// ErrConfiguration is the sentinel behind every *ConfigurationError.
var ErrConfiguration = errors.New("problem: invalid configuration")

// ConfigurationError reports which Spec field is invalid and why.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("problem: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap exposes ErrConfiguration to errors.Is.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Bivariate is a real-valued function of (state, signal) or (state, message).
type Bivariate func(x, y float64) float64

// Univariate is a real-valued function of the state.
type Univariate func(x float64) float64

// Interval is the closed interval [Lower, Upper] shared by the state and
// message axes.
type Interval struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Spec is the persuasion problem. All function fields are required.
type Spec struct {
	// Name is an optional label for logs and reports.
	Name string

	// GridSize is the number of nodes on both the state and message axes (≥ 2).
	GridSize int

	// Domain bounds both axes; Lower < Upper.
	Domain Interval

	ReceiverUtility Bivariate  // u(s, r)
	SignalDensity   Bivariate  // g(s, r) ≥ 0
	PriorDensity    Univariate // prior(s) ≥ 0
	SenderUtility   Bivariate  // v(s, m)
}

// WithGridSize returns a copy of s with a different resolution.
// The receiver is not modified.
func (s Spec) WithGridSize(n int) Spec {
	s.GridSize = n

	return s
}

// Label returns Name, or a generic label when Name is empty.
func (s Spec) Label() string {
	if s.Name == "" {
		return "unnamed"
	}

	return s.Name
}
