// SPDX-License-Identifier: MIT

// Package problem - reusable callables for utilities and densities.
//
// Constructors panic on nonsensical parameters (programmer error), the same
// policy as option constructors elsewhere in the module. Callers loading
// parameters from untrusted input validate first (see package scenario).
package problem

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	panicStdDevInvalid  = "problem: NormalDensity: stddev must be finite and > 0"
	panicUniformInvalid = "problem: UniformDensity: need finite lower < upper"
	panicBetaInvalid    = "problem: BetaDensity: alpha and beta must be finite and > 0"
	panicExponent       = "problem: MessagePower: exponent must be finite"
)

// ---------- Receiver-side bivariate families ----------

// Difference returns u(s, r) = s - r: acting pays off exactly when the state
// exceeds the receiver's private threshold r.
func Difference() Bivariate {
	return func(s, r float64) float64 { return s - r }
}

// ConstantBivariate returns f(x, y) = c. With c = 1 it is the flat signal density.
func ConstantBivariate(c float64) Bivariate {
	return func(_, _ float64) float64 { return c }
}

// ---------- Sender-side bivariate families (depend on the message only) ----------

// MessagePower returns v(s, m) = m^exp.
func MessagePower(exp float64) Bivariate {
	if math.IsNaN(exp) || math.IsInf(exp, 0) {
		panic(panicExponent)
	}

	return func(_, m float64) float64 { return math.Pow(m, exp) }
}

// MessageSqrt returns v(s, m) = √m.
func MessageSqrt() Bivariate {
	return func(_, m float64) float64 { return math.Sqrt(m) }
}

// MessageLinear returns v(s, m) = slope·m + intercept.
func MessageLinear(slope, intercept float64) Bivariate {
	return func(_, m float64) float64 { return slope*m + intercept }
}

// ---------- Prior densities ----------

// ConstantDensity returns prior(s) = c. Any c > 0 yields the uniform prior on
// the grid after normalization.
func ConstantDensity(c float64) Univariate {
	return func(float64) float64 { return c }
}

// NormalDensity returns the N(mean, stddev²) pdf.
func NormalDensity(mean, stddev float64) Univariate {
	if !(stddev > 0) || math.IsInf(stddev, 0) {
		panic(panicStdDevInvalid)
	}
	d := distuv.Normal{Mu: mean, Sigma: stddev}

	return d.Prob
}

// UniformDensity returns the U(lower, upper) pdf (zero outside the support).
func UniformDensity(lower, upper float64) Univariate {
	if !(lower < upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		panic(panicUniformInvalid)
	}
	d := distuv.Uniform{Min: lower, Max: upper}

	return d.Prob
}

// BetaDensity returns the Beta(alpha, beta) pdf on [0, 1].
func BetaDensity(alpha, beta float64) Univariate {
	if !(alpha > 0) || !(beta > 0) || math.IsInf(alpha, 0) || math.IsInf(beta, 0) {
		panic(panicBetaInvalid)
	}
	d := distuv.Beta{Alpha: alpha, Beta: beta}

	return d.Prob
}
