// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bplp/problem"
)

// Family names.
const (
	FamilyDifference = "difference"
	FamilyConstant   = "constant"
	FamilyPower      = "power"
	FamilySqrt       = "sqrt"
	FamilyLinear     = "linear"
	FamilyNormal     = "normal"
	FamilyUniform    = "uniform"
	FamilyBeta       = "beta"
)

// Func names a function family and its parameters. Unset parameters take
// the family default listed in resolve; a parameter the family does not use
// is ignored.
type Func struct {
	Family    string   `yaml:"family"`
	Value     *float64 `yaml:"value,omitempty"`
	Exponent  *float64 `yaml:"exponent,omitempty"`
	Slope     *float64 `yaml:"slope,omitempty"`
	Intercept *float64 `yaml:"intercept,omitempty"`
	Mean      *float64 `yaml:"mean,omitempty"`
	StdDev    *float64 `yaml:"stddev,omitempty"`
	Lower     *float64 `yaml:"lower,omitempty"`
	Upper     *float64 `yaml:"upper,omitempty"`
	Alpha     *float64 `yaml:"alpha,omitempty"`
	Beta      *float64 `yaml:"beta,omitempty"`
}

func param(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}

func finite(field string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s: parameters must be finite", ErrInvalid, field)
		}
	}

	return nil
}

// Bivariate resolves f into a problem.Bivariate.
//
//	difference               s − r
//	constant  {value=1}      value
//	power     {exponent=2}   m^exponent
//	sqrt                     √m
//	linear    {slope=1, intercept=0}
func (f Func) Bivariate(field string) (problem.Bivariate, error) {
	switch f.Family {
	case FamilyDifference:
		return problem.Difference(), nil
	case FamilyConstant:
		c := param(f.Value, 1)
		if err := finite(field, c); err != nil {
			return nil, err
		}
		return problem.ConstantBivariate(c), nil
	case FamilyPower:
		e := param(f.Exponent, 2)
		if err := finite(field, e); err != nil {
			return nil, err
		}
		return problem.MessagePower(e), nil
	case FamilySqrt:
		return problem.MessageSqrt(), nil
	case FamilyLinear:
		a, b := param(f.Slope, 1), param(f.Intercept, 0)
		if err := finite(field, a, b); err != nil {
			return nil, err
		}
		return problem.MessageLinear(a, b), nil
	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownFamily, field, f.Family)
	}
}

// Univariate resolves f into a problem.Univariate density.
//
//	constant {value=1}
//	normal   {mean=0, stddev=1}     stddev > 0
//	uniform  {lower=0, upper=1}     lower < upper
//	beta     {alpha=1, beta=1}      alpha, beta > 0
func (f Func) Univariate(field string) (problem.Univariate, error) {
	switch f.Family {
	case FamilyConstant:
		c := param(f.Value, 1)
		if err := finite(field, c); err != nil {
			return nil, err
		}
		return problem.ConstantDensity(c), nil
	case FamilyNormal:
		mu, sigma := param(f.Mean, 0), param(f.StdDev, 1)
		if err := finite(field, mu, sigma); err != nil {
			return nil, err
		}
		if sigma <= 0 {
			return nil, fmt.Errorf("%w: %s: stddev must be > 0, got %g", ErrInvalid, field, sigma)
		}
		return problem.NormalDensity(mu, sigma), nil
	case FamilyUniform:
		lo, hi := param(f.Lower, 0), param(f.Upper, 1)
		if err := finite(field, lo, hi); err != nil {
			return nil, err
		}
		if lo >= hi {
			return nil, fmt.Errorf("%w: %s: lower %g must be < upper %g", ErrInvalid, field, lo, hi)
		}
		return problem.UniformDensity(lo, hi), nil
	case FamilyBeta:
		a, b := param(f.Alpha, 1), param(f.Beta, 1)
		if err := finite(field, a, b); err != nil {
			return nil, err
		}
		if a <= 0 || b <= 0 {
			return nil, fmt.Errorf("%w: %s: alpha and beta must be > 0", ErrInvalid, field)
		}
		return problem.BetaDensity(a, b), nil
	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownFamily, field, f.Family)
	}
}
