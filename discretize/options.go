// SPDX-License-Identifier: MIT

package discretize

import (
	"fmt"
	"strings"
)

// Rule selects the composite quadrature used for IC coefficients.
type Rule int

const (
	// Midpoint samples the centre of each sub-interval.
	Midpoint Rule = iota

	// Trapezoid samples sub-interval endpoints with half weight at the cell ends.
	Trapezoid

	// Simpson uses 1-4-2-…-4-1 weights; the sub-interval count is rounded up to even.
	Simpson
)

// DefaultRule and DefaultSubintervals give a single evaluation at the cutoff.
const (
	DefaultRule         = Midpoint
	DefaultSubintervals = 1
)

const panicSubintervals = "discretize: WithSubintervals: k must be >= 1"

var ruleNames = [...]string{Midpoint: "midpoint", Trapezoid: "trapezoid", Simpson: "simpson"}

// String returns the lower-case rule name.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// ParseRule maps "midpoint" | "trapezoid" | "simpson" (case-insensitive) to a Rule.
func ParseRule(s string) (Rule, error) {
	for i, name := range ruleNames {
		if strings.EqualFold(s, name) {
			return Rule(i), nil
		}
	}

	return 0, fmt.Errorf("discretize: unknown quadrature rule %q", s)
}

// Option configures IC construction.
type Option func(*Options)

// Options holds the resolved quadrature settings.
type Options struct {
	Rule         Rule
	Subintervals int
}

// DefaultOptions returns Midpoint with one sub-interval.
func DefaultOptions() Options {
	return Options{Rule: DefaultRule, Subintervals: DefaultSubintervals}
}

// WithRule sets the quadrature rule. Unknown rules fall back to Midpoint.
func WithRule(r Rule) Option {
	return func(o *Options) {
		if r < Midpoint || r > Simpson {
			r = Midpoint
		}
		o.Rule = r
	}
}

// WithSubintervals sets the number of sub-intervals per cutoff cell.
// Panics when k < 1 (programmer error).
func WithSubintervals(k int) Option {
	if k < 1 {
		panic(panicSubintervals)
	}

	return func(o *Options) { o.Subintervals = k }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
