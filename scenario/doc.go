// SPDX-License-Identifier: MIT

// Package scenario loads persuasion problems from YAML documents and
// applies environment overrides.
//
// Document shape (every key optional; omitted keys fall back to the preset
// named by `preset`, or to the reference instance):
//
//	name: convex
//	preset: convex
//	grid_size: 10
//	domain: [0, 1]
//	receiver_utility: {family: difference}
//	signal_density:   {family: constant, value: 1}
//	prior_density:    {family: normal, mean: 0, stddev: 1}
//	sender_utility:   {family: power, exponent: 2}
//	ic_mode: indifference
//	quadrature: {rule: midpoint, subintervals: 1}
//
// Unknown keys are rejected. Families:
//
//	bivariate:  difference | constant{value} | power{exponent} | sqrt | linear{slope, intercept}
//	univariate: constant{value} | normal{mean, stddev} | uniform{lower, upper} | beta{alpha, beta}
//
// Environment (see Overrides): BPLP_GRID_SIZE, BPLP_IC_MODE,
// BPLP_QUADRATURE_RULE, BPLP_QUADRATURE_SUBINTERVALS, BPLP_LOG_LEVEL.
package scenario
