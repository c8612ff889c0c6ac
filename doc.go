// SPDX-License-Identifier: MIT

// Package bplp solves discretized Bayesian persuasion problems as linear
// programs: a sender commits to a joint distribution over (state, message)
// pairs that maximizes expected sender utility subject to Bayes
// plausibility and the receiver's incentive constraints.
//
// 🚀 Pipeline
//
//	problem.Spec ──Validate──▶ discretize.Build ──▶ lpsolve.SolveSystem ──▶ MechanismResult
//
// Solve runs the three stages for one specification; SolveBatch runs many
// independent specifications concurrently and returns results in input order.
//
// Under the hood:
//
//	matrix/     small dense float64 matrix with marginals and inner products
//	problem/    problem specification, validation, function families, presets
//	discretize/ uniform grid, value matrix, normalized prior, IC coefficients
//	lpsolve/    standard-form assembly, gonum simplex, diagnostics, Verify
//	scenario/   YAML scenarios with environment overrides
//	cmd/bplp/   command-line front end
//
// Quick start:
//
//	res, err := bplp.Solve(ctx, problem.Default())
//	if err != nil { ... }
//	fmt.Println(res.Value)
//	fmt.Print(res.Mechanism)
//
// See the example_test.go files of each package for runnable examples.
package bplp
