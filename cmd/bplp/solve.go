// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bplp"
	"github.com/katalvlaran/bplp/lpsolve"
	"github.com/katalvlaran/bplp/scenario"
)

type solveFlags struct {
	scenario string
	preset   string
	grid     int
	icMode   string
	json     bool
	verify   bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one scenario and print the optimal mechanism",
		Long: `Solve builds the discretized problem from a preset or a YAML scenario,
runs the simplex and prints the mechanism. Precedence for grid size, IC mode
and quadrature: flags, then BPLP_* environment variables, then the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.scenario, "scenario", "", "path to a YAML scenario")
	fl.StringVar(&f.preset, "preset", "reference", "built-in scenario (see 'bplp presets')")
	fl.IntVar(&f.grid, "grid", 0, "grid size n (>= 2)")
	fl.StringVar(&f.icMode, "ic-mode", "", "indifference or obedience")
	fl.BoolVar(&f.json, "json", false, "print the result as JSON")
	fl.BoolVar(&f.verify, "verify", false, "fail unless the mechanism passes Verify")
	cmd.MarkFlagsMutuallyExclusive("scenario", "preset")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, f solveFlags) error {
	sc := &scenario.Scenario{Preset: f.preset}
	if f.scenario != "" {
		var err error
		if sc, err = scenario.LoadFile(f.scenario); err != nil {
			return err
		}
	}
	sc = sc.Apply(a.env)
	if cmd.Flags().Changed("grid") {
		sc.GridSize = f.grid
	}
	if f.icMode != "" {
		sc.ICMode = f.icMode
	}

	spec, err := sc.Spec()
	if err != nil {
		return err
	}
	opts, err := sc.Options()
	if err != nil {
		return err
	}
	opts = append(opts, bplp.WithLogger(a.log))

	res, err := bplp.Solve(cmd.Context(), spec, opts...)
	if err != nil {
		return err
	}
	a.log.Info("solved",
		slog.String("scenario", spec.Label()),
		slog.Int("n", res.GridSize),
		slog.Float64("value", res.Value),
		slog.Duration("elapsed", res.Elapsed))

	if f.verify {
		if err = res.Verify(lpsolve.DefaultVerifyTolerance); err != nil {
			return err
		}
	}
	if f.json {
		return writeJSON(a.stdout, spec.Label(), res)
	}

	return writeText(a.stdout, spec.Label(), res)
}
