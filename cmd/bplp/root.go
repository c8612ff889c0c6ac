// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bplp/scenario"
)

// app is the state shared by subcommands once the root has run.
type app struct {
	stdout, stderr io.Writer
	env            scenario.Overrides
	log            *slog.Logger
	logLevel       string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "bplp",
		Short:        "Solve Bayesian persuasion problems as linear programs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides BPLP_LOG_LEVEL)")

	root.AddCommand(newSolveCmd(a), newPresetsCmd(a))

	return root
}

// setup loads environment overrides and builds the stderr logger.
func (a *app) setup(cmd *cobra.Command) error {
	env, err := scenario.LoadOverrides()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		env.LogLevel = a.logLevel
	}
	lvl, err := env.Level()
	if err != nil {
		return err
	}
	a.env = env
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))

	return nil
}
