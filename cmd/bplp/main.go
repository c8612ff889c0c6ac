// SPDX-License-Identifier: MIT

// Command bplp solves discretized Bayesian persuasion problems from presets
// or YAML scenario files.
//
//	bplp presets
//	bplp solve --preset convex --grid 20
//	bplp solve --scenario examples/risk_averse_lobby.yaml --json --verify
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
