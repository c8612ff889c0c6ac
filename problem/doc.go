// SPDX-License-Identifier: MIT

// Package problem defines the persuasion-game specification consumed by
// the discretization and LP layers.
//
// A Spec carries the grid resolution, the common state/message interval and
// four caller-supplied callables:
//
//	ReceiverUtility(s, r) – receiver payoff from acting in state s with private signal r
//	SignalDensity(s, r)   – density of the receiver's private signal r given s (≥ 0)
//	PriorDensity(s)       – density of the common prior over states (≥ 0)
//	SenderUtility(s, m)   – sender payoff when message m is sent in state s
//
// Specs are plain values: build once, never mutate. Validate reports every
// structural problem as *ConfigurationError (errors.Is(err, ErrConfiguration)).
//
// Function families (Difference, MessagePower, NormalDensity, …) and presets
// (Reference, Convex, Concave, Linear) cover the usual textbook instances.
//
//	spec := problem.Convex(20)
//	if err := spec.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package problem
