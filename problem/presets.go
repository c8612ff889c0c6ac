// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultGridSize is the resolution of the reference scenario.
const DefaultGridSize = 10

// ErrUnknownPreset is returned by Preset for an unregistered name.
var ErrUnknownPreset = errors.New("problem: unknown preset")

// UnitInterval is [0, 1].
var UnitInterval = Interval{Lower: 0, Upper: 1}

// Reference is the textbook instance: threshold receiver (u = s - r) with a
// flat private-signal density, convex sender utility v = m² and a standard
// normal prior truncated to [0, 1] by the grid.
func Reference(n int) Spec {
	return Spec{
		Name:            "reference",
		GridSize:        n,
		Domain:          UnitInterval,
		ReceiverUtility: Difference(),
		SignalDensity:   ConstantBivariate(1),
		PriorDensity:    NormalDensity(0, 1),
		SenderUtility:   MessagePower(2),
	}
}

// Default is Reference(DefaultGridSize).
func Default() Spec { return Reference(DefaultGridSize) }

// Convex uses v = m² with a uniform prior; the optimum fully reveals the state.
func Convex(n int) Spec {
	s := uniformBase("convex", n)
	s.SenderUtility = MessagePower(2)

	return s
}

// Concave uses v = √m with a uniform prior; the optimum pools every state on
// the message equal to the prior mean.
func Concave(n int) Spec {
	s := uniformBase("concave", n)
	s.SenderUtility = MessageSqrt()

	return s
}

// Linear uses v = m with a uniform prior; every Bayes-plausible mechanism is
// optimal and the value equals the prior mean.
func Linear(n int) Spec {
	s := uniformBase("linear", n)
	s.SenderUtility = MessageLinear(1, 0)

	return s
}

func uniformBase(name string, n int) Spec {
	return Spec{
		Name:            name,
		GridSize:        n,
		Domain:          UnitInterval,
		ReceiverUtility: Difference(),
		SignalDensity:   ConstantBivariate(1),
		PriorDensity:    ConstantDensity(1),
	}
}

var presets = map[string]func(int) Spec{
	"reference": Reference,
	"convex":    Convex,
	"concave":   Concave,
	"linear":    Linear,
}

// Presets lists registered preset names in ascending order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Preset builds the named preset at resolution n.
func Preset(name string, n int) (Spec, error) {
	build, ok := presets[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return build(n), nil
}
