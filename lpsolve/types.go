// SPDX-License-Identifier: MIT

package lpsolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/bplp/matrix"
)

// ICMode selects how the incentive functional of each message is constrained.
type ICMode int

const (
	// Indifference requires IC_j(μ) = 0: the cutoff type is exactly indifferent.
	Indifference ICMode = iota

	// Obedience requires IC_j(μ) ≥ 0: following the recommendation is weakly better.
	Obedience
)

var icModeNames = [...]string{Indifference: "indifference", Obedience: "obedience"}

func (m ICMode) String() string {
	if m < 0 || int(m) >= len(icModeNames) {
		return fmt.Sprintf("ICMode(%d)", int(m))
	}

	return icModeNames[m]
}

// ParseICMode maps "indifference" | "obedience" (case-insensitive) to an ICMode.
func ParseICMode(s string) (ICMode, error) {
	for i, name := range icModeNames {
		if strings.EqualFold(s, name) {
			return ICMode(i), nil
		}
	}

	return 0, fmt.Errorf("lpsolve: unknown IC mode %q", s)
}

// Status is the lifecycle state of one solve:
//
//	Initialized → Building → Solving → {Solved | Infeasible | Unbounded | Error}
type Status int

const (
	StatusInitialized Status = iota
	StatusBuilding
	StatusSolving
	StatusSolved
	StatusInfeasible
	StatusUnbounded
	StatusError
)

var statusNames = [...]string{
	StatusInitialized: "initialized",
	StatusBuilding:    "building",
	StatusSolving:     "solving",
	StatusSolved:      "solved",
	StatusInfeasible:  "infeasible",
	StatusUnbounded:   "unbounded",
	StatusError:       "error",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// Terminal reports whether s ends the lifecycle.
func (s Status) Terminal() bool { return s >= StatusSolved }

// MechanismResult is the read-only outcome of a successful solve.
// Callers own it; nothing in this module mutates it after return.
type MechanismResult struct {
	GridSize int
	Grid     []float64 // nil when solved from raw matrices without a grid

	// Mechanism is the joint mass μ[i][j] of state i and message j.
	Mechanism *matrix.Dense

	Prior       []float64     // discretized prior, Σ = 1
	IC          *matrix.Dense // IC coefficient matrix C
	ICBound     []float64     // right-hand side of the IC rows (zeros)
	ValueMatrix *matrix.Dense // V[i][j] = v(s_i, m_j)

	Mode   ICMode
	Status Status
	Value  float64 // sender expected utility Σ V∘μ

	// Diagnostics.
	PriorResidual     []float64 // row sums of μ minus Prior
	ICResidual        []float64 // IC_j(μ) per message column
	MaxPriorViolation float64   // max_i |PriorResidual[i]|
	MinIC             float64   // min_j ICResidual[j] over columns with positive mass
	DroppedIC         []int     // columns whose IC row was identically zero
	RedundantIC       []int     // columns whose IC row was implied by the others
	Elapsed           time.Duration
}
