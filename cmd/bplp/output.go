// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/bplp/lpsolve"
)

// resultJSON is the --json document.
type resultJSON struct {
	Scenario          string      `json:"scenario"`
	GridSize          int         `json:"grid_size"`
	Grid              []float64   `json:"grid"`
	Mode              string      `json:"ic_mode"`
	Status            string      `json:"status"`
	Value             float64     `json:"value"`
	Mechanism         [][]float64 `json:"mechanism"`
	Prior             []float64   `json:"prior"`
	MessageMarginal   []float64   `json:"message_marginal"`
	MaxPriorViolation float64     `json:"max_prior_violation"`
	MinIC             float64     `json:"min_ic"`
	DroppedIC         []int       `json:"dropped_ic,omitempty"`
	RedundantIC       []int       `json:"redundant_ic,omitempty"`
	ElapsedMS         float64     `json:"elapsed_ms"`
}

func writeJSON(w io.Writer, name string, res *lpsolve.MechanismResult) error {
	doc := resultJSON{
		Scenario:          name,
		GridSize:          res.GridSize,
		Grid:              res.Grid,
		Mode:              res.Mode.String(),
		Status:            res.Status.String(),
		Value:             res.Value,
		Mechanism:         make([][]float64, res.GridSize),
		Prior:             res.Prior,
		MessageMarginal:   res.MessageMarginal(),
		MaxPriorViolation: res.MaxPriorViolation,
		MinIC:             res.MinIC,
		DroppedIC:         res.DroppedIC,
		RedundantIC:       res.RedundantIC,
		ElapsedMS:         float64(res.Elapsed.Microseconds()) / 1000,
	}
	for i := range doc.Mechanism {
		row, err := res.Mechanism.Row(i)
		if err != nil {
			return err
		}
		doc.Mechanism[i] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// writeText prints a summary followed by the mechanism with states as rows
// and messages as columns.
func writeText(w io.Writer, name string, res *lpsolve.MechanismResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario  %s\n", name)
	fmt.Fprintf(&b, "grid      %d nodes, %s IC\n", res.GridSize, res.Mode)
	fmt.Fprintf(&b, "status    %s\n", res.Status)
	fmt.Fprintf(&b, "value     %.6f\n", res.Value)
	fmt.Fprintf(&b, "residuals prior %.2e, min IC %.2e\n\n", res.MaxPriorViolation, res.MinIC)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "s \\ m\t")
	for _, m := range res.Grid {
		fmt.Fprintf(tw, "%.3f\t", m)
	}
	fmt.Fprintln(tw)
	for i := 0; i < res.GridSize; i++ {
		row, err := res.Mechanism.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%.3f\t", res.Grid[i])
		for _, v := range row {
			fmt.Fprintf(tw, "%.4f\t", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
