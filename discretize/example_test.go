package discretize_test

import (
	"fmt"

	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/problem"
)

// ExampleBuild discretizes the linear instance on three nodes. With u = s − r
// and a flat signal density the midpoint IC weight is s_i − m_j.
func ExampleBuild() {
	sys, err := discretize.Build(problem.Linear(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("grid ", sys.Grid)
	fmt.Printf("prior %.4f\n", sys.Prior)
	for i := range sys.Grid {
		v, _ := sys.Value.Row(i)
		c, _ := sys.IC.Row(i)
		fmt.Println(v, c)
	}
	// Output:
	// grid  [0 0.5 1]
	// prior [0.3333 0.3333 0.3333]
	// [0 0.5 1] [0 -0.5 -1]
	// [0 0.5 1] [0.5 0 -0.5]
	// [0 0.5 1] [1 0.5 0]
}

// ExampleParseRule resolves a rule name as it appears in scenario files.
func ExampleParseRule() {
	r, err := discretize.ParseRule("Simpson")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r, discretize.DefaultOptions().Rule)
	// Output:
	// simpson midpoint
}
