package problem_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bplp/problem"
)

// ExamplePreset looks up a registered instance and reports a bad one.
func ExamplePreset() {
	fmt.Println(problem.Presets())

	s, err := problem.Preset("concave", 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Name, s.GridSize, s.Domain.Lower, s.Domain.Upper, s.SenderUtility(0, 0.25))

	_, err = problem.Preset("kamenica", 5)
	fmt.Println(errors.Is(err, problem.ErrUnknownPreset))
	// Output:
	// [concave convex linear reference]
	// concave 5 0 1 0.5
	// true
}

// ExampleSpec_Validate shows the first failing field of a malformed spec.
func ExampleSpec_Validate() {
	s := problem.Convex(1)
	err := s.Validate()

	var cfg *problem.ConfigurationError
	if errors.As(err, &cfg) {
		fmt.Println(cfg.Field)
	}
	fmt.Println(errors.Is(err, problem.ErrConfiguration))
	// Output:
	// GridSize
	// true
}
