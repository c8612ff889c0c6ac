package lpsolve_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/lpsolve"
	"github.com/katalvlaran/bplp/problem"
)

// BenchmarkSolve measures assembly plus simplex on the reference instance.
// Discretization happens outside the timer.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{5, 10, 20, 30} {
		sys, err := discretize.Build(problem.Reference(n))
		if err != nil {
			b.Fatal(err)
		}
		for _, mode := range []lpsolve.ICMode{lpsolve.Indifference, lpsolve.Obedience} {
			b.Run(fmt.Sprintf("n=%d/%s", n, mode), func(b *testing.B) {
				ctx := context.Background()
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := lpsolve.SolveSystem(ctx, sys, lpsolve.WithICMode(mode)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkAssemble isolates constraint-matrix construction.
func BenchmarkAssemble(b *testing.B) {
	sys, err := discretize.Build(problem.Reference(40))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lpsolve.Assemble(sys.Value, sys.Prior, sys.IC, 40, lpsolve.Indifference); err != nil {
			b.Fatal(err)
		}
	}
}
