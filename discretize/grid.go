// SPDX-License-Identifier: MIT

package discretize

import "github.com/katalvlaran/bplp/problem"

// Grid returns the n evenly spaced nodes of spec.Domain, endpoints inclusive.
//
// Determinism: node k is computed as Lower + k·h from (n, domain) alone and
// the last node is pinned to Upper, so equal (n, domain) give bit-identical grids.
//
// Errors: *problem.ConfigurationError.
// Complexity: O(n).
func Grid(spec problem.Spec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return nodes(spec.GridSize, spec.Domain), nil
}

// Spacing returns h = (Upper − Lower)/(n − 1). The spec must be valid.
func Spacing(spec problem.Spec) float64 {
	return spec.Domain.Width() / float64(spec.GridSize-1)
}

func nodes(n int, d problem.Interval) []float64 {
	var (
		out = make([]float64, n)
		h   = d.Width() / float64(n-1)
		k   int
	)
	for k = 0; k < n-1; k++ {
		out[k] = d.Lower + float64(k)*h
	}
	out[n-1] = d.Upper

	return out
}
