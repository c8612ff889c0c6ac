// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used across
// bplp for value matrices, IC coefficient matrices and joint mechanisms.
//
// What it offers:
//
//   - Dense: r×c storage in one flat slice, offset = i*cols + j.
//   - Safe accessors: At/Set return sentinel errors instead of panicking.
//   - Numeric policy: NaN/±Inf are rejected on ingestion and Set by default.
//   - Flatten / NewFromVector: the row-major vectorization used by the LP
//     adapter. NewFromVector(r, c, m.Flatten()) reproduces m exactly.
//   - Marginals: RowSums, ColSums, Sum and the per-column weighted inner
//     product ColumnInner used to evaluate incentive constraints.
//
// Determinism:
//
//	All loops run in fixed i-then-j order; no map iteration, no randomness.
//	Two calls on equal inputs produce bit-identical outputs.
//
// Complexity:
//
//   - NewDense/Flatten/Clone: O(r·c)
//   - At/Set:                 O(1)
//   - RowSums/ColSums/Sum:    O(r·c)
package matrix
