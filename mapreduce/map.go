// SPDX-License-Identifier: MIT

// Package mapreduce: the map phase.
//
// Purpose:
//   - Turn a matrix pair into the full bag of key-tagged contribution
//     records, with no shared mutable state, so emission can fan out across
//     row-blocks freely.

package mapreduce

import (
	"github.com/katalvlaran/matreduce/matrix"
)

// recordsPerRowPair is how many records one (i,k,j) triple emits: one
// A-tagged and one B-tagged.
const recordsPerRowPair = 2

// Map emits the contribution record bag for A·B.
// MAIN DESCRIPTION:
//   - The map phase: for every (i,k,j) with i∈[0,m), k∈[0,n),
//     j∈[0,p), emit exactly one record keyed (i,j) tagged (OriginA, k,
//     A[i][k]) and exactly one keyed (i,j) tagged (OriginB, k, B[k][j]).
//
// Implementation:
//   - Stage 1: eager validation (nil operands, contraction mismatch).
//   - Stage 2: resolve options; choose sequential emission or row-block
//     fan-out across workers.
//   - Stage 3: emit into exactly-sized slices; merge order-independently.
//
// Behavior highlights:
//   - Pure function of its inputs; no side effects beyond the returned bag.
//   - Total record count is exactly 2·m·n·p; per key exactly n A-tagged and
//     n B-tagged records.
//   - Emission order is unspecified and carries no meaning; no consumer may
//     rely on it.
//
// Inputs:
//   - a, b: operands in multiplication order (A is m×n, B is n×p).
//   - opts: WithWorkers / WithSequential to shape the fan-out.
//
// Returns:
//   - []Contribution of length 2·m·n·p.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (both before any emission).
//
// Determinism:
//   - The record multiset is identical on every path; only ordering differs.
//
// Complexity:
//   - Time O(m·n·p), Space O(m·n·p).
func Map(a, b *matrix.Dense, opts ...Option) ([]Contribution, error) {
	if err := validateInputs(opMap, a, b); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	m := a.Rows()
	if useSequential(m, o.workers) {
		out := make([]Contribution, 0, emitCapacity(a, b, 0, m))

		return emitRowRange(a, b, 0, m, out), nil
	}

	return mapParallel(a, b, o.workers), nil
}

// emitCapacity returns the exact record count produced for output rows
// [i0,i1): 2·(i1-i0)·n·p. Exact capacity keeps emission allocation-free
// past the single make.
// Complexity: O(1).
func emitCapacity(a, b *matrix.Dense, i0, i1 int) int {
	return recordsPerRowPair * (i1 - i0) * a.Cols() * b.Cols()
}

// emitRowRange appends the records for output rows [i0,i1) of the result and
// returns the grown slice.
// MAIN DESCRIPTION:
//   - The emission kernel shared by the sequential path and every map
//     worker; a worker owns a row range and nothing else.
//
// Implementation:
//   - Stage 1: iterate i over the row range.
//   - Stage 2: for each contraction index k, read A[i][k] once and walk
//     B's row k.
//   - Stage 3: append the (OriginA, k, A[i][k]) and (OriginB, k, B[k][j])
//     records for every j.
//
// Behavior highlights:
//   - Reads via RowView: no per-cell error checks inside the hot loop
//     (indices are in range by loop construction).
//   - Appends only; the caller controls capacity (see emitCapacity).
//
// Determinism:
//   - Fixed i→k→j order within one range; cross-range order is the merge
//     order, which no consumer may rely on.
//
// Complexity:
//   - Time O((i1-i0)·n·p), Space O((i1-i0)·n·p) in the destination slice.
func emitRowRange(a, b *matrix.Dense, i0, i1 int, out []Contribution) []Contribution {
	n := a.Cols() // contraction length
	p := b.Cols() // result columns

	var i, k, j int          // predeclared loop counters
	var av float64           // A[i][k], hoisted out of the j loop
	var aRow, bRow []float64 // row views, read-only

	for i = i0; i < i1; i++ {
		aRow = a.RowView(i)
		for k = 0; k < n; k++ {
			av = aRow[k]
			bRow = b.RowView(k)
			for j = 0; j < p; j++ {
				out = append(out,
					Contribution{Key: OutputKey{Row: i, Col: j}, Val: TaggedValue{Origin: OriginA, Index: k, Value: av}},
					Contribution{Key: OutputKey{Row: i, Col: j}, Val: TaggedValue{Origin: OriginB, Index: k, Value: bRow[j]}},
				)
			}
		}
	}

	return out
}
