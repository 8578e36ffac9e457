// SPDX-License-Identifier: MIT

// Package mapreduce: the engine orchestrator.
//
// Purpose:
//   - Drive Validate → Map → Shuffle → Reduce(∀ keys) → Assemble with
//     all-or-nothing failure: validation precedes any map work, and no
//     partial result ever escapes.

package mapreduce

import (
	"github.com/katalvlaran/matreduce/matrix"
)

// seqRowFactor guards the parallel path: with fewer than workers*seqRowFactor
// output rows, goroutine fan-out costs more than it buys and the pipeline
// collapses to the sequential path. Results are identical either way.
const seqRowFactor = 2

// useSequential reports whether the pipeline should skip fan-out for m
// output rows on the given worker count.
// Complexity: O(1).
func useSequential(m, workers int) bool {
	return workers == 1 || m < workers*seqRowFactor
}

// Multiply runs the full pipeline and returns the m×p product matrix.
// MAIN DESCRIPTION:
//   - The engine: validates eagerly, emits the contribution bag, groups it
//     by output key, folds every group, and assembles the cells into a
//     fresh result matrix.
//
// Implementation:
//   - Stage 1: Validate — nil operands, contraction mismatch; fails before
//     any record exists.
//   - Stage 2: route — sequential kernel for small inputs or workers == 1,
//     otherwise the parallel fan-out/fan-in kernel.
//   - Stage 3: the chosen kernel maps, shuffles, reduces and assembles.
//
// Behavior highlights:
//   - Terminal states only: (result, nil) or (nil, error). Never a partial
//     matrix.
//   - Inputs are never mutated; the result shares no storage with them.
//   - Key processing order is unspecified on both paths (and concurrent on
//     the parallel one).
//
// Inputs:
//   - a, b: operands in multiplication order (A is m×n, B is n×p).
//   - opts: WithWorkers / WithShards / WithSequential / WithStrictJoin.
//
// Returns:
//   - *matrix.Dense: the m×p product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (eager, wrapped with both shapes);
//     ErrUnpairedIndex only under WithStrictJoin with degraded records
//     (unreachable from well-formed matrix input).
//
// Determinism:
//   - Sequential and parallel paths build each cell from the same
//     index-keyed collections; accumulation order across k follows map
//     iteration, so results agree modulo ordinary floating-point rounding
//     (exactly, whenever every product is exactly representable).
//
// Complexity:
//   - Time O(m·n·p), Space O(m·n·p) for the record bag.
func Multiply(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	// Stage 1: eager validation — all-or-nothing failure happens here.
	if err := validateInputs(opMultiply, a, b); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	// Stage 2: route by input size and worker budget.
	if useSequential(a.Rows(), o.workers) {
		return multiplySequential(a, b, o)
	}

	return multiplyParallel(a, b, o)
}

// multiplySequential is the single-goroutine pipeline kernel.
// Implementation:
//   - Stage 1: emit the full record bag for rows [0,m).
//   - Stage 2: shuffle into the key partition.
//   - Stage 3: fold each group and write its cell; map iteration order is
//     explicitly unordered and nothing below depends on it.
//
// Complexity:
//   - Time O(m·n·p), Space O(m·n·p).
func multiplySequential(a, b *matrix.Dense, o Options) (*matrix.Dense, error) {
	m := a.Rows()

	// Stage 1: Map.
	recs := emitRowRange(a, b, 0, m, make([]Contribution, 0, emitCapacity(a, b, 0, m)))

	// Stage 2: Shuffle.
	groups := Shuffle(recs)

	// Stage 3: Reduce + Assemble.
	out, err := matrix.New(m, b.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for key, g := range groups {
		if v, err = reduceGroup(g, o.strictJoin); err != nil {
			return nil, err
		}
		if err = out.Set(key.Row, key.Col, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
