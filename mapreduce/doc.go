// SPDX-License-Identifier: MIT

// Package mapreduce multiplies two matrices with a two-phase MapReduce
// pipeline: emit independent key-tagged contributions, group them by output
// coordinate, then fold every group into one result cell with an
// associative, commutative combiner.
//
// # Pipeline
//
// For A (m×n) and B (n×p) the stages run strictly forward:
//
//	Validate → Map → Shuffle → Reduce(∀ keys) → Assemble
//
//   - Map emits, for every (i,k,j) triple, one record keyed (i,j) tagged
//     (OriginA, k, A[i][k]) and one keyed (i,j) tagged (OriginB, k, B[k][j]).
//     Exactly 2·m·n·p records; emission order carries no meaning.
//   - Shuffle partitions the record bag purely by key equality. Every key
//     that appears in a record appears in the result; nothing is dropped.
//     Given well-formed input this stage cannot fail.
//   - Reduce splits one group by origin into two index-keyed collections and
//     accumulates aByIndex[k]*bByIndex[k] over every contraction index k
//     present in both. The sum, started at ZeroSum, is the cell (i,j).
//   - Assemble writes each cell into a fresh m×p matrix; every coordinate is
//     produced exactly once.
//
// The deferred multiply is the point: neither origin's record knows the
// other's value at emission time, so the join happens where MapReduce joins
// facts — inside the reducer, matched on the shared contraction index.
//
// # Concurrency
//
// Every contribution is independent of every other, and every group's
// reduction is independent of every other group's, so the pipeline fans out
// without locks:
//
//   - Map: row-blocks of A are emitted by a fixed set of workers, each into
//     its own exactly-sized slice; merging is order-independent.
//   - Shuffle: workers partition record chunks into FNV-sharded buckets,
//     then the buckets of each shard merge independently.
//   - Reduce: a worker pool consumes shards; each group is owned by exactly
//     one worker, and cells fan back in over a channel to one assembler.
//
// Small inputs collapse to the plain sequential path, where fan-out
// overhead would dominate. Results are identical on both paths.
//
// # Errors
//
// Validation is eager: ErrDimensionMismatch (A.Cols() != B.Rows()) and nil
// inputs (ErrNilMatrix) surface before any record is emitted, so failure
// is all-or-nothing and cheap. Shape defects inside a matrix cannot reach
// this package — matrix.NewFromRows rejects them at construction. The
// stages themselves are total over well-formed input; the only opt-in
// failure is ErrUnpairedIndex under WithStrictJoin (see Options).
//
// # Determinism
//
// Key iteration order is explicitly unspecified and no stage may rely on
// it; the combiner's associativity and commutativity make the result
// reproducible regardless of schedule, modulo ordinary floating-point
// rounding.
//
// # Complexity
//
//	Map     O(m·n·p) records emitted
//	Shuffle O(m·n·p) inserts
//	Reduce  O(m·n·p) joins across m·p groups
//	Memory  O(m·n·p) for the record bag (the price of the contract)
//
// Typical use:
//
//	c, err := mapreduce.Multiply(a, b)                          // auto workers
//	c, err = mapreduce.Multiply(a, b, mapreduce.WithWorkers(8)) // pinned pool
package mapreduce
