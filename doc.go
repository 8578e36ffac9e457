// Package matreduce is a single-machine MapReduce playground that
// multiplies matrices the distributed way: emit independent key-tagged
// facts, shuffle them by output coordinate, and fold every group into one
// cell.
//
// 🚀 What is matreduce?
//
//	A small, deterministic batch engine that brings together:
//		• matrix/    — the rectangular float64 container, shape-safe by construction
//		• mapreduce/ — Map → Shuffle → Reduce → Assemble, sequential or fanned out
//		• matio/     — the plain-text matrix source and sink around the core
//		• cmd/       — the matreduce command: read a pair, multiply, report
//
// ✨ Why bother, when one triple loop would do?
//
//   - The contract is the point — key partitioning, deferred combination,
//     and an associative/commutative combiner make every stage
//     order-independent
//   - Real concurrency story — row-block map workers, hash-sharded shuffle,
//     a lock-free reduce pool; sequential and parallel paths agree exactly
//   - Rock-solid edges — eager shape validation, sentinel errors matched
//     with errors.Is, never a partial result
//
// Quick sketch of the flow for A (m×n) and B (n×p):
//
//	A, B ──Map──▶ 2·m·n·p records ──Shuffle──▶ m·p groups ──Reduce──▶ cells ──▶ C
//
// Start at mapreduce.Multiply for the one-call surface, or drive
// mapreduce.Map, mapreduce.Shuffle and mapreduce.ReduceGroup by hand to
// watch the stages work.
//
//	go get github.com/katalvlaran/matreduce
package matreduce
