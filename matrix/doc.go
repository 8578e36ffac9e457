// SPDX-License-Identifier: MIT

// Package matrix provides the rectangular float64 container consumed and
// produced by the matreduce pipeline.
//
// What this package guarantees:
//
//   - Rectangularity: every constructor rejects empty input and ragged rows
//     with ErrBadShape, so a *Dense in hand always has rows ≥ 1, cols ≥ 1
//     and exactly rows×cols cells.
//   - Safety at the public surface: At/Set return ErrOutOfRange instead of
//     panicking; panics are reserved for programmer errors inside private
//     helpers.
//   - Isolation: constructors deep-copy caller slices and Clone/ToRows
//     deep-copy outward, so no external code can mutate a matrix behind the
//     engine's back.
//   - Determinism: storage is a flat row-major buffer (offset = i*cols + j);
//     all traversals use fixed i→j order.
//
// Interop:
//
//	ToGonum/FromGonum bridge *Dense to gonum.org/v1/gonum/mat for callers
//	that continue into the gonum ecosystem (and for oracle checks in tests).
//
// Typical use:
//
//	a, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	if err != nil { ... }            // ErrBadShape on ragged/empty input
//	v, err := a.At(0, 1)             // 2, nil
//	_ = v
//
// All sentinel errors live in errors.go and are matched with errors.Is.
package matrix
