// SPDX-License-Identifier: MIT

// Package matio reads and writes the plain-text matrix format consumed and
// produced around the matreduce engine.
//
// # Format
//
// A file holds matrices as blocks separated by one blank line. Each block's
// lines are rows; values within a row are whitespace-separated and parse as
// float64:
//
//	1 2
//	3 4
//
//	5 6
//	7 8
//
// ReadPair expects exactly two blocks (the A and B operands); Write renders
// one matrix, one row per line, integers without a decimal part.
//
// # Contract
//
//   - Shape defects (ragged rows) surface matrix.ErrBadShape, detected at
//     construction by the matrix package, never later.
//   - Format defects use this package's sentinels: ErrEmptyInput,
//     ErrBlockCount, ErrBadNumber (wrapped with the offending line number).
//   - This package is glue around the core: the engine itself never touches
//     readers, writers or files.
//
// All sentinel errors live in errors.go and are matched with errors.Is.
package matio
