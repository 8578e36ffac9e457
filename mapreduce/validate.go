// SPDX-License-Identifier: MIT

// Package mapreduce: eager pre-flight validation.
//
// Every failure the pipeline can produce is detected here, before any record
// is emitted, so engine failure is all-or-nothing and cheap. The stages
// downstream are total functions over input that passed these checks.

package mapreduce

import (
	"fmt"

	"github.com/katalvlaran/matreduce/matrix"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMap      = "Map"
	opMultiply = "Multiply"
)

// validateInputs runs the shared pre-flight checks for Map and Multiply.
// Implementation:
//   - Stage 1: reject nil operands (ErrNilMatrix).
//   - Stage 2: reject a contraction mismatch, naming both shapes
//     (ErrDimensionMismatch).
//
// Behavior highlights:
//   - Rectangularity needs no check here: a *matrix.Dense cannot exist with
//     ragged or empty shape (enforced at construction).
//   - The op tag keeps wrapped messages grep-able per entry point.
//
// Inputs:
//   - op: operation tag (opMap/opMultiply).
//   - a, b: operands in multiplication order.
//
// Returns:
//   - nil when A (m×n) and B (n×p) can multiply; a wrapped sentinel otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
func validateInputs(op string, a, b *matrix.Dense) error {
	// Stage 1: nil operands.
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}

	// Stage 2: contraction dimension must line up (A.cols == B.rows).
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%s: A is %dx%d, B is %dx%d: %w",
			op, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}
