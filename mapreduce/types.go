// SPDX-License-Identifier: MIT

// Package mapreduce: record vocabulary of the pipeline.
//
// Purpose:
//   - Define the small, statically-typed values that flow between stages:
//     Origin, OutputKey, TaggedValue, Contribution, Group, Grouped.
//   - Keep origin tagging an enumerated discriminant (never a loose tuple)
//     so origin-based matching in the reducer is exhaustive and checked at
//     compile time.

package mapreduce

import "fmt"

// Origin identifies which input matrix produced a contribution.
type Origin uint8

const (
	// OriginA tags values drawn from the left operand A.
	OriginA Origin = iota

	// OriginB tags values drawn from the right operand B.
	OriginB
)

// String renders the origin for diagnostics ("A", "B", or "Origin(n)").
// Complexity: O(1).
func (o Origin) String() string {
	switch o {
	case OriginA:
		return "A"
	case OriginB:
		return "B"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// OutputKey identifies one cell of the result matrix and one reduction
// group: 0 ≤ Row < m, 0 ≤ Col < p. Equality is structural, which makes the
// key usable directly as a Go map key.
type OutputKey struct {
	Row, Col int
}

// String renders the key as "(row,col)" for diagnostics.
// Complexity: O(1).
func (k OutputKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.Row, k.Col)
}

// TaggedValue is one matrix element fact: which origin produced it, the
// contraction index k it sits on, and the element itself. Immutable once
// emitted; carries no ownership beyond its own fields.
type TaggedValue struct {
	Origin Origin  // producing matrix, OriginA or OriginB
	Index  int     // contraction index k shared between A's column and B's row
	Value  float64 // the numeric element
}

// Contribution is one emitted record: a tagged value bound to the output
// cell it contributes to. A record's lifetime ends once the shuffle stage
// has consumed it.
type Contribution struct {
	Key OutputKey
	Val TaggedValue
}

// Group is the set of tagged values sharing one OutputKey (the key lives in
// the Grouped map). Handed to the reducer as a whole; order inside a group
// carries no meaning because the combiner is order-independent.
type Group []TaggedValue

// Grouped is the shuffle output: the partition of all contributions by
// output key. Iteration order over a Grouped is explicitly unspecified and
// no consumer may rely on it.
type Grouped map[OutputKey]Group
