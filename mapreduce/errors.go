// SPDX-License-Identifier: MIT
// Package mapreduce: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// pipeline. All stages MUST return these sentinels and tests MUST check them
// via errors.Is. No stage panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package mapreduce

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mapreduce: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still match
// via errors.Is.

var (
	// ErrDimensionMismatch indicates that the contraction dimension does not
	// line up: A.Cols() != B.Rows(). Detected eagerly, before any record is
	// emitted; the wrap at the detection site names both shapes.
	ErrDimensionMismatch = errors.New("mapreduce: dimension mismatch")

	// ErrNilMatrix indicates that a nil input matrix was passed to a stage
	// that requires a value.
	ErrNilMatrix = errors.New("mapreduce: nil matrix")

	// ErrUnpairedIndex reports a contraction index that appears in only one
	// origin's records within a group. With well-formed inputs the mapper
	// invariant makes this impossible; it is surfaced only under
	// WithStrictJoin, where callers asked for the integrity check instead of
	// the default silent skip.
	ErrUnpairedIndex = errors.New("mapreduce: unpaired shared index")
)
