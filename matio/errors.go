// SPDX-License-Identifier: MIT
// Package matio: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matio
// package. All readers MUST return these sentinels and tests MUST check them
// via errors.Is. No code path panics on user-triggered error conditions.

package matio

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matio: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers will still use errors.Is to match.

var (
	// ErrEmptyInput indicates that the input holds no matrix block at all.
	ErrEmptyInput = errors.New("matio: empty input")

	// ErrBlockCount indicates that the input does not hold exactly two
	// blank-line-separated matrix blocks; the wrap names the count found.
	ErrBlockCount = errors.New("matio: want exactly two matrix blocks")

	// ErrBadNumber indicates a token that does not parse as float64; the
	// wrap names the line number and the token.
	ErrBadNumber = errors.New("matio: invalid numeric value")

	// ErrNilMatrix indicates that a nil matrix was passed to a writer.
	ErrNilMatrix = errors.New("matio: nil matrix")
)
