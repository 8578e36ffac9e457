// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce rectangularity at construction so downstream stages never re-validate shape.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; NewFromRows: O(r*c) copy; At/Set: O(1);
//     Clone/ToRows/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultEpsilon is the non-negative tolerance used by Equal when callers
// have no stronger domain-specific requirement.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicRowViewRange = "matrix: RowView: row index out of range"

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 after public construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Dense: newly allocated zero matrix.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Determinism:
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewFromRows builds a Dense from an ordered sequence of equal-length rows.
// MAIN DESCRIPTION:
//   - The canonical ingestion path: validates rectangularity, then deep-copies.
//
// Implementation:
//   - Stage 1: reject an empty sequence and an empty first row (ErrBadShape).
//   - Stage 2: scan every row; reject any length differing from row 0.
//   - Stage 3: allocate flat storage and copy row by row.
//
// Behavior highlights:
//   - Input slices are deep-copied; later caller mutation cannot leak in.
//   - Error messages name the offending row and both lengths for diagnostics.
//
// Inputs:
//   - rows: non-empty slice of non-empty, equal-length float64 slices.
//
// Returns:
//   - *Dense holding a private copy of the values.
//
// Errors:
//   - ErrBadShape when the sequence is empty, a row is empty, or rows are ragged.
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty row sequence: %w", ctxFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%s: row 0 is empty: %w", ctxFromRows, ErrBadShape)
	}

	// Validate all rows before allocating; construction is all-or-nothing.
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), cols, ErrBadShape)
		}
	}

	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i = range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i]) // deep copy row i
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the raw sentinel; public methods (At/Set) wrap it with coordinates
// and method name. Keep unexported to avoid accidental panics at the public
// surface.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Returns:
//   - (value, nil) on success; (0, ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//
// Returns:
//   - nil on success; ErrOutOfRange on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Independence: mutations of the clone do not affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy values

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows materializes the matrix as a fresh [][]float64.
// MAIN DESCRIPTION:
//   - Copy-based export for callers that want plain slices back.
//
// Implementation:
//   - Stage 1: allocate r row slices.
//   - Stage 2: copy each row out of the flat buffer.
//
// Behavior highlights:
//   - Returned slices are independent; mutating them never touches m.
//
// Returns:
//   - [][]float64 with len r, each row len c.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports whether m and other share shape and agree elementwise
// within eps (|a-b| <= eps per cell). A nil other never equals.
// MAIN DESCRIPTION:
//   - Tolerance-based structural comparison for tests and callers.
//
// Implementation:
//   - Stage 1: nil / shape checks (fast negative).
//   - Stage 2: single linear pass over both flat buffers.
//
// Inputs:
//   - other: candidate matrix (nil allowed, compares false).
//   - eps  : non-negative tolerance; pass DefaultEpsilon when unsure.
//
// Returns:
//   - bool: true when shapes match and every cell pair is within eps.
//
// Determinism:
//   - Fixed linear scan order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Equal(other *Dense, eps float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	var k int
	for k = range m.data { // flat compare, row-major order
		if math.Abs(m.data[k]-other.data[k]) > eps {
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// RowView returns the backing slice for row i without copying, in the manner
// of gonum's RawRowView. The slice aliases the matrix storage: callers MUST
// treat it as read-only and MUST NOT retain it past the matrix lifetime.
// Intended for hot read paths (contribution emission) where per-cell At calls
// would dominate.
//
// Panics when i is outside [0, Rows()): misuse here is a programmer error,
// not a user-data condition, so the At/Set sentinel contract does not apply.
// Complexity: O(1).
func (m *Dense) RowView(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(panicRowViewRange)
	}

	return m.data[i*m.c : (i+1)*m.c]
}
