// SPDX-License-Identifier: MIT

// Package matrix - gonum bridge.
//
// Purpose:
//   - Let callers hand results onward into the gonum.org/v1/gonum/mat
//     ecosystem without reshaping data by hand, and let gonum-built
//     matrices enter the pipeline under the same shape contract as
//     NewFromRows.
//   - Both directions copy: a *Dense and its gonum counterpart never share
//     storage, preserving the package's isolation guarantee.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a freshly allocated gonum *mat.Dense with the same shape
// and values. Both layouts are row-major, so the export is a single flat copy.
// MAIN DESCRIPTION:
//   - Copy-out bridge to gonum for downstream linear algebra.
//
// Implementation:
//   - Stage 1: copy the flat buffer.
//   - Stage 2: wrap it via mat.NewDense(r, c, data).
//
// Behavior highlights:
//   - The returned matrix owns its buffer; later edits on either side stay
//     private.
//
// Returns:
//   - *mat.Dense with identical shape and values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum builds a *Dense from any gonum mat.Matrix.
// MAIN DESCRIPTION:
//   - Copy-in bridge applying this package's shape contract to gonum input.
//
// Implementation:
//   - Stage 1: nil check (ErrNilMatrix).
//   - Stage 2: validate Dims() against the rows>=1, cols>=1 contract.
//   - Stage 3: copy cell by cell in fixed i→j order via the mat.Matrix
//     interface (works for views, transposes and other virtual matrices).
//
// Inputs:
//   - g: any gonum matrix value (concrete or virtual).
//
// Returns:
//   - *Dense holding a private copy of g's values.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrBadShape when g has zero rows or zero columns.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum(%dx%d): %w", r, c, ErrBadShape)
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ { // fixed traversal order
		for j = 0; j < c; j++ {
			m.data[i*c+j] = g.At(i, j)
		}
	}

	return m, nil
}
