// Package matrix_test contains unit tests for the Dense rectangular
// container in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matreduce/matrix"
)

// TestNewInvalidShape ensures that New rejects non-positive dimensions.
func TestNewInvalidShape(t *testing.T) {
	_, err := matrix.New(0, 5)                  // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.New(5, 0)                   // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.New(-1, 3)                  // attempt to create with negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape
}

// TestNewFromRowsValid verifies shape and values after construction from rows.
func TestNewFromRowsValid(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err) // construction of a 2x3 matrix must succeed

	require.Equal(t, 2, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, 3, m.Cols()) // assert Cols() equals expected cols

	v, err := m.At(1, 2)     // read the last cell
	require.NoError(t, err)  // assert At() succeeded
	require.Equal(t, 6.0, v) // expect row-major placement preserved

	v, err = m.At(0, 0)      // read the first cell
	require.NoError(t, err)  // assert At() succeeded
	require.Equal(t, 1.0, v) // expect first value in place

	r, c := m.Shape()      // read both dimensions at once
	require.Equal(t, 2, r) // Shape rows agree with Rows()
	require.Equal(t, 3, c) // Shape cols agree with Cols()
}

// TestNewFromRowsEmpty ensures empty input always fails at construction.
func TestNewFromRowsEmpty(t *testing.T) {
	_, err := matrix.NewFromRows(nil)           // nil sequence
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewFromRows([][]float64{})  // empty sequence
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewFromRows([][]float64{{}}) // single empty row
	require.ErrorIs(t, err, matrix.ErrBadShape)  // expect ErrBadShape
}

// TestNewFromRowsRagged ensures ragged input fails at construction, never later.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5}, // one value short
	})
	require.ErrorIs(t, err, matrix.ErrBadShape)   // expect ErrBadShape
	require.ErrorContains(t, err, "row 1")        // message names the offending row
	require.ErrorContains(t, err, "has 2 values") // message carries the bad length
}

// TestNewFromRowsDeepCopies ensures the constructor is isolated from caller slices.
func TestNewFromRowsDeepCopies(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err) // valid 2x2 construction

	src[0][0] = 99 // mutate the caller's slice after construction

	v, err := m.At(0, 0)
	require.NoError(t, err)  // assert At() succeeded
	require.Equal(t, 1.0, v) // expect the matrix kept its private copy
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New(2, 2) // create a 2x2 zero matrix
	require.NoError(t, err)    // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.New(2, 3) // create a 2x3 zero matrix
	require.NoError(t, err)    // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err) // validate creation

	clone := m.Clone() // clone the matrix

	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestToRowsIsolation ensures ToRows() copies outward rather than aliasing.
func TestToRowsIsolation(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err) // valid 2x2 construction

	rows := m.ToRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows) // exported rows match contents

	rows[1][1] = 42 // mutate the exported slice

	v, err := m.At(1, 1)
	require.NoError(t, err)  // assert At() succeeded
	require.Equal(t, 4.0, v) // expect the matrix unaffected by export mutation
}

// TestEqualTolerance exercises shape and epsilon behavior of Equal.
func TestEqualTolerance(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4 + 1e-12}})
	require.NoError(t, err)
	c, err := matrix.NewFromRows([][]float64{{1, 2, 0}, {3, 4, 0}})
	require.NoError(t, err)

	require.True(t, a.Equal(b, matrix.DefaultEpsilon))  // within tolerance
	require.False(t, a.Equal(b, 0))                     // exact compare sees the drift
	require.False(t, a.Equal(c, matrix.DefaultEpsilon)) // shape mismatch is never equal
	require.False(t, a.Equal(nil, 1))                   // nil candidate is never equal
}

// TestStringOutput checks that String() formats rows as bracketed lines.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err) // ensure valid creation

	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String()) // expect bracketed comma-separated rows
}

// TestRowViewAliasesAndPanics covers the documented RowView contract.
func TestRowViewAliasesAndPanics(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err) // valid 2x2 construction

	row := m.RowView(1)                       // second row without copying
	require.Equal(t, []float64{3, 4}, row)    // view sees current values
	require.Panics(t, func() { m.RowView(2) }) // out-of-range row is a programmer error
	require.Panics(t, func() { m.RowView(-1) }) // negative row is a programmer error
}
