// Package mapreduce_test contains unit tests for the map phase: record
// counts, per-key composition, eager validation and path equivalence.
package mapreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matreduce/mapreduce"
)

// TestMapRecordCount verifies the exact 2·m·n·p emission invariant.
func TestMapRecordCount(t *testing.T) {
	a := randomDense(t, 3, 4, seedDet)   // A is 3x4 (m=3, n=4)
	b := randomDense(t, 4, 5, seedDet+1) // B is 4x5 (n=4, p=5)

	recs, err := mapreduce.Map(a, b, mapreduce.WithSequential())
	require.NoError(t, err)        // compatible shapes must map
	require.Len(t, recs, 2*3*4*5)  // expect exactly 2·m·n·p records
}

// TestMapPerKeyComposition verifies that every output key carries exactly
// n A-tagged and n B-tagged records, one pair per contraction index.
func TestMapPerKeyComposition(t *testing.T) {
	const m, n, p = 3, 4, 2
	a := randomDense(t, m, n, seedDet)
	b := randomDense(t, n, p, seedDet+1)

	recs, err := mapreduce.Map(a, b)
	require.NoError(t, err)

	groups := mapreduce.Shuffle(recs)
	require.Len(t, groups, m*p) // one group per output cell, none missing

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			g, ok := groups[mapreduce.OutputKey{Row: i, Col: j}]
			require.True(t, ok, "key (%d,%d) missing", i, j) // every cell keyed

			nA, nB := countByOrigin(g)
			require.Equal(t, n, nA) // exactly n A-tagged records per key
			require.Equal(t, n, nB) // exactly n B-tagged records per key

			// One pair per contraction index: both sides cover [0,n) exactly.
			seenA := make(map[int]bool, n)
			seenB := make(map[int]bool, n)
			var tv mapreduce.TaggedValue
			for _, tv = range g {
				require.GreaterOrEqual(t, tv.Index, 0) // k in range
				require.Less(t, tv.Index, n)           // k in range
				if tv.Origin == mapreduce.OriginA {
					require.False(t, seenA[tv.Index]) // no duplicate A index
					seenA[tv.Index] = true
				} else {
					require.False(t, seenB[tv.Index]) // no duplicate B index
					seenB[tv.Index] = true
				}
			}
		}
	}
}

// TestMapEmitsSourceValues verifies records carry the actual matrix elements.
func TestMapEmitsSourceValues(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	recs, err := mapreduce.Map(a, b, mapreduce.WithSequential())
	require.NoError(t, err)

	groups := mapreduce.Shuffle(recs)
	g := groups[mapreduce.OutputKey{Row: 1, Col: 0}] // cell (1,0): row 1 of A, col 0 of B

	want := map[mapreduce.TaggedValue]bool{
		{Origin: mapreduce.OriginA, Index: 0, Value: 3}: true, // A[1][0]
		{Origin: mapreduce.OriginA, Index: 1, Value: 4}: true, // A[1][1]
		{Origin: mapreduce.OriginB, Index: 0, Value: 5}: true, // B[0][0]
		{Origin: mapreduce.OriginB, Index: 1, Value: 7}: true, // B[1][0]
	}
	require.Len(t, g, len(want)) // 2n records for n=2
	var tv mapreduce.TaggedValue
	for _, tv = range g {
		require.True(t, want[tv], "unexpected record %+v", tv) // every record accounted for
	}
}

// TestMapDimensionMismatch ensures incompatible shapes fail before any
// record is emitted, naming both shapes.
func TestMapDimensionMismatch(t *testing.T) {
	a := randomDense(t, 2, 3, seedDet) // 2x3
	b := randomDense(t, 2, 2, seedDet) // 2x2: contraction 3 != 2

	recs, err := mapreduce.Map(a, b)
	require.ErrorIs(t, err, mapreduce.ErrDimensionMismatch) // expect the sentinel
	require.Nil(t, recs)                                    // nothing emitted
	require.ErrorContains(t, err, "2x3")                    // A's shape named
	require.ErrorContains(t, err, "2x2")                    // B's shape named
}

// TestMapNilInput ensures nil operands fail with ErrNilMatrix.
func TestMapNilInput(t *testing.T) {
	a := randomDense(t, 2, 2, seedDet)

	_, err := mapreduce.Map(nil, a)
	require.ErrorIs(t, err, mapreduce.ErrNilMatrix) // nil A rejected

	_, err = mapreduce.Map(a, nil)
	require.ErrorIs(t, err, mapreduce.ErrNilMatrix) // nil B rejected
}

// TestMapParallelSameMultiset proves the parallel emission produces exactly
// the sequential record multiset, independent of worker count.
func TestMapParallelSameMultiset(t *testing.T) {
	a := randomDense(t, 16, 7, seedDet)
	b := randomDense(t, 7, 9, seedDet+1)

	seq, err := mapreduce.Map(a, b, mapreduce.WithSequential())
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		par, err := mapreduce.Map(a, b, mapreduce.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, par, len(seq)) // same cardinality

		// Compare as multisets: Contribution is comparable, so tally both.
		tally := make(map[mapreduce.Contribution]int, len(seq))
		var rec mapreduce.Contribution
		for _, rec = range seq {
			tally[rec]++
		}
		for _, rec = range par {
			tally[rec]--
		}
		for rec, count := range tally {
			require.Zero(t, count, "multiset mismatch at %+v with %d workers", rec, workers)
		}
	}
}
