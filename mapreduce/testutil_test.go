// Package mapreduce_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal and
// avoid duplicating functionality that already lives in focused test files.
package mapreduce_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matreduce/mapreduce"
	"github.com/katalvlaran/matreduce/matrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsOracle is the tolerance used when comparing the engine against the
	// gonum oracle on random float input; tighter than any drift the small
	// test sizes can accumulate.
	epsOracle = 1e-9

	// epsExact demands bit-identical cells; valid whenever both paths join
	// the same index-keyed collections (integer inputs, path comparisons).
	epsExact = 0.0

	// seedDet is the deterministic seed for every random fill in this suite.
	seedDet = int64(42)
)

// mustFromRows builds a Dense from rows or fails the test immediately.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err) // helper input must be well-formed

	return m
}

// randomDense fills an r×c matrix with deterministic pseudo-random integer
// values. Integers keep every product and sum exactly representable in
// float64, so accumulation order (which follows map iteration) can never
// perturb a result and exact equality assertions stay valid.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j] = float64(rng.Intn(21) - 10) // integers in [-10,10]
		}
	}

	return mustFromRows(t, rows)
}

// identityDense builds the n×n identity matrix.
func identityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}

	return mustFromRows(t, rows)
}

// countByOrigin tallies the records of one group per origin.
func countByOrigin(g mapreduce.Group) (nA, nB int) {
	var tv mapreduce.TaggedValue
	for _, tv = range g {
		switch tv.Origin {
		case mapreduce.OriginA:
			nA++
		case mapreduce.OriginB:
			nB++
		}
	}

	return nA, nB
}

// shuffleRecords returns a deterministically permuted copy of the record bag,
// used to prove that no stage relies on emission order.
func shuffleRecords(recs []mapreduce.Contribution, seed int64) []mapreduce.Contribution {
	out := make([]mapreduce.Contribution, len(recs))
	copy(out, recs)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
