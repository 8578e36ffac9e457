// SPDX-License-Identifier: MIT

// Package mapreduce: the reduce phase.
//
// Purpose:
//   - Fold one group of same-key contributions into one scalar cell by
//     joining the two origins on the shared contraction index.
//   - Own nothing beyond the group handed in: per-group ownership is what
//     makes lock-free parallel reduction legal.

package mapreduce

import "fmt"

// ZeroSum is the additive identity every group fold starts from.
const ZeroSum = 0.0

// ReduceGroup folds one group into its cell value.
// MAIN DESCRIPTION:
//   - The reduce operation: split the group's records by origin into
//     two index-keyed collections, then accumulate aByIndex[k]*bByIndex[k]
//     over every contraction index k present in BOTH.
//
// Implementation:
//   - Stage 1: resolve options (join policy).
//   - Stage 2: delegate to the internal kernel shared with the engine.
//
// Behavior highlights:
//   - Lenient (default): an index present in only one collection contributes
//     nothing and is skipped silently — the defensive rule; with records
//     from Map this never fires because the mapper invariant pairs every k.
//   - Strict (WithStrictJoin): the same condition fails with
//     ErrUnpairedIndex naming the offending index.
//   - Accumulation order across k is unspecified; products and sums of
//     float64 are combined as-is, accepting ordinary floating-point
//     rounding.
//
// Inputs:
//   - g: one group (all records of one output key); nil/empty folds to 0.
//   - opts: WithStrictJoin / WithLenientJoin.
//
// Returns:
//   - (cell value, nil) normally; (0, wrapped ErrUnpairedIndex) under the
//     strict policy when an index is one-sided.
//
// Determinism:
//   - For a given multiset of records the result is identical regardless of
//     record order and map iteration schedule, modulo float rounding.
//
// Complexity:
//   - Time O(len(g)), Space O(len(g)) for the two index maps.
func ReduceGroup(g Group, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	return reduceGroup(g, o.strictJoin)
}

// reduceGroup is the fold kernel shared by ReduceGroup and the engine paths.
// Implementation:
//   - Stage 1: split records by origin into aByIndex / bByIndex (k → value).
//   - Stage 2 (strict only): every index must appear on both sides, else
//     ErrUnpairedIndex.
//   - Stage 3: accumulate products over indexes present in both maps.
//
// Notes:
//   - A duplicate index within one origin keeps the last value seen, exactly
//     the semantics of an index-keyed collection.
//   - Unknown origins (possible only for corrupt hand-built records) are
//     ignored by the split: degrade, don't fail, matching the lenient rule.
//
// Complexity:
//   - Time O(len(g)), Space O(len(g)).
func reduceGroup(g Group, strict bool) (float64, error) {
	// Stage 1: origin split into index-keyed collections.
	aByIndex := make(map[int]float64, len(g)/recordsPerRowPair)
	bByIndex := make(map[int]float64, len(g)/recordsPerRowPair)

	var tv TaggedValue
	for _, tv = range g {
		switch tv.Origin {
		case OriginA:
			aByIndex[tv.Index] = tv.Value
		case OriginB:
			bByIndex[tv.Index] = tv.Value
		}
	}

	// Stage 2: opt-in integrity check — both sides must pair per index.
	if strict {
		if err := checkPaired(aByIndex, bByIndex); err != nil {
			return 0, err
		}
	}

	// Stage 3: join on shared indexes and accumulate.
	sum := ZeroSum
	var k int
	var av, bv float64
	var ok bool
	for k, av = range aByIndex {
		if bv, ok = bByIndex[k]; ok {
			sum += av * bv // deferred multiply happens here, at the join
		}
	}

	return sum, nil
}

// checkPaired verifies that the two index-keyed collections carry exactly
// the same index set, returning a wrapped ErrUnpairedIndex naming the first
// offender otherwise. "First" follows map iteration order; which offender is
// named is unspecified, that an offender is named is not.
// Complexity: O(len(a)+len(b)).
func checkPaired(aByIndex, bByIndex map[int]float64) error {
	var k int
	var ok bool
	for k = range aByIndex {
		if _, ok = bByIndex[k]; !ok {
			return fmt.Errorf("index %d tagged %s only: %w", k, OriginA, ErrUnpairedIndex)
		}
	}
	for k = range bByIndex {
		if _, ok = aByIndex[k]; !ok {
			return fmt.Errorf("index %d tagged %s only: %w", k, OriginB, ErrUnpairedIndex)
		}
	}

	return nil
}
