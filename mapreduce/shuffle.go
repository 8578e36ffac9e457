// SPDX-License-Identifier: MIT

// Package mapreduce: the shuffle/group phase.
//
// Purpose:
//   - Partition the contribution bag purely by output key; pure bookkeeping,
//     no failure mode, no dropped keys.
//   - Provide the key→shard hash that the parallel pipeline uses to fan
//     groups back out for reduction.

package mapreduce

import (
	"encoding/binary"
	"hash/fnv"
)

// Shuffle partitions records by output key.
// MAIN DESCRIPTION:
//   - The group operation: a mapping from every key that appears in
//     at least one record to the group of its tagged values.
//
// Implementation:
//   - Stage 1: allocate the result map.
//   - Stage 2: single pass appending each record's value to its key's group.
//
// Behavior highlights:
//   - Cannot fail on any input, including nil and empty (returns an empty
//     mapping).
//   - Partition property: every record lands in exactly one group; the
//     union of all groups is the input multiset.
//   - Insertion order inside a group is whatever the input order was; the
//     reducer is order-independent, so this carries no meaning.
//
// Inputs:
//   - recs: the record bag (typically from Map, but any records group fine).
//
// Returns:
//   - Grouped: key → Group partition.
//
// Determinism:
//   - The partition (as a multiset-valued mapping) is identical for any
//     permutation of recs.
//
// Complexity:
//   - Time O(len(recs)), Space O(len(recs)).
func Shuffle(recs []Contribution) Grouped {
	groups := make(Grouped)
	var rec Contribution
	for _, rec = range recs {
		groups[rec.Key] = append(groups[rec.Key], rec.Val)
	}

	return groups
}

// shardIndex assigns a key to one of n shards by FNV-1a over the key's
// fixed-width encoding. Same key, same shard, always; distinct keys spread
// uniformly enough for load balance. n must be >= 1 (guaranteed by
// finalizeOptions).
// Complexity: O(1).
func shardIndex(key OutputKey, n int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(key.Row))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(key.Col))

	h := fnv.New32a()
	_, _ = h.Write(buf[:]) // fnv.Write never fails

	return int(h.Sum32() % uint32(n))
}
