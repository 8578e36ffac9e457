// SPDX-License-Identifier: MIT

// Package mapreduce: the parallel fan-out/fan-in kernel.
//
// Purpose:
//   - Exploit the pipeline's independence invariants: records are emitted by
//     row-block with no coordination, keys are hash-sharded into disjoint
//     partitions, and every group is reduced by exactly one worker.
//   - No locks anywhere: each worker writes only slots it owns (per-worker
//     slices, per-shard maps) and cells fan in over a channel to a single
//     assembler.

package mapreduce

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/matreduce/matrix"
)

// cellBuffer sizes the reduce→assemble channel. Large enough that workers
// rarely stall on the assembler, small enough to keep cells flowing instead
// of pooling.
const cellBuffer = 1024

// cell is one reduced output value fanning back in to the assembler.
type cell struct {
	key OutputKey
	val float64
}

// multiplyParallel is the fan-out/fan-in pipeline kernel.
// Implementation:
//   - Stage 1: parallel map over row-blocks.
//   - Stage 2: two-phase sharded shuffle.
//   - Stage 3: worker-pool reduce over shards, cells assembled as they
//     arrive.
//
// Complexity:
//   - Time O(m·n·p / workers) per worker, Space O(m·n·p).
func multiplyParallel(a, b *matrix.Dense, o Options) (*matrix.Dense, error) {
	recs := mapParallel(a, b, o.workers)
	shards := shuffleSharded(recs, o.workers, o.shards)

	out, err := matrix.New(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	if err = reduceSharded(shards, o, out); err != nil {
		return nil, err
	}

	return out, nil
}

// mapParallel emits the record bag with row-block fan-out.
// MAIN DESCRIPTION:
//   - Split the m output rows into one contiguous block per worker; each
//     worker emits into its own exactly-sized slice; blocks concatenate
//     afterwards.
//
// Implementation:
//   - Stage 1: rows-per-worker split, remainder rows to the last worker.
//   - Stage 2: workers run emitRowRange on their block (no shared state; a
//     worker touches only parts[w]).
//   - Stage 3: order-independent merge into one bag.
//
// Determinism:
//   - The merged multiset equals the sequential bag exactly; only record
//     order differs, which no consumer may rely on.
//
// Complexity:
//   - Time O(m·n·p / workers) per worker, Space O(m·n·p) total.
func mapParallel(a, b *matrix.Dense, workers int) []Contribution {
	m := a.Rows()
	rowsPerWorker := m / workers
	remainder := m % workers

	parts := make([][]Contribution, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	var w, start, end int
	for w = 0; w < workers; w++ {
		start = w * rowsPerWorker
		end = start + rowsPerWorker
		if w == workers-1 {
			end += remainder // last worker takes the remainder rows
		}
		go func(w, start, end int) {
			defer wg.Done()
			parts[w] = emitRowRange(a, b, start, end,
				make([]Contribution, 0, emitCapacity(a, b, start, end)))
		}(w, start, end)
	}
	wg.Wait()

	// Order-independent merge; capacity is the exact total record count.
	out := make([]Contribution, 0, emitCapacity(a, b, 0, m))
	for w = 0; w < workers; w++ {
		out = append(out, parts[w]...)
	}

	return out
}

// shuffleSharded partitions the bag into `shards` disjoint Grouped maps.
// MAIN DESCRIPTION:
//   - Two-phase sharded grouping: workers bucket their chunk of the bag by
//     key hash, then each shard merges its buckets from every worker.
//
// Implementation:
//   - Stage 1 (partition): the bag splits into one chunk per worker; each
//     worker buckets records into `shards` local Grouped maps by
//     shardIndex. Workers share nothing but the read-only bag.
//   - Stage 2 (merge): one goroutine per shard concatenates that shard's
//     buckets across all workers. Shards are disjoint key sets, so merges
//     never contend.
//
// Behavior highlights:
//   - Union of all shards is exactly Shuffle(recs); sharding changes
//     geometry, never content.
//   - No key is dropped: every record lands in the bucket of its key's
//     shard in phase 1 and survives concatenation in phase 2.
//
// Complexity:
//   - Time O(len(recs)) work split across workers, Space O(len(recs)).
func shuffleSharded(recs []Contribution, workers, shards int) []Grouped {
	// Stage 1: per-worker bucketing of one chunk each.
	local := make([][]Grouped, workers)
	chunk := (len(recs) + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	var w, lo, hi int
	for w = 0; w < workers; w++ {
		lo = w * chunk
		hi = lo + chunk
		if lo > len(recs) {
			lo = len(recs)
		}
		if hi > len(recs) {
			hi = len(recs)
		}
		go func(w, lo, hi int) {
			defer wg.Done()
			buckets := make([]Grouped, shards)
			var s int
			for s = range buckets {
				buckets[s] = make(Grouped)
			}
			var rec Contribution
			for _, rec = range recs[lo:hi] {
				s = shardIndex(rec.Key, shards)
				buckets[s][rec.Key] = append(buckets[s][rec.Key], rec.Val)
			}
			local[w] = buckets
		}(w, lo, hi)
	}
	wg.Wait()

	// Stage 2: per-shard merge across workers.
	merged := make([]Grouped, shards)
	wg.Add(shards)
	var s int
	for s = 0; s < shards; s++ {
		go func(s int) {
			defer wg.Done()
			g := make(Grouped)
			var w int
			var key OutputKey
			var vals Group
			for w = 0; w < workers; w++ {
				for key, vals = range local[w][s] {
					g[key] = append(g[key], vals...)
				}
			}
			merged[s] = g
		}(s)
	}
	wg.Wait()

	return merged
}

// reduceSharded folds every group and assembles cells into out.
// MAIN DESCRIPTION:
//   - Worker pool over shards: each worker owns whole shards at a time,
//     reduces every group in them, and sends cells to the single assembler
//     running in the calling goroutine.
//
// Implementation:
//   - Stage 1: start workers consuming the shard queue; start the closer
//     (close results after the last worker exits).
//   - Stage 2: feed all shards (buffered to len(shards), so feeding never
//     blocks) and close the queue.
//   - Stage 3: assemble — drain results fully so no worker can block
//     mid-send, remembering the first Set failure if any.
//   - Stage 4: error priority — a reduce integrity fault wins over an
//     assembly fault.
//
// Behavior highlights:
//   - Strict-join failures abort the owning worker immediately; the caller
//     discards the whole result, preserving all-or-nothing semantics.
//   - Cells for different keys arrive in arbitrary interleave; each key
//     arrives exactly once, so assembly needs no synchronization beyond the
//     channel itself.
//
// Complexity:
//   - Time O(total records) split across workers, Space O(cellBuffer).
func reduceSharded(shards []Grouped, o Options, out *matrix.Dense) error {
	jobs := make(chan Grouped, len(shards))
	results := make(chan cell, cellBuffer)
	errs := make(chan error, o.workers)

	// Stage 1: worker pool + closer.
	var wg sync.WaitGroup
	wg.Add(o.workers)
	var w int
	for w = 0; w < o.workers; w++ {
		go func() {
			defer wg.Done()
			var v float64
			var err error
			for shard := range jobs {
				for key, g := range shard {
					if v, err = reduceGroup(g, o.strictJoin); err != nil {
						select {
						case errs <- fmt.Errorf("key %s: %w", key, err):
						default: // an error is already pending; first in wins
						}

						return // abandon the rest; the caller discards everything
					}
					results <- cell{key: key, val: v}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Stage 2: feed the queue.
	var shard Grouped
	for _, shard = range shards {
		jobs <- shard
	}
	close(jobs)

	// Stage 3: assemble; drain fully even after a Set failure.
	var setErr error
	var c cell
	for c = range results {
		if err := out.Set(c.key.Row, c.key.Col, c.val); err != nil && setErr == nil {
			setErr = err
		}
	}

	// Stage 4: reduce faults outrank assembly faults.
	select {
	case err := <-errs:
		return err
	default:
	}

	return setErr
}
