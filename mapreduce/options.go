// SPDX-License-Identifier: MIT

// Package mapreduce: functional configuration for the pipeline.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsense values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package mapreduce

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects the worker count when WithWorkers is absent.
	// Zero means "resolve to runtime.NumCPU() at call time".
	DefaultWorkers = 0

	// DefaultShards selects the shuffle shard count when WithShards is
	// absent. Zero means "resolve to the effective worker count", which
	// keeps every reduce worker fed with exactly one shard by default.
	DefaultShards = 0

	// DefaultStrictJoin keeps the reducer's lenient policy: a contraction
	// index present in only one origin's records contributes nothing and is
	// skipped silently. See WithStrictJoin for the opt-in integrity check.
	DefaultStrictJoin = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersNegative = "mapreduce: WithWorkers: n must be >= 0"
	panicShardsNegative  = "mapreduce: WithShards: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in content to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers    int  // effective worker count after finalize (>= 1)
	shards     int  // effective shuffle shard count after finalize (>= 1)
	strictJoin bool // reducer integrity policy (DefaultStrictJoin)
}

// ---------- Constructors (WithX) ----------

// WithWorkers pins the number of map/reduce workers.
// Implementation:
//   - Stage 1: validate n >= 0 (0 keeps the auto default).
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - n == 0 re-selects the default (runtime.NumCPU() at resolution time).
//   - n == 1 is the sequential pipeline, same result, no goroutine fan-out.
//
// Inputs:
//   - n: worker count, n >= 0.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Leave unset for CPU-bound batch work; pin low (2–4) when sharing a
//     host with latency-sensitive services.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = n }
}

// WithShards pins the number of shuffle shards.
// Implementation:
//   - Stage 1: validate n >= 0 (0 keeps the auto default).
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - Shard count never changes results, only the fan-out geometry: keys are
//     distributed by FNV-1a hash, and disjoint shards reduce independently.
//
// Inputs:
//   - n: shard count, n >= 0.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithShards(n int) Option {
	if n < 0 {
		panic(panicShardsNegative)
	}

	return func(o *Options) { o.shards = n }
}

// WithSequential forces the single-goroutine pipeline (workers = 1).
// Shorthand for WithWorkers(1); useful in tests and when reproducing an
// execution without scheduler interleaving.
// Complexity: O(1).
func WithSequential() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithStrictJoin turns the reducer's silent skip of a one-sided contraction
// index into a detectable integrity fault.
// Implementation:
//   - Stage 1: set strictJoin = true.
//
// Behavior highlights:
//   - Default policy (lenient): an index present in only one origin's
//     records contributes nothing — the defensive rule for degraded input.
//   - Strict policy: the same condition fails with ErrUnpairedIndex naming
//     the offending index, and Multiply returns no partial result.
//   - With records produced by Map from well-formed matrices the policies
//     are indistinguishable: the mapper invariant pairs every index.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Enable when groups are hand-built or replayed from storage and a
//     missing side must be a bug, not a shrug.
func WithStrictJoin() Option {
	return func(o *Options) { o.strictJoin = true }
}

// WithLenientJoin restores the default silent-skip policy for one-sided
// contraction indexes (see WithStrictJoin).
// Complexity: O(1).
func WithLenientJoin() Option {
	return func(o *Options) { o.strictJoin = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants (auto worker/shard resolution).
// This is the canonical internal entry for every public operation.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalizeOptions resolves zeros into effective counts.
//
// Returns:
//   - Options: fully resolved configuration (workers >= 1, shards >= 1).
//
// Determinism:
//   - Stable for a given sequence of setters on a given host.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		shards:     DefaultShards,
		strictJoin: DefaultStrictJoin,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Implementation:
//   - Stage 1: workers == 0 resolves to runtime.NumCPU().
//   - Stage 2: shards == 0 resolves to the effective worker count.
//
// Behavior highlights:
//   - Past this point the pipeline may assume workers >= 1 and shards >= 1;
//     no call site re-derives either.
//
// Complexity:
//   - Time O(1), Space O(1).
func finalizeOptions(o *Options) {
	if o.workers == 0 {
		o.workers = runtime.NumCPU()
	}
	if o.shards == 0 {
		o.shards = o.workers
	}
}
