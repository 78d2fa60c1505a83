// Package cache implements the best-effort cache layer for task reads.
//
// The cache is an optimization, never a correctness dependency: read-path
// faults collapse into misses, write-path faults are logged by the caller
// and otherwise ignored. Stale entries left behind by a failed invalidation
// self-heal once their TTL lapses.
package cache

import (
	"context"
	"time"
)

// Outcome classifies the result of a cache read.
type Outcome int

const (
	// Found means the key existed and Value holds its snapshot.
	Found Outcome = iota

	// NotFound means the key was absent or expired.
	NotFound

	// Unavailable means the cache backend could not answer.
	// Callers must treat it exactly like NotFound, except that they should
	// also skip repopulating the entry.
	Unavailable
)

// Lookup is the two-outcome-plus-fault result of a cache read. All error
// outcomes collapse into Unavailable so a cache failure can never surface
// as a request failure.
type Lookup struct {
	Outcome Outcome
	Value   []byte
}

// Hit reports whether the lookup produced a usable snapshot.
func (l Lookup) Hit() bool {
	return l.Outcome == Found
}

// TaskCache is the capability the task service orchestrates for cache-aside
// reads and write-path invalidation.
//
// SetWithTTL and DeleteByPrefix return their backend error so the caller can
// log it, but callers must never propagate it to the request.
type TaskCache interface {
	// Get fetches the snapshot stored under key.
	Get(ctx context.Context, key string) Lookup

	// SetWithTTL stores a snapshot under key for the given lifetime.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPrefix removes every key matching pattern as one batch.
	DeleteByPrefix(ctx context.Context, pattern string) error
}
