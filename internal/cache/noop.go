package cache

import (
	"context"
	"time"
)

// Noop is the degraded-mode implementation of [TaskCache], installed when the
// startup connection attempt to the cache backend fails. Every read answers
// Unavailable, so callers fall through to the store; writes and invalidations
// succeed as no-ops.
type Noop struct{}

// NewNoop returns a cache that is permanently unavailable.
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(context.Context, string) Lookup {
	return Lookup{Outcome: Unavailable}
}

func (*Noop) SetWithTTL(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*Noop) DeleteByPrefix(context.Context, string) error {
	return nil
}
