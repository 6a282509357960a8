package container

import (
	"sync"
	"sync/atomic"
)

// ── Lifetime cache slot ───────────────────────────────────────────────────────

// outcome is the terminal state of a slot: either the built value or the
// cached construction failure. Failures are sticky: the constructor is never
// re-run for a slot that has failed.
type outcome struct {
	val any
	err error
}

// slot is one cache cell, moving Empty -> Building -> Ready|Failed.
//
// The mutex guards only this slot's Building transition, so unrelated
// registrations never contend. Once the outcome is published, readers take
// the atomic fast path without touching the lock. Used for singleton slots
// (one per descriptor per resolver) and task slots (one per descriptor per
// task span).
type slot struct {
	mu   sync.Mutex
	done atomic.Pointer[outcome]
}

// get returns the cached outcome, or runs the constructor under the slot
// lock. Concurrent callers block only while the one builder is inside the
// constructor; there is no deadline at this layer, so a constructor that
// never returns leaves the slot Building and its waiters blocked.
func (s *slot) get(d *descriptor, sp *Resolver) (any, error) {
	if o := s.done.Load(); o != nil {
		return o.val, o.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.done.Load(); o != nil {
		return o.val, o.err
	}

	o := &outcome{}
	if v, err := d.ctor(sp); err != nil {
		o.err = BuildError{Key: d.key, Err: err}
	} else {
		o.val = v
	}
	s.done.Store(o)
	return o.val, o.err
}
