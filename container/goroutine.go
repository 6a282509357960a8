package container

import "github.com/timandy/routine"

// ── Per-goroutine slots ───────────────────────────────────────────────────────

// goroutineSlot caches one descriptor's value per calling goroutine, backed
// by goroutine-local storage. Each goroutine only ever reads and writes its
// own cell, so there is no locking and the value needs no cross-goroutine
// safety; the cell is released when its goroutine exits.
type goroutineSlot struct {
	store routine.ThreadLocal[*outcome]
}

func newGoroutineSlot() *goroutineSlot {
	return &goroutineSlot{store: routine.NewThreadLocal[*outcome]()}
}

// get returns this goroutine's cached outcome, building it on first use.
// Failures are sticky per goroutine, matching the other cached lifetimes.
func (g *goroutineSlot) get(d *descriptor, sp *Resolver) (any, error) {
	if o := g.store.Get(); o != nil {
		return o.val, o.err
	}

	o := &outcome{}
	if v, err := d.ctor(sp); err != nil {
		o.err = BuildError{Key: d.key, Err: err}
	} else {
		o.val = v
	}
	g.store.Set(o)
	return o.val, o.err
}
