package container

import "sync"

// ── Static registration entries ───────────────────────────────────────────────

// Entry is one deferred registration: a function that registers services on a
// Builder. Packages announce entries from init() so their services become
// available wherever the composition root builds the container, without the
// root importing every registering package's constructors explicitly.
type Entry func(*Builder)

var inventory struct {
	mu      sync.Mutex
	entries []Entry
}

// Announce appends an entry to the process-wide collection. Call it from
// init(); entries are replayed by (*Builder).Inject in announcement order.
// Order across packages follows Go's init order and therefore should not be
// relied on between independent packages; order is only stable within one
// announcing package.
func Announce(e Entry) {
	inventory.mu.Lock()
	defer inventory.mu.Unlock()
	inventory.entries = append(inventory.entries, e)
}

// Inject replays every announced entry onto the builder, appending their
// registrations after whatever the builder already holds.
func (b *Builder) Inject() *Builder {
	inventory.mu.Lock()
	entries := make([]Entry, len(inventory.entries))
	copy(entries, inventory.entries)
	inventory.mu.Unlock()

	for _, e := range entries {
		e(b)
	}
	return b
}
