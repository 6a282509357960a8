package container

import "sync/atomic"

// ── Global resolver slot ──────────────────────────────────────────────────────

var global atomic.Pointer[Resolver]

// Install publishes the resolver as the process-wide default, reachable via
// Default. Publishing again replaces the slot; resolvers obtained earlier
// keep working, they are merely no longer the default.
//
// The slot exists for programs whose entry points cannot thread a resolver
// through (legacy call sites, generated code). Prefer passing the resolver
// explicitly everywhere the call graph allows it.
func (sp *Resolver) Install() {
	global.Store(sp)
}

// Default returns the process-wide resolver, or ErrGlobalNotInitialized when
// nothing has been published yet.
func Default() (*Resolver, error) {
	if sp := global.Load(); sp != nil {
		return sp, nil
	}
	return nil, ErrGlobalNotInitialized
}
