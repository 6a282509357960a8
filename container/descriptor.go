package container

// ── Lifetime ──────────────────────────────────────────────────────────────────

// Lifetime selects where a constructed value is cached and how long it lives.
type Lifetime uint8

const (
	// LifetimeTransient constructs a fresh value on every resolve. No cache,
	// no locking.
	LifetimeTransient Lifetime = iota

	// LifetimeSingleton constructs once per resolver and shares the value with
	// every caller. The value must be safe for concurrent use (register a
	// pointer to a type with its own synchronization, or an immutable value).
	LifetimeSingleton

	// LifetimeGoroutine constructs once per calling goroutine. Each goroutine
	// owns its instance exclusively, so the value needs no cross-goroutine
	// safety.
	LifetimeGoroutine

	// LifetimeTask constructs once per task span (see Resolver.NewTask).
	// A span may be touched from whichever goroutines share it, so the value
	// has the same sharing requirements as a singleton.
	LifetimeTask
)

func (l Lifetime) String() string {
	switch l {
	case LifetimeTransient:
		return "transient"
	case LifetimeSingleton:
		return "singleton"
	case LifetimeGoroutine:
		return "goroutine"
	case LifetimeTask:
		return "task"
	}
	return "unknown"
}

// ── Descriptor ────────────────────────────────────────────────────────────────

// Constructor builds one service value. It receives the resolver so it can
// resolve its own dependencies, forming the dependency graph lazily,
// depth-first, per call.
type Constructor func(*Resolver) (any, error)

// mapping turns the produced value into an alternate representation under a
// different Key. The transform runs on every resolve of the target Key; it is
// never cached itself and never touches the base slot.
type mapping struct {
	target    Key
	transform func(any) (any, error)
}

// descriptor is one registration: a constructor, its lifetime, and the set of
// Keys it can satisfy. Owned by the registry and immutable after Build.
type descriptor struct {
	id       int // registration sequence, indexes the lifetime caches
	key      Key // produced (concrete) Key
	lifetime Lifetime
	ctor     Constructor
	mappings []mapping // identity first, then declaration order
}

func identity(v any) (any, error) { return v, nil }
