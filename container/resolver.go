package container

// ── Resolver ──────────────────────────────────────────────────────────────────

// Resolver combines the frozen registry with the live lifetime caches. It is
// safe for concurrent use from any number of goroutines and is the value
// passed into constructors so they can resolve their own dependencies.
//
// Resolver values are cheap to copy; all copies share the registry, the
// singleton slots and the per-goroutine storage. A copy bound to a task span
// (NewTask) additionally carries that span.
type Resolver struct {
	reg     *registry
	singles []*slot          // singleton slots, indexed by descriptor id
	locals  []*goroutineSlot // per-goroutine slots, indexed by descriptor id
	task    *taskScope       // nil unless bound to a task span

	// chain is the in-progress resolution path of the current call stack.
	// It rides on the resolver value handed to each constructor, which is
	// what makes cycle detection per-call rather than per-container.
	chain []chainLink
}

type chainLink struct {
	id  int
	key Key
}

// ── Raw resolution ────────────────────────────────────────────────────────────

// ResolveKey resolves the first registration satisfying key (earliest wins)
// and returns the boxed value. Unknown keys fail with NotRegisteredError.
func (sp *Resolver) ResolveKey(key Key) (Instance, error) {
	bs := sp.reg.lookup(key)
	if len(bs) == 0 {
		return Instance{}, NotRegisteredError{Key: key}
	}
	return sp.resolveBinding(bs[0], key)
}

// ResolveAllKey resolves every registration satisfying key, in registration
// order. Each match is obtained and cached independently under its own
// descriptor's lifetime. Zero matches is not an error: the result is an empty
// slice, which is the intended way to collect "all implementers of an
// interface" that may legitimately be absent.
func (sp *Resolver) ResolveAllKey(key Key) ([]Instance, error) {
	bs := sp.reg.lookup(key)
	out := make([]Instance, 0, len(bs))
	for _, b := range bs {
		inst, err := sp.resolveBinding(b, key)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// resolveBinding obtains the base value through the descriptor's lifetime
// cache, then applies the binding's transform to produce the requested
// representation. The transform is a pure read-then-map step: it runs on
// every resolve and never writes back into the cache.
func (sp *Resolver) resolveBinding(b binding, key Key) (Instance, error) {
	base, err := sp.obtain(b.desc)
	if err != nil {
		return Instance{}, err
	}
	v, err := b.transform(base)
	if err != nil {
		return Instance{}, BuildError{Key: key, Err: err}
	}
	return Instance{key: key, value: v}, nil
}

// obtain dispatches to the descriptor's lifetime cache. The constructor, when
// it runs, receives a child resolver whose chain records this descriptor, so
// a registration cycle fails fast instead of deadlocking on a slot lock or
// exhausting the stack.
func (sp *Resolver) obtain(d *descriptor) (any, error) {
	for _, l := range sp.chain {
		if l.id == d.id {
			return nil, CycleError{Chain: sp.cycleChain(d)}
		}
	}
	child := sp.child(d)

	switch d.lifetime {
	case LifetimeTransient:
		v, err := d.ctor(child)
		if err != nil {
			return nil, BuildError{Key: d.key, Err: err}
		}
		return v, nil
	case LifetimeSingleton:
		return sp.singles[d.id].get(d, child)
	case LifetimeGoroutine:
		return sp.locals[d.id].get(d, child)
	case LifetimeTask:
		if sp.task == nil {
			return nil, NoTaskError{Key: d.key}
		}
		return sp.task.slot(d.id).get(d, child)
	}
	return nil, NotRegisteredError{Key: d.key}
}

// child copies the resolver with d appended to the resolution chain. The
// chain backing array is cloned so sibling resolutions never alias it.
func (sp *Resolver) child(d *descriptor) *Resolver {
	cp := *sp
	cp.chain = make([]chainLink, 0, len(sp.chain)+1)
	cp.chain = append(cp.chain, sp.chain...)
	cp.chain = append(cp.chain, chainLink{id: d.id, key: d.key})
	return &cp
}

func (sp *Resolver) cycleChain(d *descriptor) []Key {
	keys := make([]Key, 0, len(sp.chain)+1)
	for _, l := range sp.chain {
		keys = append(keys, l.key)
	}
	return append(keys, d.key)
}

// ── Typed resolution ──────────────────────────────────────────────────────────

// Resolve resolves a single T from the resolver.
//
//	repo, err := container.Resolve[*UserRepo](sp)
func Resolve[T any](sp *Resolver) (T, error) {
	inst, err := sp.ResolveKey(KeyOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return Unbox[T](inst)
}

// ResolveAll resolves every registration satisfying T, in registration order.
//
//	greeters, err := container.ResolveAll[Greeter](sp)
func ResolveAll[T any](sp *Resolver) ([]T, error) {
	insts, err := sp.ResolveAllKey(KeyOf[T]())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(insts))
	for _, inst := range insts {
		v, err := Unbox[T](inst)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MustResolve is Resolve for composition roots where a missing registration
// is a programming error; it panics on failure.
func MustResolve[T any](sp *Resolver) T {
	v, err := Resolve[T](sp)
	if err != nil {
		panic(err)
	}
	return v
}
