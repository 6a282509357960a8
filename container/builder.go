package container

import (
	"fmt"
	"sync"
)

// ── Builder ───────────────────────────────────────────────────────────────────

// Builder collects service registrations and freezes them into a Resolver.
//
//	b := container.NewBuilder()
//	container.Singleton(b, func(sp *container.Resolver) (*Cache, error) {
//	    cfg, err := container.Resolve[*Config](sp)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewCache(cfg), nil
//	})
//	sp := b.Build()
//
// Registration order is a contract: ResolveAll returns matches in the order
// they were registered, and single resolution always prefers the earliest
// registration for a Key.
type Builder struct {
	mu     sync.Mutex
	frozen bool
	descs  []*descriptor
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// add appends a descriptor with the identity mapping pre-installed.
func (b *Builder) add(key Key, lt Lifetime, ctor Constructor) *descriptor {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		panic("container: registration after Build")
	}
	d := &descriptor{
		id:       len(b.descs),
		key:      key,
		lifetime: lt,
		ctor:     ctor,
		mappings: []mapping{{target: key, transform: identity}},
	}
	b.descs = append(b.descs, d)
	return d
}

// Build freezes the registrations into a Resolver. The Builder is unusable
// afterwards; calling Build twice or registering after Build panics.
func (b *Builder) Build() *Resolver {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		panic("container: Build called twice")
	}
	b.frozen = true

	singles := make([]*slot, len(b.descs))
	locals := make([]*goroutineSlot, len(b.descs))
	for i, d := range b.descs {
		switch d.lifetime {
		case LifetimeSingleton:
			singles[i] = &slot{}
		case LifetimeGoroutine:
			locals[i] = newGoroutineSlot()
		}
	}

	return &Resolver{
		reg:     newRegistry(b.descs),
		singles: singles,
		locals:  locals,
	}
}

// BuildGlobal builds the Resolver and additionally publishes it as the
// process-wide default (see Default). Re-publishing replaces the previous
// default; resolvers already handed out keep working.
func (b *Builder) BuildGlobal() *Resolver {
	sp := b.Build()
	sp.Install()
	return sp
}

// ── Registration ──────────────────────────────────────────────────────────────

// Registration is the chaining handle returned by the registration functions,
// on which alternate representations are declared via MapAs and As.
type Registration[T any] struct {
	b *Builder
	d *descriptor
}

func wrap[T any](ctor func(*Resolver) (T, error)) Constructor {
	return func(sp *Resolver) (any, error) {
		v, err := ctor(sp)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Transient registers a constructor whose value is rebuilt on every resolve.
func Transient[T any](b *Builder, ctor func(*Resolver) (T, error)) *Registration[T] {
	return &Registration[T]{b: b, d: b.add(KeyOf[T](), LifetimeTransient, wrap(ctor))}
}

// Singleton registers a constructor whose value is built lazily once per
// resolver and shared by every caller.
func Singleton[T any](b *Builder, ctor func(*Resolver) (T, error)) *Registration[T] {
	return &Registration[T]{b: b, d: b.add(KeyOf[T](), LifetimeSingleton, wrap(ctor))}
}

// PerGoroutine registers a constructor whose value is built lazily once per
// calling goroutine.
func PerGoroutine[T any](b *Builder, ctor func(*Resolver) (T, error)) *Registration[T] {
	return &Registration[T]{b: b, d: b.add(KeyOf[T](), LifetimeGoroutine, wrap(ctor))}
}

// PerTask registers a constructor whose value is built lazily once per task
// span (see Resolver.NewTask).
func PerTask[T any](b *Builder, ctor func(*Resolver) (T, error)) *Registration[T] {
	return &Registration[T]{b: b, d: b.add(KeyOf[T](), LifetimeTask, wrap(ctor))}
}

// ── Mappings ──────────────────────────────────────────────────────────────────

// MapAs declares that the registration also satisfies KeyOf[U], by running
// transform over the constructed T. The base value stays subject to the
// registration's lifetime; the transform is reapplied on every resolve of U,
// so it always observes the current state of the cached base value.
//
// Go methods cannot introduce type parameters, so mappings are package-level
// functions taking the Registration:
//
//	reg := container.Singleton(b, newPool)
//	container.MapAs(reg, func(p *Pool) (*Conn, error) { return p.Get() })
func MapAs[T, U any](r *Registration[T], transform func(T) (U, error)) *Registration[T] {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.b.frozen {
		panic("container: mapping declared after Build")
	}
	r.d.mappings = append(r.d.mappings, mapping{
		target: KeyOf[U](),
		transform: func(v any) (any, error) {
			base, ok := v.(T)
			if !ok {
				return nil, TypeMismatchError{Want: KeyOf[T](), Got: Key{rt: typeOfValue(v)}}
			}
			out, err := transform(base)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	})
	return r
}

// As declares that the registration also satisfies the interface view
// KeyOf[I]. The proof obligation is checked here, at registration time: As
// panics unless T implements I. Resolving KeyOf[I] returns the concrete value
// behind the interface; for cached lifetimes every holder shares the same
// underlying value.
//
//	reg := container.Transient(b, newSMTPMailer)
//	container.As[Mailer](reg)
func As[I any, T any](r *Registration[T]) *Registration[T] {
	iface := KeyOf[I]()
	if !iface.IsInterface() {
		panic(fmt.Sprintf("container: As target %s is not an interface", iface))
	}
	concrete := KeyOf[T]()
	if !concrete.Type().Implements(iface.Type()) {
		panic(fmt.Sprintf("container: %s does not implement %s", concrete, iface))
	}

	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.b.frozen {
		panic("container: mapping declared after Build")
	}
	r.d.mappings = append(r.d.mappings, mapping{
		target: iface,
		transform: func(v any) (any, error) {
			out, ok := v.(I)
			if !ok {
				return nil, TypeMismatchError{Want: iface, Got: Key{rt: typeOfValue(v)}}
			}
			return out, nil
		},
	})
	return r
}
