// Package container provides a type-indexed service container with scoped
// lifetimes for Go.
//
// # Overview
//
// Services are registered as constructor functions on a Builder, which is
// frozen into an immutable Resolver. Resolution is lazy and recursive: a
// constructor receives the Resolver and pulls in its own dependencies, so the
// object graph is evaluated depth-first, per call, with each value cached
// according to its declared lifetime.
//
// Unlike a string-keyed container, every lookup is indexed by a Key derived
// from a Go type (a concrete type or an interface view), so there are no
// name collisions and no stringly-typed wiring.
//
// # Lifetimes
//
//	// Transient: new value every resolve
//	container.Transient(b, func(sp *container.Resolver) (*Conn, error) {
//	    pool, err := container.Resolve[*Pool](sp)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return pool.Get()
//	})
//
//	// Singleton: built once per resolver, shared by every caller
//	container.Singleton(b, func(*container.Resolver) (*Pool, error) {
//	    return OpenPool()
//	})
//
//	// PerGoroutine: built once per calling goroutine
//	container.PerGoroutine(b, func(*container.Resolver) (*Scratch, error) {
//	    return NewScratch(), nil
//	})
//
//	// PerTask: built once per task span (request scope, job scope, ...)
//	container.PerTask(b, func(*container.Resolver) (*RequestID, error) {
//	    return NewRequestID(), nil
//	})
//
// Singleton and per-task values may be handed to any goroutine and must be
// safe to share; transient and per-goroutine values need not be.
//
// # Mappings
//
// One registration can satisfy several Keys. MapAs declares a custom
// transformation, As declares an interface view (checked at registration
// time). The base value is cached under the registration's lifetime; the
// transform runs on every resolve, so mapped views always observe the current
// state of the cached base.
//
//	reg := container.Singleton(b, newSMTPMailer)
//	container.As[Mailer](reg)
//	container.MapAs(reg, func(m *SMTPMailer) (*MailerStats, error) {
//	    return m.Stats(), nil
//	})
//
// # Resolving
//
//	sp := b.Build()
//
//	mailer, err := container.Resolve[Mailer](sp)       // first registration
//	all, err := container.ResolveAll[Mailer](sp)       // every registration, in order
//	inst, err := sp.ResolveKey(container.KeyOf[Mailer]()) // type-erased
//	mailer, err = container.Unbox[Mailer](inst)           // checked downcast
//
// Resolution failures (unknown Key, failing constructor, wrong downcast,
// missing task span) are returned errors, never panics. A constructor error
// is cached terminally for the cached lifetimes: the constructor does not run
// again, every later resolve returns the same BuildError.
//
// # Task spans
//
// Per-task services live in an explicit span. sp.NewTask() starts a fresh
// one; NewTaskContext/FromTaskContext carry a span through a context.Context,
// which is how HTTP middleware gives every request its own scope:
//
//	func scoped(sp *container.Resolver, next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        next.ServeHTTP(w, r.WithContext(container.NewTaskContext(r.Context(), sp)))
//	    })
//	}
//
// # Cycles
//
// A registration cycle (A resolves B resolves A) fails fast with CycleError
// carrying the dependency path. Two goroutines building two singletons that
// resolve each other can still deadlock on the slot locks; keep constructor
// graphs acyclic.
//
// # Providers, inventory, global
//
// Provider gives registrations a Register/Boot lifecycle (see
// BuildProviders). Announce/Inject collect registrations from init()
// functions across packages into the builder. Install/Default expose an
// optional process-wide resolver for call sites that cannot be threaded one.
package container
