package container

import "errors"

// Error values follow one rule: ordinary misconfiguration observed at resolve
// time (unknown key, failing constructor, wrong downcast, missing task span)
// is always a returned error, never a panic. Builder misuse (registering after
// Build, declaring an interface view the type does not satisfy) panics, since
// it cannot be recovered into a working registry anyway.

// ErrGlobalNotInitialized is returned by Default before any resolver has been
// published process-wide.
var ErrGlobalNotInitialized = errors.New("container: no global resolver installed")

// NotRegisteredError is returned when a resolve requests a Key with no
// matching registration.
type NotRegisteredError struct{ Key Key }

func (e NotRegisteredError) Error() string {
	return "container: no service registered for " + e.Key.String()
}

// BuildError wraps a constructor failure with the Key that was being built.
// For singleton, per-goroutine and per-task slots the error is cached
// terminally: every later resolve of that slot returns the same BuildError
// without re-running the constructor.
//
// Nested resolution failures are wrapped once per level, so the chain of
// Unwrap calls reconstructs the dependency path that failed.
type BuildError struct {
	Key Key
	Err error
}

func (e BuildError) Error() string {
	return "container: building " + e.Key.String() + ": " + e.Err.Error()
}

func (e BuildError) Unwrap() error { return e.Err }

// TypeMismatchError is returned by Unbox when the Instance tag does not match
// the requested type.
type TypeMismatchError struct {
	Want Key
	Got  Key
}

func (e TypeMismatchError) Error() string {
	return "container: type mismatch: want " + e.Want.String() + ", got " + e.Got.String()
}

// NoTaskError is returned when a per-task service is resolved on a resolver
// that has no task span. Start one with NewTask (or NewTaskContext).
type NoTaskError struct{ Key Key }

func (e NoTaskError) Error() string {
	return "container: resolving " + e.Key.String() + ": resolver has no task span"
}

// CycleError is returned when a constructor, directly or through its
// dependencies, resolves a service that is already being built on the same
// call stack. Chain lists the produced Keys from the outermost registration
// to the repeated one.
type CycleError struct{ Chain []Key }

func (e CycleError) Error() string {
	s := "container: dependency cycle: "
	for i, k := range e.Chain {
		if i > 0 {
			s += " -> "
		}
		s += k.String()
	}
	return s
}
