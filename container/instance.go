package container

// ── Instance ──────────────────────────────────────────────────────────────────

// Instance is a type-erased service value tagged with the Key it was resolved
// under. Raw resolution (ResolveKey / ResolveAllKey) returns Instances so that
// heterogeneous results can travel through untyped code; Unbox recovers the
// typed value.
type Instance struct {
	key   Key
	value any
}

// Key returns the Key the value was resolved under.
func (i Instance) Key() Key { return i.key }

// Value returns the raw boxed value without any type check.
func (i Instance) Value() any { return i.value }

// Unbox recovers the typed value from an Instance. It fails with a
// TypeMismatchError when T is not the Key the Instance was resolved under,
// never an unchecked cast.
//
//	inst, _ := sp.ResolveKey(container.KeyOf[*UserRepo]())
//	repo, err := container.Unbox[*UserRepo](inst)
func Unbox[T any](i Instance) (T, error) {
	want := KeyOf[T]()
	if i.key != want {
		var zero T
		return zero, TypeMismatchError{Want: want, Got: i.key}
	}
	v, ok := i.value.(T)
	if !ok {
		var zero T
		return zero, TypeMismatchError{Want: want, Got: i.key}
	}
	return v, nil
}
