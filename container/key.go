package container

import "reflect"

// ── Key ───────────────────────────────────────────────────────────────────────

// Key identifies one requested representation of a service: either a concrete
// type, or an interface view of it. Two Keys are equal exactly when they name
// the same Go type, so a concrete type and an interface it implements are
// always distinct Keys.
//
// Keys are comparable and safe to use as map keys. A Key never changes after
// creation; every registry bucket is selected by exactly one Key.
type Key struct {
	rt reflect.Type
}

// KeyOf derives the Key for T. When T is an interface type the resulting Key
// is the polymorphic view of that interface, not any particular implementer.
//
//	KeyOf[*UserRepo]()  // concrete
//	KeyOf[Greeter]()    // interface view
func KeyOf[T any]() Key {
	return Key{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// Type returns the underlying reflect.Type, or nil for the zero Key.
func (k Key) Type() reflect.Type { return k.rt }

// IsInterface reports whether the Key names an interface view.
func (k Key) IsInterface() bool {
	return k.rt != nil && k.rt.Kind() == reflect.Interface
}

// typeOfValue reports the dynamic type of a boxed value, for error messages.
func typeOfValue(v any) reflect.Type { return reflect.TypeOf(v) }

// String returns the package-qualified type name, e.g. "*mypkg.UserRepo".
func (k Key) String() string {
	if k.rt == nil {
		return "<none>"
	}
	return k.rt.String()
}
