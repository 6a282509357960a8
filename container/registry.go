package container

// ── Registry ──────────────────────────────────────────────────────────────────

// binding is one way to satisfy a requested Key: a descriptor to obtain the
// base value from, plus the transform producing the requested representation
// (the identity function when the Key is the descriptor's own).
type binding struct {
	desc      *descriptor
	transform func(any) (any, error)
}

// registry is the frozen Key → ordered bindings index. It is built exactly
// once by Builder.Build, shared read-only by every resolver derived from it,
// and therefore never a contention point.
type registry struct {
	descs   []*descriptor
	buckets map[Key][]binding
}

func newRegistry(descs []*descriptor) *registry {
	buckets := make(map[Key][]binding)
	for _, d := range descs {
		for _, m := range d.mappings {
			buckets[m.target] = append(buckets[m.target], binding{desc: d, transform: m.transform})
		}
	}
	return &registry{descs: descs, buckets: buckets}
}

// lookup returns the bindings for a Key in registration order. Unknown Keys
// yield an empty slice; whether that is an error is the caller's call.
func (r *registry) lookup(key Key) []binding {
	return r.buckets[key]
}
