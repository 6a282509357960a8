package container

// ── Providers ─────────────────────────────────────────────────────────────────

// Provider groups related registrations behind a two-phase lifecycle:
// Register adds constructors to the Builder, Boot runs after the container is
// frozen and may resolve anything. Do not resolve during Register; the
// container does not exist yet.
//
//	type CacheProvider struct{ container.BaseProvider }
//
//	func (p *CacheProvider) Register(b *container.Builder) {
//	    container.Singleton(b, func(sp *container.Resolver) (*Cache, error) {
//	        cfg, err := container.Resolve[*Config](sp)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return NewCache(cfg), nil
//	    })
//	}
type Provider interface {
	// Register adds service registrations to the builder.
	Register(b *Builder)

	// Boot is called after every provider has registered and the container
	// is built. Safe to resolve any registration here.
	Boot(sp *Resolver)
}

// BaseProvider is an embeddable no-op Boot, for providers that only register.
type BaseProvider struct{}

func (BaseProvider) Boot(*Resolver) {}

// BuildProviders runs the full provider lifecycle: every Register in the
// given order, then Build, then every Boot in the same order.
func BuildProviders(b *Builder, providers ...Provider) *Resolver {
	for _, p := range providers {
		p.Register(b)
	}
	sp := b.Build()
	for _, p := range providers {
		p.Boot(sp)
	}
	return sp
}
