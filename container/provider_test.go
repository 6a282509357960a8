package container_test

import (
	"testing"

	"github.com/km-arc/go-container/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stub providers ───────────────────────────────────────────────────────────

type recordingProvider struct {
	container.BaseProvider
	name           string
	log            *[]string
	registerCalled bool
}

func (p *recordingProvider) Register(b *container.Builder) {
	p.registerCalled = true
	*p.log = append(*p.log, "register:"+p.name)
}

func (p *recordingProvider) Boot(sp *container.Resolver) {
	*p.log = append(*p.log, "boot:"+p.name)
}

type payloadProvider struct {
	container.BaseProvider
	booted *payload
}

func (p *payloadProvider) Register(b *container.Builder) {
	container.Singleton(b, func(*container.Resolver) (*payload, error) {
		return &payload{text: "provided"}, nil
	})
}

func (p *payloadProvider) Boot(sp *container.Resolver) {
	// Boot runs against the frozen container: resolving here is safe.
	p.booted = container.MustResolve[*payload](sp)
}

// ── BuildProviders ───────────────────────────────────────────────────────────

func TestBuildProviders_RegisterThenBootInOrder(t *testing.T) {
	t.Parallel()

	var log []string
	first := &recordingProvider{name: "first", log: &log}
	second := &recordingProvider{name: "second", log: &log}

	container.BuildProviders(container.NewBuilder(), first, second)

	assert.True(t, first.registerCalled)
	assert.True(t, second.registerCalled)
	assert.Equal(t, []string{
		"register:first",
		"register:second",
		"boot:first",
		"boot:second",
	}, log)
}

func TestBuildProviders_BootResolvesRegistrations(t *testing.T) {
	t.Parallel()

	p := &payloadProvider{}
	sp := container.BuildProviders(container.NewBuilder(), p)

	require.NotNil(t, p.booted)
	got, err := container.Resolve[*payload](sp)
	require.NoError(t, err)
	assert.Same(t, p.booted, got, "boot saw the same singleton later callers get")
}
