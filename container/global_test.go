package container_test

import (
	"testing"

	"github.com/km-arc/go-container/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mutates the process-wide slot; deliberately not parallel.
func TestGlobal_InstallAndReplace(t *testing.T) {
	_, err := container.Default()
	require.ErrorIs(t, err, container.ErrGlobalNotInitialized)

	b := container.NewBuilder()
	container.Singleton(b, func(*container.Resolver) (*payload, error) {
		return &payload{text: "global"}, nil
	})
	first := b.BuildGlobal()

	got, err := container.Default()
	require.NoError(t, err)
	assert.Same(t, first, got)

	p, err := container.Resolve[*payload](got)
	require.NoError(t, err)
	assert.Equal(t, "global", p.get())

	// Re-publishing replaces the slot; the first resolver keeps working.
	second := container.NewBuilder().Build()
	second.Install()

	got, err = container.Default()
	require.NoError(t, err)
	assert.Same(t, second, got)

	p2, err := container.Resolve[*payload](first)
	require.NoError(t, err)
	assert.Same(t, p, p2)
}
