package container_test

import (
	"testing"

	"github.com/km-arc/go-container/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Announce feeds a process-wide list, so this is the only test that calls
// Inject; deliberately not parallel.
func TestInventory_InjectReplaysAnnouncedEntries(t *testing.T) {
	container.Announce(func(b *container.Builder) {
		container.As[greeter](container.Transient(b, func(*container.Resolver) (*greeterA, error) {
			return &greeterA{}, nil
		}))
	})
	container.Announce(func(b *container.Builder) {
		container.As[greeter](container.Transient(b, func(*container.Resolver) (*greeterB, error) {
			return &greeterB{}, nil
		}))
	})

	sp := container.NewBuilder().Inject().Build()

	all, err := container.ResolveAll[greeter](sp)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Greet(), "announcement order is preserved")
	assert.Equal(t, "B", all[1].Greet())

	// A second builder replays the same entries.
	sp2 := container.NewBuilder().Inject().Build()
	all2, err := container.ResolveAll[greeter](sp2)
	require.NoError(t, err)
	assert.Len(t, all2, 2)
}
