package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/framesight/pkg/capture"
	"github.com/NVIDIA/framesight/pkg/config"
	"github.com/NVIDIA/framesight/pkg/providers"
)

func TestNewCommandTree(t *testing.T) {
	root := New()
	require.NotNil(t, root)
	assert.Equal(t, "framesight", root.Name)

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"observe", "capture", "policy"}, names)
}

func TestRegisterProviders(t *testing.T) {
	cctx := capture.NewContext()
	registerProviders(cctx, config.New(), providers.NewTiming())

	assert.Equal(t, 3, cctx.Providers())
	for _, name := range []string{"runtime", "process", "timing"} {
		u, ok := cctx.Provider(name)
		require.True(t, ok, name)
		assert.True(t, u.IsEnabled(), name)
	}
}

func TestRegisterProvidersHonorsDisabledList(t *testing.T) {
	cfg := config.New()
	cfg.DisabledProviders = []string{"process"}

	cctx := capture.NewContext()
	registerProviders(cctx, cfg, providers.NewTiming())

	u, ok := cctx.Provider("process")
	require.True(t, ok)
	assert.False(t, u.IsEnabled())

	// Disabled at startup means absent from snapshots, still registered.
	snap := cctx.CaptureSnapshot(false)
	assert.False(t, snap.HasUnit("process"))
	assert.True(t, snap.HasUnit("runtime"))
}
