package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type dependency interface {
	Do()
}

type dependencyImpl struct{}

func (d *dependencyImpl) Do() {}

func TestCheckInit(t *testing.T) {
	t.Run(`initialized check`, func(t *testing.T) {
		var dep dependency = &dependencyImpl{}
		require.NotPanics(t, func() { CheckInit("dep", dep, "value", 1) })
	})

	t.Run(`nil check`, func(t *testing.T) {
		require.PanicsWithValue(t, "dep dependency not initialized", func() { CheckInit("dep", nil) })
		var typed *dependencyImpl
		var dep dependency = typed
		require.PanicsWithValue(t, "dep dependency not initialized", func() { CheckInit("dep", dep) })
	})

	t.Run(`arguments check`, func(t *testing.T) {
		require.Panics(t, func() { CheckInit("dep") })
		require.Panics(t, func() { CheckInit(1, "dep") })
	})
}
