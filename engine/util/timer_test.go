package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	stop := timer.Start("integrate")
	require.GreaterOrEqual(t, stop(), 0.0)
	timer.Start("platforms")()
	timer.Start("integrate")()

	require.Equal(t, int64(2), timer.GetState("integrate").Count())
	require.GreaterOrEqual(t, timer.GetState("platforms").LastDuration(), 0.0)
	require.Nil(t, timer.GetState("unknown"))
	require.Contains(t, timer.String(), "integrate")

	timer.Reset()
	require.Zero(t, timer.GetState("integrate").Count())
}
