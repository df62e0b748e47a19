package frameclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstTickNeverGates(t *testing.T) {
	c := New(60)
	s := c.Tick(0.005)
	assert.False(t, s.ShouldGate)
	assert.Zero(t, c.State().Accumulated)
	assert.Zero(t, c.State().Frames)
	assert.Equal(t, 0.005, c.State().LastTick)

	// A huge first timestamp must not count as elapsed time either.
	c = New(60)
	assert.False(t, c.Tick(1000).ShouldGate)
}

func TestGateAfterInterval(t *testing.T) {
	c := New(60)
	require.False(t, c.Tick(0.005).ShouldGate)
	require.False(t, c.Tick(0.010).ShouldGate)
	require.False(t, c.Tick(0.015).ShouldGate)
	require.False(t, c.Tick(0.020).ShouldGate)

	s := c.Tick(0.025)
	require.True(t, s.ShouldGate)
	assert.InDelta(t, 200.0, s.FPS, 0.5)
	assert.InDelta(t, 5.0, s.FrameMs, 0.01)

	st := c.State()
	assert.Zero(t, st.Frames)
	assert.Zero(t, st.Accumulated)
	assert.Equal(t, 0.025, st.LastTick)
}

func TestStaleValuesBetweenGates(t *testing.T) {
	c := New(60)
	c.Tick(0)
	gated := c.Tick(0.02)
	require.True(t, gated.ShouldGate)

	s := c.Tick(0.021)
	assert.False(t, s.ShouldGate)
	assert.Equal(t, gated.FPS, s.FPS)
	assert.Equal(t, gated.FrameMs, s.FrameMs)
}

func TestFramesResetExactlyOnGate(t *testing.T) {
	c := New(60)
	now := 0.0
	for i := 0; i < 500; i++ {
		now += 0.003
		s := c.Tick(now)
		if s.ShouldGate {
			assert.Zero(t, c.State().Frames, "tick %d", i)
			assert.Zero(t, c.State().Accumulated, "tick %d", i)
		} else if i > 0 {
			assert.NotZero(t, c.State().Frames, "tick %d", i)
		}
	}
}

func TestFirstGateAveragesOnlyTimedFrames(t *testing.T) {
	c := New(10)
	c.Tick(0)
	s := c.Tick(0.1)
	require.True(t, s.ShouldGate)
	assert.InDelta(t, 10.0, s.FPS, 1e-9)
	assert.InDelta(t, 100.0, s.FrameMs, 1e-9)
}

func TestBackwardsClockCountsAsZero(t *testing.T) {
	c := New(60)
	c.Tick(1.0)
	s := c.Tick(0.5)
	assert.False(t, s.ShouldGate)
	assert.Zero(t, c.State().Accumulated)
	assert.Equal(t, 0.5, c.State().LastTick)
}

func TestDefaultGateHz(t *testing.T) {
	assert.InDelta(t, 1.0/60, New(0).Interval(), 1e-12)
	assert.InDelta(t, 0.1, New(10).Interval(), 1e-12)
}
