package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	var clock frameClock

	assert.Zero(t, clock.tick(100.0), "first tick carries no elapsed time")
	assert.InDelta(t, 0.016, clock.tick(100.016), 1e-9)
	assert.InDelta(t, 0.484, clock.tick(100.5), 1e-9)
}

func TestFrameClockNeverGoesBackwards(t *testing.T) {
	var clock frameClock
	clock.tick(50)
	assert.Zero(t, clock.tick(49), "a clock glitch must not produce a negative step")
	// The glitched timestamp still becomes the new reference.
	assert.InDelta(t, 0.1, clock.tick(49.1), 1e-9)
}

func TestFrameClockCapsLongStalls(t *testing.T) {
	var clock frameClock
	clock.tick(10)
	// A minimised window or suspended machine must not replay the
	// whole stall in one step.
	assert.Equal(t, maxStep, clock.tick(70))
	assert.InDelta(t, 0.02, clock.tick(70.02), 1e-9)
}
