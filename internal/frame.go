package internal

// maxStep caps the time step a single frame may consume, so that a
// frame after a long stall (minimised window, suspended laptop) does
// not teleport every body across its orbit.
const maxStep = 0.25

// frameClock derives the per-frame time step from a monotonic
// timestamp, in seconds. The first tick yields zero so that a scene is
// never advanced by the time spent starting up, and the clock never
// reports a negative step or one longer than maxStep.
type frameClock struct {
	last    float64
	started bool
}

func (c *frameClock) tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > maxStep {
		return maxStep
	}
	return dt
}
