package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraMode selects which view matrix formula the camera uses.
type CameraMode int

const (
	// Orbital circles the origin on a sphere steered by drag and
	// scroll input. This is the initial mode.
	Orbital CameraMode = iota
	// TopDown looks straight down the vertical axis from a fixed
	// height and ignores all pointer input.
	TopDown
)

func (m CameraMode) String() string {
	switch m {
	case Orbital:
		return "orbital"
	case TopDown:
		return "topdown"
	}
	return "invalid"
}

// ParseCameraMode maps a mode name from configuration or input events
// onto a CameraMode. Unknown names report ok == false, the caller is
// expected to log and carry on.
func ParseCameraMode(name string) (mode CameraMode, ok bool) {
	switch name {
	case "orbital":
		return Orbital, true
	case "topdown", "top-down":
		return TopDown, true
	}
	return Orbital, false
}

// Camera turns pointer gestures into a view matrix. Yaw, pitch and
// radius are spherical coordinates around the origin; they persist
// across mode switches so that re-entering Orbital resumes exactly
// where it left off.
type Camera struct {
	Sensitivity     float64
	ZoomSensitivity float64

	MinPitch, MaxPitch   float64
	MinRadius, MaxRadius float64

	// TopDownHeight is the fixed eye height used by the TopDown mode.
	TopDownHeight float64

	mode   CameraMode
	yaw    float64
	pitch  float64
	radius float64
}

// DefaultCamera returns an orbital camera framing the whole scene.
func DefaultCamera() Camera {
	return Camera{
		Sensitivity:     0.01,
		ZoomSensitivity: 0.1,
		MinPitch:        0.15,
		MaxPitch:        math.Pi - 0.15,
		MinRadius:       5,
		MaxRadius:       120,
		TopDownHeight:   60,
		mode:            Orbital,
		yaw:             0,
		pitch:           math.Pi / 3,
		radius:          30,
	}
}

// Mode reports the active camera mode.
func (c *Camera) Mode() CameraMode { return c.mode }

// Yaw reports the horizontal orbit angle in radians.
func (c *Camera) Yaw() float64 { return c.yaw }

// Pitch reports the polar angle in radians, clamped away from the
// poles where the look-at basis degenerates.
func (c *Camera) Pitch() float64 { return c.pitch }

// Radius reports the eye distance from the origin.
func (c *Camera) Radius() float64 { return c.radius }

// SetMode switches the view matrix formula used from the next frame
// on. There is nothing else to do on a switch, the orbital parameters
// stay untouched. Unknown modes are rejected with ok == false.
func (c *Camera) SetMode(mode CameraMode) (ok bool) {
	switch mode {
	case Orbital, TopDown:
		c.mode = mode
		return true
	}
	return false
}

// Drag applies a pointer drag of (dx, dy) pixels. A no-op outside
// Orbital mode.
func (c *Camera) Drag(dx, dy float64) {
	if c.mode != Orbital {
		return
	}
	c.yaw -= dx * c.Sensitivity
	c.pitch = mgl64.Clamp(c.pitch-dy*c.Sensitivity, c.MinPitch, c.MaxPitch)
}

// Scroll applies a signed scroll wheel delta. A no-op outside Orbital
// mode.
func (c *Camera) Scroll(delta float64) {
	if c.mode != Orbital {
		return
	}
	c.radius = mgl64.Clamp(c.radius+delta*c.ZoomSensitivity, c.MinRadius, c.MaxRadius)
}

// Eye reports the current eye position in world space.
func (c *Camera) Eye() mgl64.Vec3 {
	if c.mode == TopDown {
		return mgl64.Vec3{0, c.TopDownHeight, 0}
	}
	return mgl64.Vec3{
		c.radius * math.Sin(c.pitch) * math.Sin(c.yaw),
		c.radius * math.Cos(c.pitch),
		c.radius * math.Sin(c.pitch) * math.Cos(c.yaw),
	}
}

// ViewMatrix derives the world-to-camera transform for the active
// mode, always looking at the origin. TopDown uses -Z as the up
// vector so that screen-up consistently maps to world depth.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	if c.mode == TopDown {
		return mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
	}
	return mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}
