// Package scene holds the simulation state of the orrery: a star, the
// bodies orbiting it and the camera looking at them. It knows nothing
// about the GPU, everything here is plain float64 math so that the
// animation is reproducible and testable without a rendering context.
package scene

import "github.com/go-gl/mathgl/mgl64"

// OrbitTimeScale is a global slowdown applied to orbital motion only.
// Spin runs at full speed, the asymmetry is authored behaviour.
const OrbitTimeScale = 0.5

// Renderable is notified whenever the model matrix of the object it
// draws has been rebuilt. The renderer side implements this, tests get
// by without one.
type Renderable interface {
	SetModelMatrix(mgl64.Mat4)
}

// Body is a single object on a circular orbit around the origin.
// Angles accumulate forever, wrap-around is left to the trigonometry.
type Body struct {
	Renderable Renderable

	OrbitRadius float64
	OrbitSpeed  float64
	SpinSpeed   float64
	Size        float64

	orbitAngle float64
	spinAngle  float64

	model mgl64.Mat4
}

// NewBody returns a body at angle zero with an identity transform.
func NewBody(orbitRadius, orbitSpeed, spinSpeed, size float64) *Body {
	return &Body{
		OrbitRadius: orbitRadius,
		OrbitSpeed:  orbitSpeed,
		SpinSpeed:   spinSpeed,
		Size:        size,
		model:       mgl64.Ident4(),
	}
}

// OrbitAngle reports the accumulated orbit angle in radians.
func (b *Body) OrbitAngle() float64 { return b.orbitAngle }

// SpinAngle reports the accumulated self-rotation angle in radians.
func (b *Body) SpinAngle() float64 { return b.spinAngle }

// ModelMatrix reports the transform rebuilt by the last Advance.
func (b *Body) ModelMatrix() mgl64.Mat4 { return b.model }

func (b *Body) advance(dt float64) {
	b.orbitAngle += b.OrbitSpeed * dt * OrbitTimeScale
	b.spinAngle += b.SpinSpeed * dt

	// Rebuilt from scratch every frame. Composing onto the previous
	// matrix would compound rounding error and entangle orbit with
	// spin irreversibly.
	b.model = mgl64.HomogRotate3DY(b.orbitAngle).
		Mul4(mgl64.Translate3D(b.OrbitRadius, 0, 0)).
		Mul4(mgl64.HomogRotate3DY(b.spinAngle)).
		Mul4(mgl64.Scale3D(b.Size, b.Size, b.Size))
	if b.Renderable != nil {
		b.Renderable.SetModelMatrix(b.model)
	}
}

// Star sits at the origin and only spins. It is drawn emissive, so it
// lights itself regardless of the light position uniform.
type Star struct {
	Renderable Renderable

	SpinRate float64
	Size     float64

	spinAngle float64
	model     mgl64.Mat4
}

// NewStar returns a star with an identity transform.
func NewStar(spinRate, size float64) *Star {
	return &Star{SpinRate: spinRate, Size: size, model: mgl64.Ident4()}
}

// SpinAngle reports the accumulated self-rotation angle in radians.
func (s *Star) SpinAngle() float64 { return s.spinAngle }

// ModelMatrix reports the transform rebuilt by the last Advance.
func (s *Star) ModelMatrix() mgl64.Mat4 { return s.model }

func (s *Star) advance(dt float64) {
	s.spinAngle += s.SpinRate * dt
	s.model = mgl64.HomogRotate3DY(s.spinAngle).
		Mul4(mgl64.Scale3D(s.Size, s.Size, s.Size))
	if s.Renderable != nil {
		s.Renderable.SetModelMatrix(s.model)
	}
}

// Scene owns the star, the ordered list of bodies (the order is the
// draw order) and the camera. It is built once at startup and lives
// for the whole process.
type Scene struct {
	Star   *Star
	Bodies []*Body
	Camera Camera
}

// New assembles a scene with the default camera.
func New(star *Star, bodies ...*Body) *Scene {
	return &Scene{Star: star, Bodies: bodies, Camera: DefaultCamera()}
}

// Advance steps every accumulated angle by dt seconds and rebuilds all
// transforms. Negative dt is treated as zero; capping runaway steps
// after a stall is the frame clock's job, whatever dt arrives here is
// applied in full. Bodies do not share state, their update order is
// free.
func (s *Scene) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.Star.advance(dt)
	for _, b := range s.Bodies {
		b.advance(dt)
	}
}
