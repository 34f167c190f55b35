package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translation(m mgl64.Mat4) mgl64.Vec3 {
	return mgl64.Vec3{m[12], m[13], m[14]}
}

func TestBodyStaysOnItsOrbit(t *testing.T) {
	body := NewBody(7.5, 1.3, 4.2, 0.8)
	s := New(NewStar(0.1, 3), body)

	for _, dt := range []float64{0, 0.016, 0.2, 0.016, 0.1, 0, 0.033, 0.25} {
		s.Advance(dt)
		assert.InDelta(t, 7.5, translation(body.ModelMatrix()).Len(), 1e-9)
	}
}

func TestZeroStepLeavesTransformsUnchanged(t *testing.T) {
	body := NewBody(5, 1, 3, 1)
	star := NewStar(0.2, 2)
	s := New(star, body)
	s.Advance(0.5)

	bodyModel := body.ModelMatrix()
	starModel := star.ModelMatrix()
	for range 3 {
		s.Advance(0)
	}
	assert.Equal(t, bodyModel, body.ModelMatrix())
	assert.Equal(t, starModel, star.ModelMatrix())
}

func TestOrbitTimeScaleScenario(t *testing.T) {
	bodies := []*Body{
		NewBody(5, 1, 3, 1),
		NewBody(8, 1.5, 4, 1),
		NewBody(11, 2, 5, 1),
	}
	s := New(NewStar(0, 1), bodies...)
	s.Advance(1.0)

	wantOrbit := []float64{0.5, 0.75, 1.0}
	wantSpin := []float64{3, 4, 5}
	for i, body := range bodies {
		assert.Equal(t, wantOrbit[i], body.OrbitAngle())
		assert.Equal(t, wantSpin[i], body.SpinAngle())
		assert.InDelta(t, body.OrbitRadius, translation(body.ModelMatrix()).Len(), 1e-6)
	}
}

func TestAdvanceAppliesStepInFull(t *testing.T) {
	body := NewBody(5, 1, 0, 1)
	s := New(NewStar(0, 1), body)

	s.Advance(-3)
	assert.Zero(t, body.OrbitAngle(), "negative dt must not rewind the orbit")

	// The scene trusts its caller: a large step is applied as given,
	// capping stalls is the frame clock's business.
	s.Advance(4)
	assert.Equal(t, 4*OrbitTimeScale, body.OrbitAngle())
}

func TestStarOnlySpins(t *testing.T) {
	star := NewStar(0.5, 3)
	s := New(star)
	s.Advance(0.5)

	assert.Equal(t, 0.25, star.SpinAngle())
	assert.Equal(t, mgl64.Vec3{}, translation(star.ModelMatrix()), "the star never leaves the origin")

	// Uniform scale by the size factor survives in the basis vectors.
	m := star.ModelMatrix()
	assert.InDelta(t, 3.0, mgl64.Vec3{m[0], m[1], m[2]}.Len(), 1e-12)
}

type recordingRenderable struct {
	calls int
	last  mgl64.Mat4
}

func (r *recordingRenderable) SetModelMatrix(m mgl64.Mat4) {
	r.calls++
	r.last = m
}

func TestAdvanceFeedsRenderables(t *testing.T) {
	body := NewBody(5, 1, 3, 1)
	rec := &recordingRenderable{}
	body.Renderable = rec

	star := NewStar(0.1, 2)
	starRec := &recordingRenderable{}
	star.Renderable = starRec

	s := New(star, body)
	s.Advance(0.1)
	s.Advance(0.1)

	require.Equal(t, 2, rec.calls)
	assert.Equal(t, body.ModelMatrix(), rec.last)
	require.Equal(t, 2, starRec.calls)
	assert.Equal(t, star.ModelMatrix(), starRec.last)
}

func TestAdvanceIsDeterministic(t *testing.T) {
	build := func() *Scene {
		return New(NewStar(0.3, 2), NewBody(5, 1, 3, 0.5), NewBody(8, 1.5, 4, 1.2))
	}
	a, b := build(), build()
	steps := []float64{0.016, 0.033, 0, 0.2, 0.016, 0.05}
	for _, dt := range steps {
		a.Advance(dt)
		b.Advance(dt)
	}
	for i := range a.Bodies {
		assert.Equal(t, a.Bodies[i].ModelMatrix(), b.Bodies[i].ModelMatrix())
		assert.Equal(t, a.Bodies[i].OrbitAngle(), b.Bodies[i].OrbitAngle())
	}
	assert.Equal(t, a.Star.ModelMatrix(), b.Star.ModelMatrix())
}
