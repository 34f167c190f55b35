package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereShape(t *testing.T) {
	const (
		rings    = 8
		segments = 12
		radius   = 2.5
	)
	data := Sphere(rings, segments, radius)

	assert.Equal(t, (rings+1)*(segments+1), data.VertexCount())
	assert.Equal(t, rings*segments*2, data.TriangleCount())
	assert.True(t, data.HasNormals)

	for i := 0; i < len(data.Positions); i += 3 {
		p := [3]float32{data.Positions[i], data.Positions[i+1], data.Positions[i+2]}
		n := [3]float32{data.Normals[i], data.Normals[i+1], data.Normals[i+2]}

		lenP := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		lenN := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		require.InDelta(t, radius, lenP, 1e-4)
		require.InDelta(t, 1, lenN, 1e-4)

		// The normal points straight out of the sphere.
		for axis := range 3 {
			require.InDelta(t, p[axis]/radius, n[axis], 1e-5)
		}
	}

	for _, index := range data.Indices {
		require.Less(t, int(index), data.VertexCount())
	}
}

func TestSphereWindingFacesOutward(t *testing.T) {
	data := Sphere(6, 9, 1.5)

	vertex := func(i uint16) [3]float64 {
		return [3]float64{
			float64(data.Positions[3*i]),
			float64(data.Positions[3*i+1]),
			float64(data.Positions[3*i+2]),
		}
	}
	for i := 0; i < len(data.Indices); i += 3 {
		a := vertex(data.Indices[i])
		b := vertex(data.Indices[i+1])
		c := vertex(data.Indices[i+2])

		u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		v := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		cross := [3]float64{
			u[1]*v[2] - u[2]*v[1],
			u[2]*v[0] - u[0]*v[2],
			u[0]*v[1] - u[1]*v[0],
		}
		area := cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2]
		if area < 1e-12 {
			continue // pole triangles collapse to a line
		}

		// Counter-clockwise winding means the right-hand-rule normal
		// points away from the centre, so back-face culling keeps the
		// outside visible.
		centroid := [3]float64{a[0] + b[0] + c[0], a[1] + b[1] + c[1], a[2] + b[2] + c[2]}
		dot := cross[0]*centroid[0] + cross[1]*centroid[1] + cross[2]*centroid[2]
		require.Greater(t, dot, 0.0, "triangle %d winds clockwise seen from outside", i/3)
	}
}

func TestSphereClampsResolution(t *testing.T) {
	data := Sphere(0, 1, 1)
	assert.Equal(t, (3+1)*(3+1), data.VertexCount())
	assert.Equal(t, 3*3*2, data.TriangleCount())
}
