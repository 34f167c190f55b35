package mesh

import "github.com/chewxy/math32"

// Sphere generates a UV sphere of the given radius with per-vertex
// unit normals. rings counts latitude bands, segments counts
// longitude slices; both are clamped to a minimum of 3. Bodies
// without a mesh file in their configuration are rendered with one of
// these.
func Sphere(rings, segments int, radius float32) Data {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}

	var data Data
	for ring := 0; ring <= rings; ring++ {
		theta := float32(ring) * math32.Pi / float32(rings)
		sinTheta, cosTheta := math32.Sincos(theta)
		for seg := 0; seg <= segments; seg++ {
			phi := float32(seg) * 2 * math32.Pi / float32(segments)
			sinPhi, cosPhi := math32.Sincos(phi)

			// Unit sphere position doubles as the normal.
			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta
			data.Positions = append(data.Positions, x*radius, y*radius, z*radius)
			data.Normals = append(data.Normals, x, y, z)
		}
	}
	// Counter-clockwise as seen from outside the sphere, so the
	// faces survive back-face culling.
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint16(ring*(segments+1) + seg)
			next := current + uint16(segments) + 1
			data.Indices = append(data.Indices,
				current, current+1, next,
				current+1, next+1, next)
		}
	}
	data.HasNormals = true
	return data
}
