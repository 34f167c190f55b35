// Package mesh loads and generates the triangle geometry the renderer
// uploads to the GPU: flat position and normal arrays plus a 16-bit
// triangle index list.
package mesh

// Data is the CPU-side form of a mesh. Positions and Normals are
// tightly packed x y z triples of equal length; Indices is a triangle
// list into them. When a source file carries no normals the Normals
// slice is still allocated at full size (zero-filled) so that the GPU
// upload always has valid storage, and HasNormals reports the gap so
// the caller can warn about degraded lighting.
type Data struct {
	Positions  []float32
	Normals    []float32
	Indices    []uint16
	HasNormals bool
}

// VertexCount reports the number of vertices in the mesh.
func (d Data) VertexCount() int { return len(d.Positions) / 3 }

// TriangleCount reports the number of triangles in the index list.
func (d Data) TriangleCount() int { return len(d.Indices) / 3 }
