package internal

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderable couples one uploaded model with a color, an emissive flag
// and a mutable model transform. The transform starts as identity and
// is fed by the scene each frame through SetModelMatrix.
type Renderable struct {
	model     *Model
	color     mgl32.Vec4
	emissive  bool
	transform mgl32.Mat4
}

// NewRenderable wraps an uploaded model for drawing.
func NewRenderable(model *Model, color mgl32.Vec4, emissive bool) *Renderable {
	return &Renderable{
		model:     model,
		color:     color,
		emissive:  emissive,
		transform: mgl32.Ident4(),
	}
}

// SetModelMatrix implements scene.Renderable. The scene animates in
// float64 and the GPU wants float32, the narrowing happens here.
func (r *Renderable) SetModelMatrix(m mgl64.Mat4) {
	r.transform = mat4To32(m)
}

// mat4To32 narrows a scene matrix for the GPU uniforms.
func mat4To32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Draw issues one indexed triangle draw for the renderable. It rebinds
// everything it depends on (vertex array, model matrix, color,
// emissive flag), so a draw never relies on state left behind by
// another object and draw order stays side-effect free.
func (r *Renderable) Draw(program *Program) {
	gl.BindVertexArray(r.model.vao)
	gl.UniformMatrix4fv(program.Uniform.Model, 1, false, &r.transform[0])
	gl.Uniform4fv(program.Uniform.Color, 1, &r.color[0])
	var emissive int32
	if r.emissive {
		emissive = 1
	}
	gl.Uniform1i(program.Uniform.IsEmissive, emissive)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.model.indexCount, gl.UNSIGNED_SHORT, 0)
}
