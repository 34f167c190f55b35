package internal

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"the.quetzal.community/orrery/mesh"
)

// Model is geometry that has been uploaded to the GPU: a vertex array
// with position and normal buffers plus a 16-bit element buffer. It is
// immutable after upload and shared by every renderable using it.
type Model struct {
	vao        uint32
	positions  uint32
	normals    uint32
	elements   uint32
	indexCount int32
}

// UploadModel copies a mesh into GPU buffers, once at startup. The
// attribute layout is recorded in the vertex array object, so a draw
// call only has to rebind the VAO to get the full geometry state back.
func UploadModel(program *Program, data mesh.Data) *Model {
	m := &Model{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Positions)*4, gl.Ptr(data.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(program.Attrib.Position, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(program.Attrib.Position)

	gl.GenBuffers(1, &m.normals)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.normals)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Normals)*4, gl.Ptr(data.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(program.Attrib.Normal, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(program.Attrib.Normal)

	gl.GenBuffers(1, &m.elements)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.elements)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*2, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}
