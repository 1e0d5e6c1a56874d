package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexAttrib describes one interleaved float attribute.
type VertexAttrib struct {
	Location uint32
	Size     int32
	Offset   int // bytes
}

// Mesh is a static, non-indexed vertex buffer with its VAO.
type Mesh struct {
	vao, vbo uint32
	count    int32
}

// NewMesh uploads interleaved float32 vertices. Stride is in bytes.
func NewMesh(verts []float32, stride int32, attribs []VertexAttrib) *Mesh {
	m := &Mesh{count: int32(len(verts)) / (stride / 4)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
