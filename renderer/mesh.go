package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/hellotriangle/shader"
)

// TriangleVertices is one triangle in normalized device coordinates, x y z per vertex.
var TriangleVertices = [9]float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const (
	floatSize      = 4
	componentCount = 3
)

// NewVertexBuffer uploads vertices into a new buffer object and unbinds it.
func NewVertexBuffer(api API, vertices []float32) uint32 {
	vbo := api.GenBuffer()
	api.BindBuffer(gl.ARRAY_BUFFER, vbo)
	api.BufferData(gl.ARRAY_BUFFER, vertices, gl.STATIC_DRAW)
	api.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

// Mesh is a vertex array describing one tightly packed vec3 attribute.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// NewMesh records vertices and their attribute layout in a vertex array.
// The attribute is declared while both the array and the buffer are bound.
// The buffer can then be unbound because the array keeps its own reference.
func NewMesh(api API, vertices []float32) Mesh {
	m := Mesh{
		VAO:   api.GenVertexArray(),
		VBO:   api.GenBuffer(),
		Count: int32(len(vertices) / componentCount),
	}

	api.BindVertexArray(m.VAO)
	api.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	api.BufferData(gl.ARRAY_BUFFER, vertices, gl.STATIC_DRAW)
	api.VertexAttribPointer(shader.PositionLocation, componentCount, gl.FLOAT, false, componentCount*floatSize, 0)
	api.EnableVertexAttribArray(shader.PositionLocation)
	api.BindBuffer(gl.ARRAY_BUFFER, 0)
	api.BindVertexArray(0)
	return m
}

func (m Mesh) Draw(api API) {
	api.BindVertexArray(m.VAO)
	api.DrawArrays(gl.TRIANGLES, 0, m.Count)
}

func (m Mesh) Delete(api API) {
	if m.VAO != 0 {
		api.DeleteVertexArray(m.VAO)
	}
	if m.VBO != 0 {
		api.DeleteBuffer(m.VBO)
	}
}

// ReadBuffer reads count floats back from the start of vbo.
func ReadBuffer(api API, vbo uint32, count int) []float32 {
	api.BindBuffer(gl.ARRAY_BUFFER, vbo)
	data := api.GetBufferSubData(gl.ARRAY_BUFFER, count)
	api.BindBuffer(gl.ARRAY_BUFFER, 0)
	return data
}
