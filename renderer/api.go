package renderer

// API is the slice of OpenGL the renderer drives. The production implementation
// forwards to go-gl; tests substitute a recording fake.
//
// Enum arguments use the values from github.com/go-gl/gl.
type API interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	PolygonMode(face, mode uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	GetBufferSubData(target uint32, count int) []float32
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog returns at most InfoLogSize-1 characters.
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	DrawArrays(mode uint32, first, count int32)
	// ReadPixels returns tightly packed RGBA rows, bottom row first.
	ReadPixels(x, y, width, height int32) []byte
	GetString(name uint32) string
}

// InfoLogSize is the capacity of the buffer info logs are read into,
// terminator included.
const InfoLogSize = 512
