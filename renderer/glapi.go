package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ErrLoad reports that GL entry points could not be resolved.
var ErrLoad = errors.New("failed to initialize GL loader")

// Load resolves the GL entry points against the current context.
// It must run after the context is made current and before any GL call.
func Load(procAddr func(name string) unsafe.Pointer) (API, error) {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return glAPI{}, nil
}

// glAPI forwards to the go-gl bindings. Every method must be called
// on the thread that owns the current context.
type glAPI struct{}

func (glAPI) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (glAPI) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (glAPI) Clear(mask uint32)                  { gl.Clear(mask) }
func (glAPI) PolygonMode(face, mode uint32)      { gl.PolygonMode(face, mode) }

func (glAPI) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (glAPI) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (glAPI) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (glAPI) GetBufferSubData(target uint32, count int) []float32 {
	data := make([]float32, count)
	if count == 0 {
		return data
	}
	gl.GetBufferSubData(target, 0, count*4, gl.Ptr(data))
	return data
}

func (glAPI) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (glAPI) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (glAPI) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (glAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (glAPI) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (glAPI) DeleteVertexArray(array uint32)       { gl.DeleteVertexArrays(1, &array) }

func (glAPI) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (glAPI) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (glAPI) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (glAPI) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (glAPI) GetShaderInfoLog(shader uint32) string {
	var length int32
	buf := make([]byte, InfoLogSize)
	gl.GetShaderInfoLog(shader, InfoLogSize, &length, &buf[0])
	return string(buf[:length])
}

func (glAPI) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (glAPI) CreateProgram() uint32               { return gl.CreateProgram() }
func (glAPI) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (glAPI) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (glAPI) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (glAPI) GetProgramInfoLog(program uint32) string {
	var length int32
	buf := make([]byte, InfoLogSize)
	gl.GetProgramInfoLog(program, InfoLogSize, &length, &buf[0])
	return string(buf[:length])
}

func (glAPI) UseProgram(program uint32)    { gl.UseProgram(program) }
func (glAPI) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (glAPI) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (glAPI) ReadPixels(x, y, width, height int32) []byte {
	pixels := make([]byte, int(width)*int(height)*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (glAPI) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}
