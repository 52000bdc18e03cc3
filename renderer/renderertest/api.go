// Package renderertest provides a recording implementation of renderer.API
// for tests that run without a GPU.
package renderertest

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Call is one recorded API call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

// API records every call and keeps enough state to answer queries.
// It is not safe for concurrent use, like the GL context it stands in for.
type API struct {
	Calls []Call

	// CompileOK decides the compile status of a shader source. Nil compiles everything.
	CompileOK func(source string) bool
	// LinkOK decides the link status. Nil links whenever both shaders compiled.
	LinkOK func() bool
	// CompileLog and LinkLog are returned as info logs for failures.
	CompileLog string
	LinkLog    string
	// Pixel is the RGBA value ReadPixels fills the frame with.
	Pixel [4]byte

	nextID      uint32
	sources     map[uint32]string
	compiled    map[uint32]bool
	attached    map[uint32][]uint32
	buffers     map[uint32][]float32
	boundBuffer uint32
	boundArray  uint32
	program     uint32
	viewport    [4]int32
	mode        uint32
}

func New() *API {
	return &API{
		sources:  map[uint32]string{},
		compiled: map[uint32]bool{},
		attached: map[uint32][]uint32{},
		buffers:  map[uint32][]float32{},
	}
}

func (a *API) record(name string, args ...any) { a.Calls = append(a.Calls, Call{Name: name, Args: args}) }

func (a *API) id() uint32 {
	a.nextID++
	return a.nextID
}

// Count returns how many times the named call was made.
func (a *API) Count(name string) int {
	n := 0
	for _, c := range a.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the recorded call names in order.
func (a *API) Names() []string {
	names := make([]string, len(a.Calls))
	for i, c := range a.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets the recorded calls but keeps object state.
func (a *API) Reset() { a.Calls = nil }

// LastViewport returns the arguments of the most recent Viewport call.
func (a *API) LastViewport() [4]int32 { return a.viewport }

// Mode returns the last polygon mode set.
func (a *API) Mode() uint32 { return a.mode }

// CurrentProgram returns the program passed to the last UseProgram call.
func (a *API) CurrentProgram() uint32 { return a.program }

func (a *API) Viewport(x, y, width, height int32) {
	a.record("Viewport", x, y, width, height)
	a.viewport = [4]int32{x, y, width, height}
}

func (a *API) ClearColor(r, g, b, al float32) { a.record("ClearColor", r, g, b, al) }
func (a *API) Clear(mask uint32)              { a.record("Clear", mask) }

func (a *API) PolygonMode(face, mode uint32) {
	a.record("PolygonMode", face, mode)
	a.mode = mode
}

func (a *API) GenBuffer() uint32 {
	id := a.id()
	a.record("GenBuffer", id)
	a.buffers[id] = nil
	return id
}

func (a *API) BindBuffer(target, buffer uint32) {
	a.record("BindBuffer", target, buffer)
	a.boundBuffer = buffer
}

func (a *API) BufferData(target uint32, data []float32, usage uint32) {
	a.record("BufferData", target, len(data), usage)
	a.buffers[a.boundBuffer] = append([]float32(nil), data...)
}

func (a *API) GetBufferSubData(target uint32, count int) []float32 {
	a.record("GetBufferSubData", target, count)
	data := a.buffers[a.boundBuffer]
	if count > len(data) {
		count = len(data)
	}
	return append([]float32(nil), data[:count]...)
}

func (a *API) DeleteBuffer(buffer uint32) {
	a.record("DeleteBuffer", buffer)
	delete(a.buffers, buffer)
}

func (a *API) GenVertexArray() uint32 {
	id := a.id()
	a.record("GenVertexArray", id)
	return id
}

func (a *API) BindVertexArray(array uint32) {
	a.record("BindVertexArray", array)
	a.boundArray = array
}

func (a *API) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	a.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset, a.boundArray, a.boundBuffer)
}

func (a *API) EnableVertexAttribArray(index uint32) { a.record("EnableVertexAttribArray", index) }
func (a *API) DeleteVertexArray(array uint32)       { a.record("DeleteVertexArray", array) }

func (a *API) CreateShader(xtype uint32) uint32 {
	id := a.id()
	a.record("CreateShader", xtype)
	return id
}

func (a *API) ShaderSource(shader uint32, source string) {
	a.record("ShaderSource", shader)
	a.sources[shader] = source
}

func (a *API) CompileShader(shader uint32) {
	a.record("CompileShader", shader)
	ok := true
	if a.CompileOK != nil {
		ok = a.CompileOK(a.sources[shader])
	}
	a.compiled[shader] = ok
}

func (a *API) GetShaderiv(shader, pname uint32) int32 {
	a.record("GetShaderiv", shader, pname)
	if pname == gl.COMPILE_STATUS && a.compiled[shader] {
		return gl.TRUE
	}
	return gl.FALSE
}

func (a *API) GetShaderInfoLog(shader uint32) string {
	a.record("GetShaderInfoLog", shader)
	return a.CompileLog
}

func (a *API) DeleteShader(shader uint32) { a.record("DeleteShader", shader) }

func (a *API) CreateProgram() uint32 {
	id := a.id()
	a.record("CreateProgram", id)
	return id
}

func (a *API) AttachShader(program, shader uint32) {
	a.record("AttachShader", program, shader)
	a.attached[program] = append(a.attached[program], shader)
}

func (a *API) LinkProgram(program uint32) { a.record("LinkProgram", program) }

func (a *API) GetProgramiv(program, pname uint32) int32 {
	a.record("GetProgramiv", program, pname)
	if pname != gl.LINK_STATUS {
		return 0
	}
	ok := len(a.attached[program]) == 2
	for _, s := range a.attached[program] {
		ok = ok && a.compiled[s]
	}
	if a.LinkOK != nil {
		ok = a.LinkOK()
	}
	if ok {
		return gl.TRUE
	}
	return gl.FALSE
}

func (a *API) GetProgramInfoLog(program uint32) string {
	a.record("GetProgramInfoLog", program)
	return a.LinkLog
}

func (a *API) UseProgram(program uint32) {
	a.record("UseProgram", program)
	a.program = program
}

func (a *API) DeleteProgram(program uint32) { a.record("DeleteProgram", program) }

func (a *API) DrawArrays(mode uint32, first, count int32) {
	a.record("DrawArrays", mode, first, count, a.boundArray, a.program)
}

func (a *API) ReadPixels(x, y, width, height int32) []byte {
	a.record("ReadPixels", x, y, width, height)
	pixels := make([]byte, int(width)*int(height)*4)
	for i := 0; i < len(pixels); i += 4 {
		copy(pixels[i:i+4], a.Pixel[:])
	}
	return pixels
}

func (a *API) GetString(name uint32) string {
	a.record("GetString", name)
	return "fake"
}
