package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/hellotriangle/logger"
)

// Stage selects how much of the pipeline a program sets up.
type Stage int

const (
	// StageWindow uploads the vertex buffer and only clears each frame.
	StageWindow Stage = iota
	// StageTriangle adds the shader program, the vertex array and a draw call.
	StageTriangle
)

func (s Stage) String() string {
	switch s {
	case StageWindow:
		return "window"
	case StageTriangle:
		return "triangle"
	}
	return "unknown"
}

type Options struct {
	Stage          Stage
	ClearColor     [4]float32
	Wireframe      bool
	VertexSource   string
	FragmentSource string
}

type Renderer struct {
	api  API
	log  *logger.Logger
	opts Options

	// StageWindow
	vbo uint32
	// StageTriangle
	mesh    Mesh
	program ProgramReport

	width, height int
}

func New(api API, log *logger.Logger, opts Options) *Renderer {
	return &Renderer{api: api, log: log, opts: opts}
}

// Setup sets the initial viewport and creates the GPU resources for the stage.
// It runs once, before the first frame.
func (r *Renderer) Setup(width, height int) {
	r.Resize(width, height)

	vertices := TriangleVertices[:]
	switch r.opts.Stage {
	case StageWindow:
		r.vbo = NewVertexBuffer(r.api, vertices)
	case StageTriangle:
		r.program = BuildProgram(r.api, r.log, r.opts.VertexSource, r.opts.FragmentSource)
		r.log.Debug().Uint32("program", r.program.Program).Bool("ok", r.program.OK()).Msg("shader program built")
		r.mesh = NewMesh(r.api, vertices)
		r.api.PolygonMode(gl.FRONT_AND_BACK, polygonMode(r.opts.Wireframe))
	}
	r.log.Debug().Str("stage", r.opts.Stage.String()).Bool("wireframe", r.opts.Wireframe).Msg("resources ready")
}

func polygonMode(wireframe bool) uint32 {
	if wireframe {
		return gl.LINE
	}
	return gl.FILL
}

// Resize maps rendering to a width x height framebuffer.
// It has the graphics.ResizeFunc signature and is called from the event pump.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.api.Viewport(0, 0, int32(width), int32(height))
}

// RenderFrame clears the color buffer and, for StageTriangle, draws the mesh.
func (r *Renderer) RenderFrame() {
	c := r.opts.ClearColor
	r.api.ClearColor(c[0], c[1], c[2], c[3])
	r.api.Clear(gl.COLOR_BUFFER_BIT)

	if r.opts.Stage == StageTriangle {
		r.api.UseProgram(r.program.Program)
		r.mesh.Draw(r.api)
	}
}

// Program returns the shader build outcome. It is zero for StageWindow.
func (r *Renderer) Program() ProgramReport { return r.program }

// ReadVertices reads the uploaded vertex data back from the GPU.
func (r *Renderer) ReadVertices() []float32 {
	vbo := r.vbo
	if r.opts.Stage == StageTriangle {
		vbo = r.mesh.VBO
	}
	return ReadBuffer(r.api, vbo, len(TriangleVertices))
}

// Snapshot reads the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) Snapshot() (pixels []byte, width, height int) {
	return r.api.ReadPixels(0, 0, int32(r.width), int32(r.height)), r.width, r.height
}

// LogDriverInfo prints the driver strings of the current context.
func (r *Renderer) LogDriverInfo() {
	r.log.Debug().
		Str("vendor", r.api.GetString(gl.VENDOR)).
		Str("renderer", r.api.GetString(gl.RENDERER)).
		Str("version", r.api.GetString(gl.VERSION)).
		Str("glsl", r.api.GetString(gl.SHADING_LANGUAGE_VERSION)).
		Msg("OpenGL driver")
}

// Shutdown releases every GPU resource Setup created.
func (r *Renderer) Shutdown() {
	if r.vbo != 0 {
		r.api.DeleteBuffer(r.vbo)
		r.vbo = 0
	}
	r.mesh.Delete(r.api)
	r.mesh = Mesh{}
	if r.program.Program != 0 {
		r.api.DeleteProgram(r.program.Program)
		r.program.Program = 0
	}
}
