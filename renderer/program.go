package renderer

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/hellotriangle/logger"
	"github.com/richinsley/hellotriangle/shader"
)

// StageReport is the outcome of compiling one shader stage.
type StageReport struct {
	Compiled bool
	Log      string
}

// ProgramReport is the outcome of BuildProgram. A failed compile or link is
// reported here and logged but never aborts the build: the program handle
// is returned either way and draws with it simply produce no output.
type ProgramReport struct {
	Program  uint32
	Vertex   StageReport
	Fragment StageReport
	Linked   bool
	LinkLog  string
}

// OK reports whether both stages compiled and the program linked.
func (r ProgramReport) OK() bool {
	return r.Vertex.Compiled && r.Fragment.Compiled && r.Linked
}

// BuildProgram compiles the two stages, links them into a program, makes
// it current and releases the shader objects.
func BuildProgram(api API, log *logger.Logger, vertexSource, fragmentSource string) ProgramReport {
	var report ProgramReport

	var vs, fs uint32
	vs, report.Vertex = compileShader(api, log, shader.Vertex, vertexSource)
	fs, report.Fragment = compileShader(api, log, shader.Fragment, fragmentSource)

	program := api.CreateProgram()
	api.AttachShader(program, vs)
	api.AttachShader(program, fs)
	api.LinkProgram(program)

	report.Program = program
	report.Linked = api.GetProgramiv(program, gl.LINK_STATUS) != gl.FALSE
	if !report.Linked {
		report.LinkLog = truncateLog(api.GetProgramInfoLog(program))
		log.Error().Str("log", report.LinkLog).Msg("ERROR::SHADER::PROGRAM::LINKING_FAILED")
	}

	api.UseProgram(program)

	// the linked program keeps its own copy of the code
	api.DeleteShader(vs)
	api.DeleteShader(fs)

	return report
}

func compileShader(api API, log *logger.Logger, stage shader.Stage, source string) (uint32, StageReport) {
	var report StageReport

	s := api.CreateShader(shaderType(stage))
	api.ShaderSource(s, source)
	api.CompileShader(s)

	report.Compiled = api.GetShaderiv(s, gl.COMPILE_STATUS) != gl.FALSE
	if !report.Compiled {
		report.Log = truncateLog(api.GetShaderInfoLog(s))
		log.Error().Str("log", report.Log).
			Msgf("ERROR::SHADER::%s::COMPILATION_FAILED", strings.ToUpper(string(stage)))
	} else {
		log.Debug().Str("stage", string(stage)).Uint32("id", s).Msg("shader compiled")
	}
	return s, report
}

func shaderType(stage shader.Stage) uint32 {
	if stage == shader.Fragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func truncateLog(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if len(s) > InfoLogSize-1 {
		s = s[:InfoLogSize-1]
	}
	return s
}
