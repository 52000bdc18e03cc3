package shader

// Attribute location the vertex stage reads positions from.
const PositionLocation = 0

const vertexBody = `layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentBody = `out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const headerGL = "#version 330 core\n"

const headerGLES = `#version 300 es
precision mediump float;
`

// Stage selects a shader stage.
type Stage string

const (
	Vertex   Stage = "vertex"
	Fragment Stage = "fragment"
)

// Source returns the embedded source for the stage.
// Desktop GL gets GLSL 330 core; GLES gets GLSL ES 300.
func Source(stage Stage, isGLES bool) string {
	body := vertexBody
	if stage == Fragment {
		body = fragmentBody
	}
	return header(isGLES) + body
}

func VertexSource(isGLES bool) string   { return Source(Vertex, isGLES) }
func FragmentSource(isGLES bool) string { return Source(Fragment, isGLES) }

func header(isGLES bool) string {
	if isGLES {
		return headerGLES
	}
	return headerGL
}
