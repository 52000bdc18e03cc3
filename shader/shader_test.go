package shader

import (
	"strings"
	"testing"
)

func TestSourceHeaders(t *testing.T) {
	tests := []struct {
		name   string
		stage  Stage
		isGLES bool
		prefix string
	}{
		{name: "vertex gl", stage: Vertex, prefix: "#version 330 core\n"},
		{name: "fragment gl", stage: Fragment, prefix: "#version 330 core\n"},
		{name: "vertex gles", stage: Vertex, isGLES: true, prefix: "#version 300 es\n"},
		{name: "fragment gles", stage: Fragment, isGLES: true, prefix: "#version 300 es\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if src := Source(tt.stage, tt.isGLES); !strings.HasPrefix(src, tt.prefix) {
				t.Errorf("source does not start with %q:\n%s", tt.prefix, src)
			}
		})
	}
}

func TestVertexReadsLocationZero(t *testing.T) {
	if !strings.Contains(VertexSource(false), "layout (location = 0) in vec3") {
		t.Errorf("vertex stage must read a vec3 at location %v", PositionLocation)
	}
}

func TestFragmentColor(t *testing.T) {
	if !strings.Contains(FragmentSource(false), "vec4(1.0, 0.5, 0.2, 1.0)") {
		t.Errorf("unexpected fragment color:\n%s", FragmentSource(false))
	}
}
