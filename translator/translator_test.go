package translator

import (
	"context"
	"strings"
	"testing"

	"github.com/richinsley/hellotriangle/shader"
)

func TestCheckEmbedded(t *testing.T) {
	if testing.Short() {
		t.Skip("ANGLE start-up is slow")
	}
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		code, err := Check(context.Background(), stage, shader.Source(stage, true))
		if err != nil {
			t.Fatalf("%v: %v", stage, err)
		}
		if code == "" {
			t.Errorf("%v: empty translation", stage)
		}
	}
}

func TestCheckMalformed(t *testing.T) {
	if testing.Short() {
		t.Skip("ANGLE start-up is slow")
	}
	broken := strings.Replace(shader.VertexSource(true), "1.0);", "1.0)", 1)
	_, err := Check(context.Background(), shader.Vertex, broken)
	if err == nil {
		t.Fatal("expected a compile error for a missing semicolon")
	}
	if err.Error() == "" {
		t.Errorf("empty diagnostic")
	}
}
