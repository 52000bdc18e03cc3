package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/hellotriangle/shader"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
	mu         sync.Mutex
)

// GetTranslator returns the process-wide ANGLE translator, creating it on first use.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(ctx)
	})
	return translator, initErr
}

// Check validates a GLSL ES 3.00 source with ANGLE and returns its
// GLSL 330 translation. The returned error carries the compiler log.
func Check(ctx context.Context, stage shader.Stage, src string) (string, error) {
	t, err := GetTranslator(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create shader translator: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	out, err := t.TranslateShader(src, string(stage), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", fmt.Errorf("%s shader: %w", stage, err)
	}
	return out.Code, nil
}
