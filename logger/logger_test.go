package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLevel(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		visible bool
	}{
		{name: "info hides debug", debug: false, visible: false},
		{name: "debug shows debug", debug: true, visible: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewConsoleWriter(&buf, tt.debug, "test", true)
			l.Debug().Msg("driver info")
			l.Info().Msg("window open")

			out := buf.String()
			if !strings.Contains(out, "window open") {
				t.Errorf("info message missing: %q", out)
			}
			if got := strings.Contains(out, "driver info"); got != tt.visible {
				t.Errorf("debug visible = %v, want %v: %q", got, tt.visible, out)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Error().Str("stage", "vertex").Msg("compile failed")
	if out := buf.String(); !strings.Contains(out, `"stage":"vertex"`) || !strings.Contains(out, `"level":"error"`) {
		t.Errorf("unexpected output %q", out)
	}
}
