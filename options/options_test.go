package options

import (
	"io"
	"testing"

	"github.com/richinsley/hellotriangle/config"
)

func TestApplyChangedOnly(t *testing.T) {
	conf := config.Default()
	conf.Window.Width = 1024
	conf.Window.Height = 768
	conf.Run.FPS = 30

	o := New("test")
	if err := o.Parse([]string{"--height", "480", "--wireframe", "--frames=5"}); err != nil {
		t.Fatal(err)
	}
	o.Apply(&conf)

	if conf.Window.Width != 1024 {
		t.Errorf("unset flag overrode width: %v", conf.Window.Width)
	}
	if conf.Window.Height != 480 {
		t.Errorf("height = %v, want 480", conf.Window.Height)
	}
	if !conf.Render.Wireframe {
		t.Errorf("wireframe not applied")
	}
	if conf.Run.Frames != 5 {
		t.Errorf("frames = %v, want 5", conf.Run.Frames)
	}
	if conf.Run.FPS != 30 {
		t.Errorf("unset flag overrode fps: %v", conf.Run.FPS)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	o := New("test")
	o.fs.SetOutput(io.Discard)
	if err := o.Parse([]string{"--nope"}); err == nil {
		t.Errorf("expected an error for an unknown flag")
	}
}
