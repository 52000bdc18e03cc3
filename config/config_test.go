package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	var conf = Default()
	if err := LoadEnv(&conf); err != nil {
		t.Fatal(err)
	}

	w, h := conf.Window.Size()
	if w != 1600 || h != 1200 {
		t.Errorf("window size = %vx%v, want 1600x1200", w, h)
	}
	if conf.GL.Major != 3 || conf.GL.Minor != 3 {
		t.Errorf("gl version = %v.%v, want 3.3", conf.GL.Major, conf.GL.Minor)
	}
	if want := (Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0}); conf.Render.ClearColor != want {
		t.Errorf("clear color = %v, want %v", conf.Render.ClearColor, want)
	}
	if conf.Render.Wireframe {
		t.Errorf("wireframe should be off by default")
	}
	if conf.Run.FPS != 60 {
		t.Errorf("fps = %v, want 60", conf.Run.FPS)
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("HELLOTRIANGLE_WINDOW_WIDTH", "320")
	t.Setenv("HELLOTRIANGLE_RENDER_WIREFRAME", "true")

	var conf = Default()
	if err := LoadEnv(&conf); err != nil {
		t.Fatal(err)
	}
	if conf.Window.Width != 320 {
		t.Errorf("width = %v, want 320", conf.Window.Width)
	}
	if !conf.Render.Wireframe {
		t.Errorf("wireframe should be on")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
window:
  width: 640
  height: 480
  screen_factor: 1
render:
  clear_color:
    r: 0
    g: 0
    b: 0
    a: 1
  wireframe: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	w, h := conf.Window.Size()
	if w != 640 || h != 480 {
		t.Errorf("window size = %vx%v, want 640x480", w, h)
	}
	if want := (Color{A: 1}); conf.Render.ClearColor != want {
		t.Errorf("clear color = %v, want %v", conf.Render.ClearColor, want)
	}
	if !conf.Render.Wireframe {
		t.Errorf("wireframe should be on")
	}
	if conf.GL.Major != 3 {
		t.Errorf("gl major = %v, want default 3", conf.GL.Major)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected an error for a missing explicit config file")
	}
}

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		want [2]int
	}{
		{name: "factor 2", w: Window{Width: 800, Height: 600, ScreenFactor: 2}, want: [2]int{1600, 1200}},
		{name: "factor 1", w: Window{Width: 800, Height: 600, ScreenFactor: 1}, want: [2]int{800, 600}},
		{name: "zero factor", w: Window{Width: 800, Height: 600}, want: [2]int{800, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.w.Size()
			if got := [2]int{w, h}; got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}
