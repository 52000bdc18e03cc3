package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

const (
	EnvPrefix = "HELLOTRIANGLE"
	FileName  = "hellotriangle.yaml"
)

type Config struct {
	Window Window
	GL     GL `fig:"gl"`
	Render Render
	Log    Log
	Run    Run
}

type Window struct {
	Width        int    `default:"800"`
	Height       int    `default:"600"`
	ScreenFactor int    `fig:"screen_factor" default:"2"`
	Title        string
}

// Size returns the window size in screen coordinates.
func (w Window) Size() (int, int) {
	f := w.ScreenFactor
	if f < 1 {
		f = 1
	}
	return w.Width * f, w.Height * f
}

type GL struct {
	Major int `default:"3"`
	Minor int `default:"3"`
}

type Render struct {
	ClearColor Color `fig:"clear_color"`
	Wireframe  bool
}

type Color struct {
	R, G, B, A float32
}

type Log struct {
	Debug   bool
	NoColor bool `fig:"no_color"`
	JSON    bool `fig:"json"`
}

// Run holds the optional non-interactive settings.
type Run struct {
	Headless   bool
	Frames     int
	Screenshot string
	Record     string
	FPS        int    `fig:"fps" default:"60"`
	FFmpeg     string `fig:"ffmpeg"`
}

// Default returns the values that have no meaningful zero.
// Fields set here survive a config file that leaves them out,
// while an explicit zero in the file still wins.
func Default() Config {
	return Config{
		Render: Render{ClearColor: Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0}},
	}
}

// Load reads the configuration file into a new Config.
// An explicit path must exist; without one the default directories are searched
// and a missing file falls back to defaults and environment variables
// with the HELLOTRIANGLE_ prefix.
func Load(path string) (*Config, error) {
	conf := Default()
	if path != "" {
		err := fig.Load(&conf,
			fig.File(filepath.Base(path)),
			fig.Dirs(filepath.Dir(path)),
			fig.UseEnv(EnvPrefix),
		)
		if err != nil {
			return nil, err
		}
		return &conf, nil
	}

	dirs := []string{".", "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".hellotriangle"))
	}
	err := fig.Load(&conf, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		conf = Default()
		err = LoadEnv(&conf)
	}
	if err != nil {
		return nil, err
	}
	return &conf, nil
}

// LoadEnv fills conf from defaults and environment variables only.
func LoadEnv(conf *Config) error {
	return fig.Load(conf, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}
