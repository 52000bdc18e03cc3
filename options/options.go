package options

import (
	"github.com/richinsley/hellotriangle/config"
	"github.com/spf13/pflag"
)

// Options holds the command line. Values only override the configuration
// for flags the user actually set.
type Options struct {
	Config       *string
	Help         *bool
	CheckShaders *bool
	Width        *int
	Height       *int
	ScreenFactor *int
	Title        *string
	Wireframe    *bool
	Headless     *bool
	Frames       *int
	Screenshot   *string
	Record       *string
	FPS          *int
	FFmpegPath   *string
	Debug        *bool
	JSON         *bool
	NoColor      *bool

	fs *pflag.FlagSet
}

func New(name string) *Options {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return &Options{
		Config:       fs.StringP("config", "c", "", "Path to a YAML configuration file"),
		Help:         fs.BoolP("help", "h", false, "Show help message"),
		CheckShaders: fs.Bool("check-shaders", false, "Validate the embedded shaders and exit"),
		Width:        fs.Int("width", 800, "Base window width"),
		Height:       fs.Int("height", 600, "Base window height"),
		ScreenFactor: fs.Int("factor", 2, "Window size multiplier"),
		Title:        fs.String("title", "", "Window title"),
		Wireframe:    fs.Bool("wireframe", false, "Render polygons as outlines"),
		Headless:     fs.Bool("headless", false, "Render into an EGL pbuffer instead of a window"),
		Frames:       fs.Int("frames", 0, "Close after this many frames (0 runs until closed)"),
		Screenshot:   fs.String("screenshot", "", "Write the last frame to this PNG file (needs --frames)"),
		Record:       fs.String("record", "", "Record every frame to this video file through ffmpeg"),
		FPS:          fs.Int("fps", 60, "Frame rate of the recording"),
		FFmpegPath:   fs.String("ffmpeg", "", "Path to the ffmpeg executable"),
		Debug:        fs.Bool("debug", false, "Enable debug logging"),
		JSON:         fs.Bool("json", false, "Log as JSON"),
		NoColor:      fs.Bool("no-color", false, "Disable colored console output"),
		fs:           fs,
	}
}

func (o *Options) Parse(args []string) error { return o.fs.Parse(args) }

func (o *Options) Usage() string { return o.fs.FlagUsages() }

// Apply copies every flag the user changed onto conf.
func (o *Options) Apply(conf *config.Config) {
	set := func(name string, f func()) {
		if o.fs.Changed(name) {
			f()
		}
	}
	set("width", func() { conf.Window.Width = *o.Width })
	set("height", func() { conf.Window.Height = *o.Height })
	set("factor", func() { conf.Window.ScreenFactor = *o.ScreenFactor })
	set("title", func() { conf.Window.Title = *o.Title })
	set("wireframe", func() { conf.Render.Wireframe = *o.Wireframe })
	set("headless", func() { conf.Run.Headless = *o.Headless })
	set("frames", func() { conf.Run.Frames = *o.Frames })
	set("screenshot", func() { conf.Run.Screenshot = *o.Screenshot })
	set("record", func() { conf.Run.Record = *o.Record })
	set("fps", func() { conf.Run.FPS = *o.FPS })
	set("ffmpeg", func() { conf.Run.FFmpeg = *o.FFmpegPath })
	set("debug", func() { conf.Log.Debug = *o.Debug })
	set("json", func() { conf.Log.JSON = *o.JSON })
	set("no-color", func() { conf.Log.NoColor = *o.NoColor })
}
