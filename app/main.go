package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/richinsley/hellotriangle/config"
	"github.com/richinsley/hellotriangle/glfwcontext"
	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/headless"
	"github.com/richinsley/hellotriangle/logger"
	"github.com/richinsley/hellotriangle/options"
	"github.com/richinsley/hellotriangle/recorder"
	"github.com/richinsley/hellotriangle/renderer"
	"github.com/richinsley/hellotriangle/shader"
	"github.com/richinsley/hellotriangle/thread"
	"github.com/richinsley/hellotriangle/translator"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// Program describes one of the executables built from this package.
type Program struct {
	Name  string
	Title string
	Stage renderer.Stage
}

var (
	HelloWindow   = Program{Name: "hellowindow", Title: "LearnOpenGL_C04", Stage: renderer.StageWindow}
	HelloTriangle = Program{Name: "hellotriangle", Title: "LearnOpenGL_C05", Stage: renderer.StageTriangle}
)

// openFunc opens the drawing context. release undoes whatever the backend
// set up and is never nil, even when err is not.
type openFunc func(conf *config.Config, log *logger.Logger) (ctx graphics.Context, release func(), err error)

var (
	openWindow   openFunc = openGLFW
	openHeadless openFunc = openEGL
	loadGL                = renderer.Load
)

func openGLFW(conf *config.Config, log *logger.Logger) (graphics.Context, func(), error) {
	if err := glfwcontext.InitGraphics(log); err != nil {
		return nil, func() {}, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	release := func() { glfwcontext.TerminateGraphics(log) }

	w, h := conf.Window.Size()
	win, err := glfwcontext.New(glfwcontext.Config{
		Width:   w,
		Height:  h,
		Title:   conf.Window.Title,
		Major:   conf.GL.Major,
		Minor:   conf.GL.Minor,
		Visible: true,
	})
	if err != nil {
		return nil, release, err
	}
	return win, release, nil
}

func openEGL(conf *config.Config, log *logger.Logger) (graphics.Context, func(), error) {
	w, h := conf.Window.Size()
	ctx, err := headless.New(w, h, conf.GL.Major, conf.GL.Minor, log)
	return ctx, func() {}, err
}

// Main parses args, loads the configuration and runs p on the main thread.
// It returns the process exit code.
func Main(p Program, args []string) int {
	opts := options.New(p.Name)
	if err := opts.Parse(args); err != nil {
		fmt.Println(err)
		return ExitFailure
	}
	if *opts.Help {
		fmt.Printf("%s - %s\n\n%s", p.Name, p.Title, opts.Usage())
		return ExitOK
	}

	conf, err := config.Load(*opts.Config)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return ExitFailure
	}
	opts.Apply(conf)
	if conf.Window.Title == "" {
		conf.Window.Title = p.Title
	}

	log := newLogger(conf, p.Name)
	if err := validate(conf); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return ExitFailure
	}

	if *opts.CheckShaders {
		return checkShaders(log)
	}

	if err := thread.Main(func() error { return Run(p, conf, log) }); err != nil {
		return ExitFailure
	}
	return ExitOK
}

func newLogger(conf *config.Config, tag string) *logger.Logger {
	if conf.Log.JSON {
		return logger.New(os.Stdout, conf.Log.Debug)
	}
	return logger.NewConsole(conf.Log.Debug, tag, conf.Log.NoColor)
}

func validate(conf *config.Config) error {
	if w, h := conf.Window.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w, h)
	}
	if conf.Run.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", conf.Run.Frames)
	}
	if conf.Run.Screenshot != "" && conf.Run.Frames == 0 {
		return errors.New("a screenshot needs a frame limit (--frames)")
	}
	return nil
}

func checkShaders(log *logger.Logger) int {
	ctx := context.Background()
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		if _, err := translator.Check(ctx, stage, shader.Source(stage, true)); err != nil {
			log.Error().Err(err).Msg("Shader check failed")
			return ExitFailure
		}
		log.Info().Str("stage", string(stage)).Msg("Shader OK")
	}
	return ExitOK
}

// Run opens the context, sets up p's resources, runs the frame loop and
// tears everything down again. It must run on the main thread.
// Errors are logged before they are returned.
func Run(p Program, conf *config.Config, log *logger.Logger) error {
	open, failure := openWindow, "Failed to create GLFW window"
	if conf.Run.Headless {
		open, failure = openHeadless, "Failed to create headless context"
	}

	ctx, release, err := open(conf, log)
	defer release()
	if err != nil {
		log.Error().Err(err).Msg(failure)
		return err
	}
	defer ctx.Shutdown()
	ctx.MakeCurrent()

	api, err := loadGL(ctx.ProcAddress)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize GL loader")
		return err
	}

	r := renderer.New(api, log, renderer.Options{
		Stage:          p.Stage,
		ClearColor:     clearColor(conf.Render.ClearColor),
		Wireframe:      conf.Render.Wireframe,
		VertexSource:   shader.VertexSource(ctx.IsGLES()),
		FragmentSource: shader.FragmentSource(ctx.IsGLES()),
	})
	r.LogDriverInfo()

	width, height := ctx.GetFramebufferSize()
	ctx.SetFramebufferSizeCallback(r.Resize)
	r.Setup(width, height)
	defer r.Shutdown()
	log.Debug().Floats32("vertices", r.ReadVertices()).Msg("Vertex buffer uploaded")

	settings := Settings{Frames: conf.Run.Frames, Screenshot: conf.Run.Screenshot}
	if conf.Run.Record != "" {
		rec, err := recorder.Start(recorder.Options{
			Width:      width,
			Height:     height,
			FPS:        conf.Run.FPS,
			OutputFile: conf.Run.Record,
			FFmpegPath: conf.Run.FFmpeg,
		}, log)
		if err != nil {
			log.Error().Err(err).Msg("Failed to start recording")
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Error().Err(err).Msg("Recording failed")
			}
		}()
		settings.Capture = rec
	}

	if err := New(ctx, r, log, settings).Run(); err != nil {
		log.Error().Err(err).Msg("Render loop failed")
		return err
	}
	return nil
}

func clearColor(c config.Color) [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
