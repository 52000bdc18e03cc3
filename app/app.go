package app

import (
	"errors"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/logger"
	"github.com/richinsley/hellotriangle/recorder"
	"github.com/richinsley/hellotriangle/renderer"
)

// State is the render loop state.
type State int

const (
	Idle State = iota
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// FrameWriter consumes every rendered frame, e.g. a video recorder.
type FrameWriter interface {
	WriteFrame(pixels []byte) error
}

type Settings struct {
	// Frames closes the loop after that many presented frames; 0 means no limit.
	Frames int
	// Screenshot is the PNG path the last frame is written to. Needs Frames.
	Screenshot string
	Capture    FrameWriter
}

// App drives one context and renderer through the frame loop.
type App struct {
	ctx      graphics.Context
	r        *renderer.Renderer
	log      *logger.Logger
	settings Settings

	state  State
	frames int
}

func New(ctx graphics.Context, r *renderer.Renderer, log *logger.Logger, settings Settings) *App {
	return &App{ctx: ctx, r: r, log: log, settings: settings}
}

func (a *App) State() State { return a.state }

// Frames returns the number of frames presented so far.
func (a *App) Frames() int { return a.frames }

// Run blocks until the context is asked to close. A close request is only
// observed between frames, so the frame in flight always completes.
func (a *App) Run() error {
	a.state = Running
	start := a.ctx.Time()
	a.log.Info().Msg("Starting render loop")
	for !a.ctx.ShouldClose() {
		a.processInput()
		if err := a.frame(); err != nil {
			a.state = Closed
			return err
		}
	}
	a.state = Closed
	a.log.Info().
		Int("frames", a.frames).
		Float64("seconds", a.ctx.Time()-start).
		Msg("Render loop closed")
	return nil
}

func (a *App) processInput() {
	if a.ctx.KeyPressed(graphics.KeyEscape) {
		a.ctx.SetShouldClose(true)
	}
}

func (a *App) frame() error {
	a.r.RenderFrame()

	last := a.settings.Frames > 0 && a.frames+1 >= a.settings.Frames
	if err := a.capture(last); err != nil {
		return err
	}

	a.ctx.EndFrame()
	a.frames++
	if last {
		a.ctx.SetShouldClose(true)
	}
	return nil
}

// capture reads the back buffer before it is presented.
func (a *App) capture(last bool) error {
	wantShot := last && a.settings.Screenshot != ""
	if a.settings.Capture == nil && !wantShot {
		return nil
	}

	pixels, width, height := a.r.Snapshot()
	if a.settings.Capture != nil {
		err := a.settings.Capture.WriteFrame(pixels)
		switch {
		case errors.Is(err, recorder.ErrFrameSize):
			a.log.Warn().Int("frame", a.frames).Msgf("skipping frame: framebuffer is now %dx%d", width, height)
		case err != nil:
			return err
		}
	}
	if wantShot {
		if err := WritePNG(a.settings.Screenshot, pixels, width, height); err != nil {
			return err
		}
		a.log.Info().Str("file", a.settings.Screenshot).Msg("Screenshot saved")
	}
	return nil
}
