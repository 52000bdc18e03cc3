package glfwcontext

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/logger"
)

// ErrCreateWindow reports that GLFW could not create the window or its context.
var ErrCreateWindow = errors.New("failed to create GLFW window")

// Config describes the window and the context requested for it.
type Config struct {
	Width, Height int
	Title         string
	Major, Minor  int
	Visible       bool
}

// Context tracks one GLFW window and its OpenGL context.
type Context struct {
	window   *glfw.Window
	onResize graphics.ResizeFunc
}

var keys = map[graphics.Key]glfw.Key{
	graphics.KeyEscape: glfw.KeyEscape,
}

// New creates the window with a core-profile context of the requested version
// and makes it current on the calling thread.
func New(cfg Config) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if !cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}

	c := &Context{window: win}
	win.MakeContextCurrent()
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	return c, nil
}

// glfwFramebufferSizeCallback is called by GLFW from inside PollEvents.
func (c *Context) glfwFramebufferSizeCallback(_ *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

// SetFramebufferSizeCallback registers f to run whenever the framebuffer is resized.
func (c *Context) SetFramebufferSizeCallback(f graphics.ResizeFunc) {
	c.onResize = f
}

func (c *Context) KeyPressed(key graphics.Key) bool {
	k, ok := keys[key]
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (c *Context) IsGLES() bool {
	// the context is always requested with the desktop core profile
	return false
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; GLFW itself is released by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics(log *logger.Logger) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Debug().Str("version", glfw.GetVersionString()).Msg("GLFW initialized")
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics(log *logger.Logger) {
	glfw.Terminate()
	log.Debug().Msg("GLFW terminated")
}
