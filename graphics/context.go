package graphics

import "unsafe"

// Key identifies a keyboard key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

// ResizeFunc receives the new framebuffer size in pixels.
type ResizeFunc func(width, height int)

// Context defines the interface for an OpenGL context bound to a drawing surface.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	// EndFrame presents the back buffer and dispatches pending events.
	// Resize callbacks fire from inside EndFrame.
	EndFrame()
	GetFramebufferSize() (int, int)
	SetFramebufferSizeCallback(ResizeFunc)
	KeyPressed(Key) bool
	// ProcAddress resolves a GL entry point against the current context.
	ProcAddress(name string) unsafe.Pointer
	Time() float64
	IsGLES() bool
}
