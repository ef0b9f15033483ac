package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/glquad/pkg/gfx"
)

type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	SwapInterval int
	Resizable    bool
}

// Init initializes GLFW. It must be called from the main thread, which must
// stay locked to its OS thread for the lifetime of the process.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate releases every remaining GLFW resource.
func Terminate() {
	glfw.Terminate()
}

// Window is a GLFW window with a current OpenGL 3.3 core context.
type Window struct {
	win  *glfw.Window
	emit func(gfx.Event)
}

// NewWindow creates the window, makes its context current and forwards key
// and framebuffer size events to emit.
func NewWindow(conf WindowConfig, emit func(gfx.Event)) (*Window, error) {
	glfw.WindowHint(glfw.Resizable, boolHint(conf.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(conf.SwapInterval)

	w := &Window{win: win, emit: emit}
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)
	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Destroy releases the window and its context.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
