package app

import (
	"errors"
	"log/slog"

	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/shader"
)

// Dispatcher reacts to loop events on the render thread.
type Dispatcher struct {
	Window   gfx.Window
	Renderer gfx.Renderer
	Load     func() (shader.ProgramSources, error)
	Logger   *slog.Logger
}

func (d *Dispatcher) Dispatch(event gfx.Event) {
	switch e := event.(type) {
	case gfx.KeyPress:
		switch e.Label {
		case "escape", "q":
			d.Window.SetShouldClose(true)
		case "r", "f5":
			d.reload("key " + e.Label)
		}
	case gfx.Resize:
		if e.Width > 0 && e.Height > 0 {
			d.Renderer.Resize(e.Width, e.Height)
		}
	case gfx.ShaderChanged:
		d.reload(e.Path)
	case gfx.ReloadRequest:
		d.reload("request")
	}
}

// reload keeps the running program whenever the new sources fail to load,
// compile or link.
func (d *Dispatcher) reload(trigger string) {
	src, err := d.Load()
	if err != nil {
		var malformed *shader.MalformedInputError
		if errors.As(err, &malformed) {
			d.Logger.Error("shader reload rejected", "trigger", trigger, "line", malformed.Line, "err", err)
			return
		}
		d.Logger.Error("shader reload failed", "trigger", trigger, "err", err)
		return
	}
	if err := d.Renderer.Reload(src); err != nil {
		var compileErr *gfx.CompileError
		if errors.As(err, &compileErr) {
			d.Logger.Error("shader compile failed", "trigger", trigger, "stage", compileErr.Stage.String(), "log", compileErr.Log)
			return
		}
		d.Logger.Error("shader program rebuild failed", "trigger", trigger, "err", err)
		return
	}
	d.Logger.Info("shader reloaded", "trigger", trigger)
}
