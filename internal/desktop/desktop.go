// Package desktop runs the demo in a GLFW window with an OpenGL context.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kjkrol/glquad/internal/app"
	"github.com/kjkrol/glquad/internal/config"
	"github.com/kjkrol/glquad/internal/platform"
	"github.com/kjkrol/glquad/internal/renderer"
	"github.com/kjkrol/glquad/internal/watch"
	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/shader"
)

// Run opens the window and renders until it is closed or ctx is done. It
// must be called on the main thread.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	load := func() (shader.ProgramSources, error) {
		return app.LoadSources(cfg.Shader.Path, logger)
	}
	src, err := load()
	if err != nil {
		return err
	}

	if err := platform.Init(); err != nil {
		return err
	}
	defer platform.Terminate()

	bus := gfx.NewEventLoop(0, app.FrameInterval(cfg.FrameRate))
	bus.SetStrategy(app.EventStrategy(cfg.EventsPerFrame))
	window, err := platform.NewWindow(platform.WindowConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		SwapInterval: cfg.Window.SwapInterval,
		Resizable:    cfg.Window.Resizable,
	}, bus.EmitEvent)
	if err != nil {
		return err
	}
	defer window.Destroy()

	newRenderer := renderer.NewRendererFactory(gfx.LogReporter(logger))
	r, err := newRenderer(app.RendererConfig(cfg, src, nil))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer r.Close()
	logger.Info("opengl context ready", "version", renderer.Version())

	width, height := window.FramebufferSize()
	r.Resize(width, height)

	if cfg.Shader.Watch {
		watcher, err := watch.New(cfg.Shader.Path, bus.EmitEvent, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		logger.Info("watching shader", "path", watcher.Path())
	}

	dispatcher := &app.Dispatcher{
		Window:   window,
		Renderer: r,
		Load:     load,
		Logger:   logger,
	}
	err = bus.Run(ctx, window, r, app.NewPulse(cfg.Color), dispatcher.Dispatch)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
