// Package app holds the demo logic that sits between the configuration and
// the platform: shader loading, event dispatch and frame setup.
package app

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/glquad/internal/config"
	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/shader"
	"github.com/kjkrol/glquad/res"
)

// LoadSources reads and splits the shader resource at path. An empty path,
// or the default path when no such file exists, selects the embedded copy.
func LoadSources(path string, logger *slog.Logger) (shader.ProgramSources, error) {
	if path == "" {
		return shader.Parse(strings.NewReader(res.BasicShader))
	}
	src, err := shader.ParseFile(path)
	if err != nil && path == res.BasicShaderPath && errors.Is(err, fs.ErrNotExist) {
		logger.Info("shader resource not found, using embedded copy", "path", path)
		return shader.Parse(strings.NewReader(res.BasicShader))
	}
	return src, err
}

// NewPulse builds the color animation described by cfg.
func NewPulse(cfg config.ColorConfig) *gfx.Pulse {
	return gfx.NewPulse(cfg.Increment, cfg.Step, mgl32.Vec4{0, cfg.Green, cfg.Blue, cfg.Alpha})
}

// RendererConfig builds the renderer inputs for src.
func RendererConfig(cfg config.Config, src shader.ProgramSources, reporter gfx.ErrorReporter) gfx.RendererConfig {
	return gfx.RendererConfig{
		Sources:      src,
		ColorUniform: cfg.Shader.Uniform,
		Mesh:         gfx.Quad(),
		ClearColor:   mgl32.Vec4{0, 0, 0, 1},
		Reporter:     reporter,
	}
}

// EventStrategy picks how many events the loop handles per frame.
func EventStrategy(eventsPerFrame int) gfx.EventsConsumerStrategy {
	if eventsPerFrame > 0 {
		return gfx.DrainMax(eventsPerFrame)
	}
	return gfx.DrainAll()
}

// FrameInterval converts a frame rate cap to the loop's refresh interval.
func FrameInterval(frameRate int) time.Duration {
	if frameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(frameRate)
}
