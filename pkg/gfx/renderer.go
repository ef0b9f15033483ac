package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/glquad/pkg/shader"
)

// Frame is the per-frame input of a Renderer.
type Frame struct {
	Color mgl32.Vec4
}

type Renderer interface {
	Render(f Frame)
	// Reload replaces the active program. On error the previous program
	// stays in use.
	Reload(src shader.ProgramSources) error
	Resize(width, height int)
	Close()
}

type RendererFactory func(conf RendererConfig) (Renderer, error)
