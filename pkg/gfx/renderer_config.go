package gfx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/glquad/pkg/shader"
)

// RendererConfig describes GPU inputs provided by the caller.
// Sources must be a linked-compatible vertex/fragment pair whose fragment
// stage declares a vec4 uniform named ColorUniform.
type RendererConfig struct {
	Sources      shader.ProgramSources
	ColorUniform string
	Mesh         Mesh
	ClearColor   mgl32.Vec4
	Reporter     ErrorReporter
}
