package gfx

import (
	"fmt"

	"github.com/kjkrol/glquad/pkg/shader"
)

// Backend is the graphics API boundary used to turn shader sources into a
// program. Handles are opaque to callers; zero is never a valid handle.
type Backend interface {
	CompileShader(stage shader.Stage, source string) (uint32, error)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteShader(handle uint32)
	DeleteProgram(handle uint32)
}

// CompileError carries the backend diagnostic log of a failed stage compile.
type CompileError struct {
	Stage shader.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the backend diagnostic log of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// BuildProgram compiles both stages of src and links them. The compiled stage
// handles are always released before returning, whether linking succeeded
// or not; the returned program is owned by the caller.
func BuildProgram(b Backend, src shader.ProgramSources) (uint32, error) {
	vs, err := b.CompileShader(shader.Vertex, src.VertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := b.CompileShader(shader.Fragment, src.FragmentSource)
	if err != nil {
		b.DeleteShader(vs)
		return 0, err
	}

	program, err := b.LinkProgram(vs, fs)
	b.DeleteShader(vs)
	b.DeleteShader(fs)
	if err != nil {
		return 0, err
	}
	return program, nil
}
