package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/shader"
)

type renderer struct {
	backend  glBackend
	reporter gfx.ErrorReporter

	program       uint32
	colorUniform  string
	colorLocation int32
	clearColor    [4]float32

	vao        uint32
	vbo        uint32
	ibo        uint32
	indexCount int32
}

// New creates the quad renderer. The GL context must be current on the
// calling thread.
func New(conf gfx.RendererConfig) (gfx.Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	reporter := conf.Reporter
	if reporter == nil {
		reporter = gfx.Discard
	}
	r := &renderer{
		backend:      glBackend{reporter: reporter},
		reporter:     reporter,
		colorUniform: conf.ColorUniform,
		clearColor:   conf.ClearColor,
	}
	r.initMesh(conf.Mesh)

	if err := r.Reload(conf.Sources); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (r *renderer) Render(f gfx.Frame) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.call("glUseProgram", func() { gl.UseProgram(r.program) })
	r.call("glUniform4f", func() {
		gl.Uniform4f(r.colorLocation, f.Color[0], f.Color[1], f.Color[2], f.Color[3])
	})
	gl.BindVertexArray(r.vao)
	r.call("glDrawElements", func() {
		gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	})
}

func (r *renderer) Reload(src shader.ProgramSources) error {
	program, err := gfx.BuildProgram(r.backend, src)
	if err != nil {
		return err
	}
	if r.program != 0 {
		r.backend.DeleteProgram(r.program)
	}
	r.program = program

	r.call("glGetUniformLocation", func() {
		r.colorLocation = gl.GetUniformLocation(r.program, gl.Str(r.colorUniform+"\x00"))
	})
	if r.colorLocation < 0 {
		r.reporter.Report("glGetUniformLocation", fmt.Errorf("uniform %q is not active", r.colorUniform))
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *renderer) Close() {
	if r.program != 0 {
		r.backend.DeleteProgram(r.program)
		r.program = 0
	}
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
		r.ibo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

func (r *renderer) initMesh(mesh gfx.Mesh) {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, gl.Ptr(mesh.Positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	r.indexCount = int32(len(mesh.Indices))
	checkGL(r.reporter, "upload mesh")
}

// call runs fn between a drain of stale errors and a check for new ones, so
// a reported error belongs to op.
func (r *renderer) call(op string, fn func()) {
	clearGL()
	fn()
	checkGL(r.reporter, op)
}

func clearGL() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

func checkGL(reporter gfx.ErrorReporter, op string) bool {
	ok := true
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return ok
		}
		reporter.Report(op, gfx.GLError{Code: code})
		ok = false
	}
}

type glBackend struct {
	reporter gfx.ErrorReporter
}

func (b glBackend) CompileShader(stage shader.Stage, source string) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == shader.Fragment {
		shaderType = gl.FRAGMENT_SHADER
	}
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, &gfx.CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return handle, nil
}

func (b glBackend) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(program)
		gl.DeleteProgram(program)
		return 0, &gfx.LinkError{Log: log}
	}

	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		b.reporter.Report("glValidateProgram", fmt.Errorf("validate program: %s", programLog(program)))
	}
	return program, nil
}

func (b glBackend) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (b glBackend) DeleteProgram(handle uint32) {
	gl.DeleteProgram(handle)
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
