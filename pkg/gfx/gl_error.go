package gfx

import "fmt"

// GLError is an error code drained from the graphics API error queue.
type GLError struct {
	Code uint32
}

var glErrorNames = map[uint32]string{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0503: "GL_STACK_OVERFLOW",
	0x0504: "GL_STACK_UNDERFLOW",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

func (e GLError) Error() string {
	if name, ok := glErrorNames[e.Code]; ok {
		return fmt.Sprintf("%s (0x%04x)", name, e.Code)
	}
	return fmt.Sprintf("gl error 0x%04x", e.Code)
}
