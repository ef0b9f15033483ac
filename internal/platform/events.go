package platform

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/glquad/pkg/gfx"
)

var namedKeys = map[glfw.Key]string{
	glfw.KeyEscape: "escape",
	glfw.KeyEnter:  "enter",
	glfw.KeySpace:  "space",
	glfw.KeyF5:     "f5",
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press || w.emit == nil {
		return
	}
	w.emit(gfx.KeyPress{Code: int(key), Label: keyLabel(key, scancode)})
}

func (w *Window) onFramebufferSize(_ *glfw.Window, width, height int) {
	if w.emit == nil {
		return
	}
	w.emit(gfx.Resize{Width: width, Height: height})
}

func keyLabel(key glfw.Key, scancode int) string {
	if name, ok := namedKeys[key]; ok {
		return name
	}
	return strings.ToLower(glfw.GetKeyName(key, scancode))
}
