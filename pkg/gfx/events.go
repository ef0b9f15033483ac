package gfx

type Event interface{}

// KeyPress is emitted for a pressed key; Label is the key name in lower case
// ("escape", "q", "r", ...).
type KeyPress struct {
	Code  int
	Label string
}

// Resize is emitted when the framebuffer size changes.
type Resize struct {
	Width, Height int
}

// ShaderChanged is emitted when the shader resource at Path was modified on disk.
type ShaderChanged struct {
	Path string
}

// ReloadRequest asks for the shader resource to be read again.
type ReloadRequest struct{}
