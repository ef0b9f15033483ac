package renderer

import "github.com/kjkrol/glquad/pkg/gfx"

// NewRendererFactory returns a factory that fills in defaults the caller
// left unset before creating the GL renderer.
func NewRendererFactory(reporter gfx.ErrorReporter) gfx.RendererFactory {
	return func(conf gfx.RendererConfig) (gfx.Renderer, error) {
		if conf.Reporter == nil {
			conf.Reporter = reporter
		}
		if len(conf.Mesh.Indices) == 0 {
			conf.Mesh = gfx.Quad()
		}
		return New(conf)
	}
}
