// Package res bundles the demo's default resources into the binary.
package res

import _ "embed"

// BasicShaderPath is the on-disk location of BasicShader relative to the
// repository root.
const BasicShaderPath = "res/shaders/Basic.shader"

//go:embed shaders/Basic.shader
var BasicShader string
