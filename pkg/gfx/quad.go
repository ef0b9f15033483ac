package gfx

// Mesh is indexed 2D geometry: two floats per vertex, triangles by index.
type Mesh struct {
	Positions []float32
	Indices   []uint32
}

// VertexCount returns the number of 2D vertices in Positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 2
}

// Quad returns the unit-half square centered on the origin, drawn as two
// triangles sharing the 0-2 diagonal.
func Quad() Mesh {
	return Mesh{
		Positions: []float32{
			-0.5, -0.5,
			-0.5, 0.5,
			0.5, 0.5,
			0.5, -0.5,
		},
		Indices: []uint32{
			0, 1, 2,
			0, 3, 2,
		},
	}
}
