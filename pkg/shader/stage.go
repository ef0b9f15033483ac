package shader

// Stage identifies one of the two pipeline stages a combined shader file holds.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ProgramSources holds the per-stage sources of a single program.
type ProgramSources struct {
	VertexSource   string
	FragmentSource string
}

// Source returns the text collected for the given stage.
func (p ProgramSources) Source(stage Stage) string {
	if stage == Fragment {
		return p.FragmentSource
	}
	return p.VertexSource
}
