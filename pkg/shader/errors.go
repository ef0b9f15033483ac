package shader

import "fmt"

// MalformedInputError reports a source line that appears before any
// stage directive selected a stage.
type MalformedInputError struct {
	Line int // 1-based
	Text string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("shader: line %d: content before any %s directive: %q", e.Line, directiveMarker, e.Text)
}
