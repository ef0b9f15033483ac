// Package shader splits a combined shader resource into its vertex and
// fragment stages.
//
// A combined resource interleaves directive lines of the form
//
//	#shader vertex
//	#shader fragment
//
// with ordinary shader source. Every line following a directive belongs to
// the stage that directive selected, up to the next directive.
package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	directiveMarker = "#shader"
	vertexMarker    = "vertex"
	fragmentMarker  = "fragment"

	maxLineSize = 1 << 20
)

// Split partitions lines into per-stage sources. Directive lines are consumed
// and never emitted; every other line is appended to the active stage with a
// trailing newline. A line seen while no stage is active fails the whole
// split with a *MalformedInputError.
func Split(lines []string) (ProgramSources, error) {
	var (
		bufs   [2]strings.Builder
		stage  Stage
		active bool
	)
	for i, line := range lines {
		if strings.Contains(line, directiveMarker) {
			// vertex wins when both markers are present
			if strings.Contains(line, vertexMarker) {
				stage, active = Vertex, true
			} else if strings.Contains(line, fragmentMarker) {
				stage, active = Fragment, true
			}
			continue
		}
		if !active {
			return ProgramSources{}, &MalformedInputError{Line: i + 1, Text: line}
		}
		bufs[stage].WriteString(line)
		bufs[stage].WriteByte('\n')
	}
	return ProgramSources{
		VertexSource:   bufs[Vertex].String(),
		FragmentSource: bufs[Fragment].String(),
	}, nil
}

// Parse reads r to the end and splits its lines. Both "\n" and "\r\n" line
// endings are accepted.
func Parse(r io.Reader) (ProgramSources, error) {
	lines, err := readLines(r)
	if err != nil {
		return ProgramSources{}, err
	}
	return Split(lines)
}

// ParseFile reads and splits the combined shader resource at path.
func ParseFile(path string) (ProgramSources, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProgramSources{}, fmt.Errorf("open shader %q: %w", path, err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return ProgramSources{}, fmt.Errorf("parse shader %q: %w", path, err)
	}
	return src, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read shader source: %w", err)
	}
	return lines, nil
}
