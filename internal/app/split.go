package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kjkrol/glquad/pkg/shader"
)

// StageFiles returns the per-stage output paths for a combined resource:
// dir/<base>.vert and dir/<base>.frag.
func StageFiles(input, dir string) (vertex, fragment string) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+".vert"), filepath.Join(dir, base+".frag")
}

// WriteStages writes both stages of src next to each other in dir.
func WriteStages(src shader.ProgramSources, input, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	vertex, fragment := StageFiles(input, dir)
	if err := os.WriteFile(vertex, []byte(src.VertexSource), 0o644); err != nil {
		return fmt.Errorf("write vertex stage: %w", err)
	}
	if err := os.WriteFile(fragment, []byte(src.FragmentSource), 0o644); err != nil {
		return fmt.Errorf("write fragment stage: %w", err)
	}
	return nil
}

// PrintStages writes both stages to w, each under a directive header, so the
// output splits back into the same sources.
func PrintStages(w io.Writer, src shader.ProgramSources) error {
	_, err := fmt.Fprintf(w, "#shader vertex\n%s#shader fragment\n%s", src.VertexSource, src.FragmentSource)
	return err
}
