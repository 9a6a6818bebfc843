package cpu

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// The machine must build without a window system, so neither it nor the
// packages it depends on may import a renderer backend.
func TestCoreBuildsWithoutRenderers(t *testing.T) {
	forbidden := []string{
		"chyp8vm/emu/screen/window",
		"chyp8vm/emu/screen/term",
		"github.com/faiface/pixel",
		"github.com/nsf/termbox-go",
	}

	for _, dir := range []string{".", "../screen", "../clock", "../../chyp"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		assert.NoError(t, err)
		assert.True(t, len(files) > 0)

		for _, file := range files {
			parsed, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			assert.NoError(t, err)

			for _, spec := range parsed.Imports {
				path, err := strconv.Unquote(spec.Path.Value)
				assert.NoError(t, err)
				for _, prefix := range forbidden {
					if strings.HasPrefix(path, prefix) {
						t.Errorf("%s imports %s", file, path)
					}
				}
			}
		}
	}
}
