package converter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	for _, test := range []struct{ input, expected string }{
		{"drawing.svg", "drawing.excalidraw.json"},
		{"dir/DRAWING.SVG", "dir/DRAWING.excalidraw.json"},
		{"a.svg.svg", "a.svg.excalidraw.json"},
		{"noext", "noext.excalidraw.json"},
		{"svg", "svg.excalidraw.json"},
		{".svg", ".excalidraw.json"},
	} {
		assert.Equal(t, test.expected, OutputPath(test.input), test.input)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "shapes.SVG")
	require.NoError(t, os.WriteFile(input, []byte(`<svg><rect width="10" height="10"/><circle r="3"/></svg>`), 0o644))

	written, err := ProcessFile(input, "", seeded(1))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shapes.excalidraw.json"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"type\": \"excalidraw\"")
	report, err := excalidraw.Validate(data)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ElementCount())
	assert.Empty(t, report.Warnings)

	custom := filepath.Join(dir, "out.json")
	written, err = ProcessFile(input, custom, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, custom, written)
	assert.FileExists(t, custom)
}

func TestProcessFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ProcessFile(filepath.Join(dir, "missing.svg"), "", Options{})
	assert.True(t, errors.Is(err, ErrInputNotFound))

	bad := filepath.Join(dir, "bad.svg")
	require.NoError(t, os.WriteFile(bad, []byte("<svg>"), 0o644))
	_, err = ProcessFile(bad, "", Options{})
	var convErr *ConversionError
	assert.True(t, errors.As(err, &convErr))
	assert.NoFileExists(t, filepath.Join(dir, "bad.excalidraw.json"))
}
