package converter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"go.uber.org/zap"
)

// ErrInputNotFound is returned by ProcessFile when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

const outputExt = ".excalidraw.json"

// OutputPath returns the default output file for `input`: a trailing
// .svg extension (in any case) is replaced by .excalidraw.json.
func OutputPath(input string) string {
	if n := len(input) - len(".svg"); n >= 0 && strings.EqualFold(input[n:], ".svg") {
		input = input[:n]
	}
	return input + outputExt
}

// ProcessFile converts the SVG file `input` and writes the scene to `output`,
// or to OutputPath(input) if `output` is empty. It returns the path written.
func ProcessFile(input, output string, opts Options) (string, error) {
	content, err := os.ReadFile(input)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, input)
	} else if err != nil {
		return "", err
	}
	if opts.Verbose {
		opts.logger().Info("reading SVG file", zap.String("path", input))
	}

	doc, err := ConvertReader(bytes.NewReader(content), opts)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = OutputPath(input)
	}
	var buf bytes.Buffer
	if err := excalidraw.Encode(&buf, doc); err != nil {
		return "", &ConversionError{Op: "encode", Err: err}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return output, nil
}
