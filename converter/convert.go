// Implements the conversion of SVG markup into an Excalidraw scene.
//
// Rectangles, circles, ellipses, paths and text are mapped to
// Excalidraw elements, in that order. Paths are reduced to the
// polyline through their end points (see package svgpath).
package converter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdoc"
	"go.uber.org/zap"
)

// Options tunes a conversion. The zero value is valid.
type Options struct {
	// Verbose enables progress reporting through Logger.
	Verbose bool
	// Logger receives progress reports and warnings about
	// unsupported elements. Nil disables logging.
	Logger *zap.Logger
	// ErrorMode selects the treatment of unsupported elements.
	ErrorMode svgdoc.ErrorMode
	// Random provides element identifiers and seeds.
	// Nil means excalidraw.DefaultRandomizer().
	Random excalidraw.Randomizer
	// Source is written as the document provenance.
	// Empty means excalidraw.DefaultSource.
	Source string
}

func (opts Options) logger() *zap.Logger {
	if opts.Logger == nil {
		return zap.NewNop()
	}
	return opts.Logger
}

// ErrOutOfRange is returned when a computed coordinate
// overflows the float64 range.
var ErrOutOfRange = errors.New("coordinate out of range")

// ConversionError is returned when a conversion fails.
// Use errors.Is to match the svgdoc error kinds.
type ConversionError struct {
	Op  string // step which failed
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("svg conversion: %s: %s", e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Convert converts the SVG `markup`. No partial document is
// returned on failure.
func Convert(markup string, opts Options) (*excalidraw.Document, error) {
	return ConvertReader(strings.NewReader(markup), opts)
}

// ConvertReader is like Convert, but reads the markup from `r`.
func ConvertReader(r io.Reader, opts Options) (*excalidraw.Document, error) {
	log := opts.logger()
	report := zap.NewNop()
	if opts.Verbose {
		report = log
	}
	report.Info("processing SVG content")

	src, err := svgdoc.Parse(r, opts.ErrorMode, log)
	if err != nil {
		return nil, &ConversionError{Op: "parse", Err: err}
	}
	dims := []zap.Field{
		zap.Float64("width", src.Width), zap.Float64("height", src.Height),
		zap.Bool("hasViewBox", src.HasViewBox),
	}
	if src.HasViewBox {
		vb := src.ViewBox
		dims = append(dims, zap.Float64s("viewBox", []float64{vb.X, vb.Y, vb.W, vb.H}))
	}
	if len(src.Titles) != 0 {
		dims = append(dims, zap.Strings("titles", src.Titles))
	}
	if len(src.Descriptions) != 0 {
		dims = append(dims, zap.Strings("descriptions", src.Descriptions))
	}
	report.Info("SVG dimensions", dims...)

	rd := opts.Random
	if rd == nil {
		rd = excalidraw.DefaultRandomizer()
	}
	b := newBuilder(opts.Source, rd, report)
	b.build(src)
	for i, el := range b.doc.Elements {
		if !el.Finite() {
			return nil, &ConversionError{Op: "build", Err: fmt.Errorf("%w: element %d (%s)", ErrOutOfRange, i, el.Type)}
		}
	}

	report.Info("SVG parsed successfully", zap.Int("elements", len(b.doc.Elements)))
	return b.doc, nil
}
