package svgpdf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benoitkugler/svg2excalidraw/converter"
	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

const sample = `<svg width="200" height="100">
	<rect x="0" y="0" width="40" height="20" fill="#ff0000" stroke="#0000ff" stroke-width="2"/>
	<circle cx="60" cy="10" r="10" fill="none"/>
	<path d="M0 40 C0 60 40 60 40 40" stroke="#000000"/>
	<text x="0" y="90" fill="#000000">Café</text>
</svg>`

func convert(t *testing.T, markup string) *excalidraw.Document {
	t.Helper()
	doc, err := converter.Convert(markup, converter.Options{})
	require.NoError(t, err)
	return doc
}

func pt(x, y int) fixed.Point26_6 { return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)} }

func TestRenderDocument(t *testing.T) {
	doc := convert(t, sample)
	var buf bytes.Buffer
	require.NoError(t, RenderDocument(doc, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("%%EOF")))
}

func TestRendererCounts(t *testing.T) {
	doc := convert(t, sample)
	sc := svgdraw.Layout(doc, 1)
	pdf := NewDocument(sc)
	r := NewRenderer(pdf)
	sc.Draw(r)
	require.NoError(t, pdf.Error())

	// rect: fill and stroke, circle: stroke, path: stroke
	assert.Equal(t, 4, r.paths)
	assert.Equal(t, 1, r.texts)

	w, h := pdf.GetPageSize()
	sw, sh := sc.Size()
	assert.Equal(t, sw, w)
	assert.Equal(t, sh, h)

	extent, ok := r.Extent()
	require.True(t, ok)
	assert.True(t, extent.Min.X >= 0 && extent.Min.Y >= 0)
	assert.True(t, float64(extent.Max.X)/64 <= w && float64(extent.Max.Y)/64 <= h)
}

func TestRendererExtent(t *testing.T) {
	doc := convert(t, `<svg><rect x="0" y="0" width="40" height="20"/></svg>`)
	sc := svgdraw.Layout(doc, 1)
	r := NewRenderer(NewDocument(sc))

	_, ok := r.Extent()
	assert.False(t, ok)

	sc.Draw(r)
	extent, ok := r.Extent()
	require.True(t, ok)
	assert.Equal(t, fixed.Rectangle26_6{Min: pt(10, 10), Max: pt(50, 30)}, extent)
}

func TestRenderTooLarge(t *testing.T) {
	for _, markup := range []string{
		`<svg><rect width="100000" height="10"/></svg>`,
		`<svg><path d="M0 0 L0 1e9"/></svg>`,
	} {
		var buf bytes.Buffer
		err := RenderDocument(convert(t, markup), &buf)
		assert.True(t, errors.Is(err, errTooLarge), markup)
		assert.Zero(t, buf.Len())
	}

	// the limit includes the margin
	var buf bytes.Buffer
	require.NoError(t, RenderDocument(convert(t, `<svg><rect width="14380" height="10"/></svg>`), &buf))
}

func TestRenderEmpty(t *testing.T) {
	doc := convert(t, `<svg/>`)
	sc := svgdraw.Layout(doc, 1)
	pdf := NewDocument(sc)
	r := NewRenderer(pdf)
	sc.Draw(r)
	_, ok := r.Extent()
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestSegmentBounds(t *testing.T) {
	assert.Equal(t,
		fixed.Rectangle26_6{Min: pt(0, 5), Max: pt(10, 20)},
		segmentBounds(line{pt(10, 20), pt(0, 5)}),
	)

	// the control points are outside of the curve extent
	cu := cubicBezier{pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0)}
	assert.Equal(t,
		fixed.Rectangle26_6{Min: pt(0, 0), Max: fixed.Point26_6{X: fixed.I(10), Y: 480}},
		segmentBounds(cu),
	)

	// monotonic curve: the extent is given by the end points
	cu = cubicBezier{pt(0, 0), pt(2, 3), pt(5, 6), pt(8, 8)}
	assert.Equal(t, fixed.Rectangle26_6{Min: pt(0, 0), Max: pt(8, 8)}, segmentBounds(cu))
}

func TestQuadraticRoots(t *testing.T) {
	assert.Nil(t, quadraticRoots(0, 0, 1))
	assert.Equal(t, []float64{2}, quadraticRoots(0, 1, -2))
	assert.Nil(t, quadraticRoots(1, 0, 1))
	assert.Equal(t, []float64{1}, quadraticRoots(1, -2, 1))
	assert.ElementsMatch(t, []float64{1, 2}, quadraticRoots(1, -3, 2))
}
