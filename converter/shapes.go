package converter

import (
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdoc"
	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"go.uber.org/zap"
)

// Text metrics estimates, relative to the font size.
const (
	charWidthRatio  = 0.6
	lineHeightRatio = 1.2
)

const (
	defaultFontSize    = 20
	defaultStrokeWidth = 1
	defaultOpacity     = 1
	defaultFontFamily  = "Virgil"
)

type shapeFunc func(b *builder, e *etree.Element)

// shapeFuncs lists the converted tags, in output order.
var shapeFuncs = []struct {
	tag string
	f   shapeFunc
}{
	{"rect", rectF},
	{"circle", circleF},
	{"ellipse", ellipseF},
	{"path", pathF},
	{"text", textF},
}

// builder accumulates the elements of one document.
type builder struct {
	doc   *excalidraw.Document
	rd    excalidraw.Randomizer
	log   *zap.Logger
	index int // z-order of the next element
	ids   map[string]bool
}

func newBuilder(source string, rd excalidraw.Randomizer, log *zap.Logger) *builder {
	return &builder{
		doc: excalidraw.NewDocument(source),
		rd:  rd,
		log: log,
		ids: make(map[string]bool),
	}
}

func (b *builder) build(src *svgdoc.Document) {
	for _, shape := range shapeFuncs {
		for _, e := range src.Elements(shape.tag) {
			shape.f(b, e)
		}
	}
}

// newElement returns an element with the next index, making
// sure its identifier is not already used in the document.
func (b *builder) newElement(typ excalidraw.Type, x, y, width, height float64) excalidraw.Element {
	el := excalidraw.NewElement(b.rd, typ, x, y, width, height, b.index)
	b.index++
	for b.ids[el.ID] {
		el.ID = b.rd.NextID()
	}
	b.ids[el.ID] = true
	return el
}

func (b *builder) add(el excalidraw.Element) {
	b.doc.Elements = append(b.doc.Elements, el)
}

// shapeStyle applies the attributes shared by the closed shapes.
// `strokeNone` is the stroke color used for stroke="none".
func shapeStyle(el *excalidraw.Element, e *etree.Element, strokeNone string) {
	el.StrokeColor = svgdoc.ColorOr(e, "stroke", excalidraw.DefaultStrokeColor, strokeNone)
	el.BackgroundColor = svgdoc.ColorOr(e, "fill", excalidraw.Transparent, excalidraw.Transparent)
	el.StrokeWidth = svgdoc.NonZeroFloatOr(e, "stroke-width", defaultStrokeWidth)
	el.Opacity = excalidraw.Opacity(svgdoc.NonZeroFloatOr(e, "opacity", defaultOpacity))
}

func rectF(b *builder, e *etree.Element) {
	x := svgdoc.FloatOr(e, "x", 0)
	y := svgdoc.FloatOr(e, "y", 0)
	w := svgdoc.FloatOr(e, "width", 0)
	h := svgdoc.FloatOr(e, "height", 0)
	el := b.newElement(excalidraw.Rectangle, x, y, w, h)
	shapeStyle(&el, e, excalidraw.Transparent)
	b.add(el)
}

func circleF(b *builder, e *etree.Element) {
	cx := svgdoc.FloatOr(e, "cx", 0)
	cy := svgdoc.FloatOr(e, "cy", 0)
	r := svgdoc.FloatOr(e, "r", 0)
	el := b.newElement(excalidraw.Ellipse, cx-r, cy-r, 2*r, 2*r)
	shapeStyle(&el, e, excalidraw.Transparent)
	b.add(el)
}

func ellipseF(b *builder, e *etree.Element) {
	cx := svgdoc.FloatOr(e, "cx", 0)
	cy := svgdoc.FloatOr(e, "cy", 0)
	rx := svgdoc.FloatOr(e, "rx", 0)
	ry := svgdoc.FloatOr(e, "ry", 0)
	el := b.newElement(excalidraw.Ellipse, cx-rx, cy-ry, 2*rx, 2*ry)
	shapeStyle(&el, e, excalidraw.Transparent)
	b.add(el)
}

// pathF emits a freedraw element whose points are relative
// to the bounding box of the path.
func pathF(b *builder, e *etree.Element) {
	d := svgdoc.StringOr(e, "d", "")
	if d == "" {
		return
	}
	cmds := svgpath.Parse(d)
	points := svgpath.Interpret(cmds)
	b.log.Debug("path interpreted", zap.Int("commands", len(cmds)), zap.Int("points", len(points)))
	if len(points) == 0 {
		return
	}

	lo, hi := svgpath.BoundingBox(points)
	relative := make([]excalidraw.Point, len(points))
	for i, p := range points {
		relative[i] = excalidraw.Point{p.X - lo.X, p.Y - lo.Y}
	}

	el := b.newElement(excalidraw.Freedraw, lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y)
	// freedraw elements are always stroked
	shapeStyle(&el, e, excalidraw.DefaultStrokeColor)
	el.FreedrawData = excalidraw.NewFreedrawData(relative)
	b.add(el)
}

// textF emits a text element. Its size is estimated from the
// number of characters since no font metrics are available.
func textF(b *builder, e *etree.Element) {
	x := svgdoc.FloatOr(e, "x", 0)
	y := svgdoc.FloatOr(e, "y", 0)
	content := svgdoc.TextContent(e)
	fontSize := svgdoc.NonZeroFloatOr(e, "font-size", defaultFontSize)
	family := svgdoc.StringOr(e, "font-family", defaultFontFamily)

	width := float64(utf8.RuneCountInString(content)) * fontSize * charWidthRatio
	el := b.newElement(excalidraw.Text, x, y-fontSize, width, fontSize*lineHeightRatio)
	el.StrokeColor = svgdoc.StringOr(e, "fill", excalidraw.DefaultStrokeColor)
	el.Opacity = excalidraw.Opacity(svgdoc.NonZeroFloatOr(e, "opacity", defaultOpacity))
	el.TextData = excalidraw.NewTextData(content, fontSize, excalidraw.ParseFontFamily(family))
	b.add(el)
}
