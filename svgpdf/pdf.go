// Implements a PDF backend to render converted scenes,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = (*Renderer)(nil)
	_ svgdraw.Drawer  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

// MaxSize is the maximum width or height, in points, of a
// rendered page, which is the page size limit of PDF readers.
const MaxSize = 14400

var errTooLarge = errors.New("scene is too large for a PDF page")

// textFont is the core font used for text elements.
const textFont = "Helvetica"

// ascentRatio approximates the ascent of textFont relative to its size.
const ascentRatio = 0.8

type Renderer struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string // utf-8 to the core font encoding

	extent fixed.Rectangle26_6 // union of the drawn paths
	drawn  bool
	paths  int
	texts  int
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	r           *Renderer
	a           fixed.Point26_6 // current point, used to compute boundingBox
	boundingBox fixed.Rectangle26_6
}

// implements the filling operation
type filler struct {
	pather
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`, on its current page.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Drawer, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather{r: r}}
	}
	if willStroke {
		s = &stroker{pather{r: r}}
	}
	return f, s
}

// DrawText writes `text` with the core Helvetica font.
func (r *Renderer) DrawText(text string, origin fixed.Point26_6, size float64, c color.NRGBA, opacity float64) {
	x, y := fixedTof(origin)
	r.pdf.SetFont(textFont, "", size)
	r.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(opacity*float64(c.A)/255, "Normal")
	r.pdf.Text(x, y+size*ascentRatio, r.translate(text))
	r.texts++
}

// Extent returns the bounding box of the paths drawn so far.
// `ok` is false if nothing has been drawn.
func (r *Renderer) Extent() (extent fixed.Rectangle26_6, ok bool) {
	return r.extent, r.drawn
}

func (r *Renderer) addExtent(box fixed.Rectangle26_6) {
	if !r.drawn {
		r.extent, r.drawn = box, true
		return
	}
	r.extent = r.extent.Union(box)
}

func (p *pather) Clear() {
	p.boundingBox = fixed.Rectangle26_6{}
	p.a = fixed.Point26_6{}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.r.pdf.MoveTo(fixedTof(a))
	p.a = a
	p.boundingBox = fixed.Rectangle26_6{Min: a, Max: a} // degenerate case
}

func (p *pather) Line(b fixed.Point26_6) {
	p.r.pdf.LineTo(fixedTof(b))
	p.boundingBox = p.boundingBox.Union(segmentBounds(line{p.a, b}))
	p.a = b
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.r.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.boundingBox = p.boundingBox.Union(segmentBounds(cubicBezier{p.a, b, c, d}))
	p.a = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.r.pdf.ClosePath()
	}
}

func (p *pather) drawPath(styleStr string) {
	p.r.pdf.DrawPath(styleStr)
	p.r.addExtent(p.boundingBox)
	p.r.paths++
}

func (f *filler) SetColor(c color.NRGBA, opacity float64) {
	f.r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	f.r.pdf.SetAlpha(opacity*float64(c.A)/255, "Normal")
}

func (f *filler) Draw() { f.drawPath("F") }

func (s *stroker) SetLineWidth(width fixed.Int26_6) {
	s.r.pdf.SetLineWidth(float64(width) / 64)
	s.r.pdf.SetLineCapStyle("round")
	s.r.pdf.SetLineJoinStyle("round")
}

func (s *stroker) SetColor(c color.NRGBA, opacity float64) {
	s.r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.r.pdf.SetAlpha(opacity*float64(c.A)/255, "Normal")
}

func (s *stroker) Draw() { s.drawPath("D") }

// NewDocument returns a single page PDF, in points, sized to the
// scene, and with the background painted.
// The scene size is not checked against MaxSize.
func NewDocument(sc svgdraw.Scene) *gofpdf.Fpdf {
	w, h := sc.Size()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	if bg, ok := svgdraw.ParseColor(sc.Doc.AppState.ViewBackgroundColor); ok {
		pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		pdf.Rect(0, 0, w, h, "F")
	}
	return pdf
}

// RenderDocument writes `doc` as a PDF to `w`, one point per scene unit.
func RenderDocument(doc *excalidraw.Document, w io.Writer) error {
	sc := svgdraw.Layout(doc, 1)
	if w, h := sc.Size(); w > MaxSize || h > MaxSize {
		return fmt.Errorf("%w: %gx%g points", errTooLarge, w, h)
	}
	pdf := NewDocument(sc)
	sc.Draw(NewRenderer(pdf))
	return pdf.Output(w)
}
