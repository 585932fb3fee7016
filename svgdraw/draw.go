// Given a converted Excalidraw scene, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"
	"math"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any scene kwowledge.
// In particular, the scene layout is already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color color.NRGBA, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Stroker interface {
	Drawer

	// SetLineWidth parametrizes the stroking width for the current path.
	// Joins and caps are always round.
	SetLineWidth(width fixed.Int26_6)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every element.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Drawer, Stroker)

	// DrawText writes a single line of text whose top left corner is `origin`.
	DrawText(text string, origin fixed.Point26_6, size float64, color color.NRGBA, opacity float64)
}

// DefaultMargin is the space left around the scene, in scene units.
const DefaultMargin = 10

// Scene maps the coordinates of a document to the device space.
type Scene struct {
	Doc    *excalidraw.Document
	Bounds Bounds // extent of the elements
	Margin float64
	Scale  float64
}

// Layout computes the extent of `doc` and returns a scene drawing it
// at the given scale, with DefaultMargin around the elements.
func Layout(doc *excalidraw.Document, scale float64) Scene {
	if scale <= 0 {
		scale = 1
	}
	return Scene{Doc: doc, Bounds: DocumentBounds(doc), Margin: DefaultMargin, Scale: scale}
}

// Size returns the device size of the scene.
func (sc Scene) Size() (width, height float64) {
	return (sc.Bounds.W + 2*sc.Margin) * sc.Scale, (sc.Bounds.H + 2*sc.Margin) * sc.Scale
}

// Device maps a scene point to the device space.
func (sc Scene) Device(x, y float64) (float64, float64) {
	return (x - sc.Bounds.X + sc.Margin) * sc.Scale, (y - sc.Bounds.Y + sc.Margin) * sc.Scale
}

func (sc Scene) toFixed(x, y float64) fixed.Point26_6 {
	dx, dy := sc.Device(x, y)
	return fixed.Point26_6{X: fToFixed(dx), Y: fToFixed(dy)}
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// Draw the document into the driver `d`, at scale 1.
func Draw(doc *excalidraw.Document, d Driver) {
	Layout(doc, 1).Draw(d)
}

// Draw the elements, in order, into the driver `d`.
// Deleted elements are skipped.
func (sc Scene) Draw(d Driver) {
	for _, el := range sc.Doc.Elements {
		if el.IsDeleted {
			continue
		}
		sc.drawElement(d, el)
	}
}

// elementPath sends the outline of `el` to the drawer.
type elementPath func(sc Scene, el excalidraw.Element, dr Drawer)

var pathFuncs = map[excalidraw.Type]elementPath{
	excalidraw.Rectangle: rectanglePath,
	excalidraw.Ellipse:   ellipsePath,
	excalidraw.Freedraw:  freedrawPath,
}

func (sc Scene) drawElement(d Driver, el excalidraw.Element) {
	opacity := float64(el.Opacity) / 100
	if el.Type == excalidraw.Text {
		if el.TextData == nil {
			return
		}
		c, ok := ParseColor(el.StrokeColor)
		if !ok {
			return
		}
		d.DrawText(el.Text, sc.toFixed(el.X, el.Y), el.FontSize*sc.Scale, c, opacity)
		return
	}

	pathF, ok := pathFuncs[el.Type]
	if !ok {
		return
	}
	fillColor, willFill := ParseColor(el.BackgroundColor)
	if el.Type == excalidraw.Freedraw { // open polylines are not filled
		willFill = false
	}
	strokeColor, willStroke := ParseColor(el.StrokeColor)
	if el.StrokeWidth <= 0 {
		willStroke = false
	}

	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if filler != nil { // nil color disable filling
		filler.Clear()
		pathF(sc, el, filler)
		filler.SetColor(fillColor, opacity)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		stroker.SetLineWidth(fToFixed(el.StrokeWidth * sc.Scale))
		pathF(sc, el, stroker)
		stroker.SetColor(strokeColor, opacity)
		stroker.Draw()
	}
}

func rectanglePath(sc Scene, el excalidraw.Element, dr Drawer) {
	dr.Start(sc.toFixed(el.X, el.Y))
	dr.Line(sc.toFixed(el.X+el.Width, el.Y))
	dr.Line(sc.toFixed(el.X+el.Width, el.Y+el.Height))
	dr.Line(sc.toFixed(el.X, el.Y+el.Height))
	dr.Stop(true)
}

// kappa is the distance to the control points of the cubic
// approximating a quarter of the unit circle.
var kappa = 4 * (math.Sqrt2 - 1) / 3

func ellipsePath(sc Scene, el excalidraw.Element, dr Drawer) {
	rx, ry := el.Width/2, el.Height/2
	cx, cy := el.X+rx, el.Y+ry
	kx, ky := rx*kappa, ry*kappa

	dr.Start(sc.toFixed(cx+rx, cy))
	dr.CubeBezier(sc.toFixed(cx+rx, cy+ky), sc.toFixed(cx+kx, cy+ry), sc.toFixed(cx, cy+ry))
	dr.CubeBezier(sc.toFixed(cx-kx, cy+ry), sc.toFixed(cx-rx, cy+ky), sc.toFixed(cx-rx, cy))
	dr.CubeBezier(sc.toFixed(cx-rx, cy-ky), sc.toFixed(cx-kx, cy-ry), sc.toFixed(cx, cy-ry))
	dr.CubeBezier(sc.toFixed(cx+kx, cy-ry), sc.toFixed(cx+rx, cy-ky), sc.toFixed(cx+rx, cy))
	dr.Stop(true)
}

func freedrawPath(sc Scene, el excalidraw.Element, dr Drawer) {
	if el.FreedrawData == nil || len(el.Points) == 0 {
		return
	}
	first := el.Points[0]
	dr.Start(sc.toFixed(el.X+first[0], el.Y+first[1]))
	for _, p := range el.Points[1:] {
		dr.Line(sc.toFixed(el.X+p[0], el.Y+p[1]))
	}
	dr.Stop(false)
}
