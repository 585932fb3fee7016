// Implements a raster backend to render converted scenes,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
	"github.com/benoitkugler/svg2excalidraw/svgdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// MaxSize is the maximum width or height, in pixels,
// of a rendered image.
const MaxSize = 1 << 14

var errTooLarge = errors.New("scene is too large to be rasterized")

// miter limit, only used when the join mode is changed
const miterLimit = 4 * 64

type Renderer struct {
	img    draw.Image
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer drawing into `img`.
// If scanner is nil, a rasterx.ScannerGV targeting `img` is used.
func NewRenderer(img draw.Image, scanner rasterx.Scanner) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, b)
	}
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.NRGBA, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.NRGBA, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetLineWidth(width fixed.Int26_6) {
	s.Dasher.SetStroke(width, miterLimit, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Drawer, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// DrawText uses a fixed size bitmap font: `size` is ignored.
func (rd *Renderer) DrawText(text string, origin fixed.Point26_6, size float64, c color.NRGBA, opacity float64) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(rasterx.ApplyOpacity(c, opacity)),
		Face: face,
		Dot:  fixed.Point26_6{X: origin.X, Y: origin.Y + fixed.I(face.Ascent)},
	}
	d.DrawString(text)
}

// RasterDocument renders the scene into a new image, whose size
// is the extent of the elements (plus a margin) times `scale`.
// The image is first painted with the scene background color.
func RasterDocument(doc *excalidraw.Document, scale float64) (*image.RGBA, error) {
	sc := svgdraw.Layout(doc, scale)
	fw, fh := sc.Size()
	w, h := int(math.Ceil(fw)), int(math.Ceil(fh))
	if w > MaxSize || h > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d pixels", errTooLarge, w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg, ok := svgdraw.ParseColor(doc.AppState.ViewBackgroundColor); ok {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	sc.Draw(NewRenderer(img, nil))
	return img, nil
}

// WritePNG renders the scene and encodes it to `w`.
func WritePNG(w io.Writer, doc *excalidraw.Document, scale float64) error {
	img, err := RasterDocument(doc, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
