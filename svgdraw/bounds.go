package svgdraw

import (
	"math"

	"github.com/benoitkugler/svg2excalidraw/excalidraw"
)

// Bounds defines a bounding box, such as a viewport
// or an element extent.
type Bounds struct{ X, Y, W, H float64 }

// Union returns the smallest box containing `b` and `other`.
func (b Bounds) Union(other Bounds) Bounds {
	minX, minY := math.Min(b.X, other.X), math.Min(b.Y, other.Y)
	maxX, maxY := math.Max(b.X+b.W, other.X+other.W), math.Max(b.Y+b.H, other.Y+other.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// ElementBounds returns the extent of `el`. Negative sizes
// are normalized; freedraw elements use their points.
func ElementBounds(el excalidraw.Element) Bounds {
	if el.Type == excalidraw.Freedraw && el.FreedrawData != nil && len(el.Points) != 0 {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range el.Points {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
		return Bounds{X: el.X + minX, Y: el.Y + minY, W: maxX - minX, H: maxY - minY}
	}
	b := Bounds{X: el.X, Y: el.Y, W: el.Width, H: el.Height}
	if b.W < 0 {
		b.X, b.W = b.X+b.W, -b.W
	}
	if b.H < 0 {
		b.Y, b.H = b.Y+b.H, -b.H
	}
	return b
}

// DocumentBounds returns the union of the extents of
// the visible elements, or an empty box at the origin.
func DocumentBounds(doc *excalidraw.Document) Bounds {
	var (
		out   Bounds
		found bool
	)
	for _, el := range doc.Elements {
		if el.IsDeleted {
			continue
		}
		b := ElementBounds(el)
		if !found {
			out, found = b, true
			continue
		}
		out = out.Union(b)
	}
	return out
}
