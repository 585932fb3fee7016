package svgpdf

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// segment is a piece of path whose extent is the
// extent of its values at the critical parameters.
type segment interface {
	// criticalPoints returns the parameters in [0, 1] zeroing the
	// derivative, for each axis
	criticalPoints() (tX, tY []float64)
	// evaluate returns the point at parameter t
	evaluate(t float64) (x, y float64)
}

type line [2]fixed.Point26_6

func (line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluate(t float64) (x, y float64) {
	p0x, p0y := fixedTof(l[0])
	p1x, p1y := fixedTof(l[1])
	return (p1x-p0x)*t + p0x, (p1y-p0y)*t + p0y
}

type cubicBezier [4]fixed.Point26_6

// x(t) = At^3 + Bt^2 + Ct + D, with
// A = p3 - 3p2 + 3p1 - p0
// B = 3p2 - 6p1 + 3p0
// C = 3p1 - 3p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// quadraticRoots returns the real roots of at^2 + bt + c.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	tX = quadraticRoots(cubicDerivative(p0x, p1x, p2x, p3x))
	tY = quadraticRoots(cubicDerivative(p0y, p1y, p2y, p3y))
	return tX, tY
}

func (cu cubicBezier) evaluate(t float64) (x, y float64) {
	p0x, p0y := fixedTof(cu[0])
	p1x, p1y := fixedTof(cu[1])
	p2x, p2y := fixedTof(cu[2])
	p3x, p3y := fixedTof(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// segmentBounds returns the tight bounding box of `seg`.
func segmentBounds(seg segment) fixed.Rectangle26_6 {
	tX, tY := seg.criticalPoints()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range append(append(tX, 0, 1), tY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := seg.evaluate(t)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return fixed.Rectangle26_6{Min: fToFixed(minX, minY), Max: fToFixed(maxX, maxY)}
}
