// Implements an approximation of svg path data
// as a polyline: every drawing command contributes
// its end point, control points are discarded.
package svgpath

import "fmt"

// Point is an absolute position in document coordinates.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Kind groups the command letters by operation,
// ignoring the relative/absolute distinction.
type Kind uint8

const (
	Unknown Kind = iota
	MoveTo
	LineTo
	CubicTo
	QuadTo
	ArcTo
	Close
)

func (k Kind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CubicTo:
		return "CubicTo"
	case QuadTo:
		return "QuadTo"
	case ArcTo:
		return "ArcTo"
	case Close:
		return "Close"
	default:
		return "<unknown Kind>"
	}
}

// Arity returns the number of operands consumed by one
// repetition of the command. It is 0 for Close and for
// the commands which are not interpreted.
func (k Kind) Arity() int {
	switch k {
	case MoveTo, LineTo:
		return 2
	case CubicTo:
		return 6
	case QuadTo:
		return 4
	case ArcTo:
		return 7
	default:
		return 0
	}
}

var letterKinds = map[byte]Kind{
	'm': MoveTo,
	'l': LineTo,
	'c': CubicTo,
	'q': QuadTo,
	'a': ArcTo,
	'z': Close,
}

// Command is one run of the path data: a command letter
// and all the operands found up to the next letter.
// A run may hold several operand groups (implicit repetition).
type Command struct {
	Letter byte
	Args   []float64
}

// Relative is true for lower case letters.
func (c Command) Relative() bool { return 'a' <= c.Letter && c.Letter <= 'z' }

// Kind returns the operation of the command, or Unknown
// for letters which are tokenized but not interpreted (H, V, S, T).
func (c Command) Kind() Kind {
	letter := c.Letter
	if 'A' <= letter && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letterKinds[letter]
}

func (c Command) String() string {
	return fmt.Sprintf("%c%v", c.Letter, c.Args)
}
