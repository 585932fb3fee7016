package svgpath

// pathCursor tracks the current point while the
// commands of one path are interpreted.
type pathCursor struct {
	curX, curY float64
	points     []Point
}

// moveTo updates the cursor with the end point (x, y) of
// `cmd` and records it.
func (c *pathCursor) moveTo(cmd Command, x, y float64) {
	if cmd.Relative() {
		c.curX += x
		c.curY += y
	} else {
		c.curX, c.curY = x, y
	}
	c.points = append(c.points, Point{X: c.curX, Y: c.curY})
}

// Interpret walks the commands, starting at the origin, and returns
// one point per complete operand group. For every kind the last pair
// of the group is the end point: curves and arcs are reduced to it.
// Close and unknown commands emit nothing; trailing operands which
// do not fill a group are ignored.
func Interpret(cmds []Command) []Point {
	var c pathCursor
	for _, cmd := range cmds {
		arity := cmd.Kind().Arity()
		if arity == 0 {
			continue
		}
		for i := 0; i+arity <= len(cmd.Args); i += arity {
			c.moveTo(cmd, cmd.Args[i+arity-2], cmd.Args[i+arity-1])
		}
	}
	return c.points
}

// Points parses and interprets the path data `d`.
// An empty `d` yields no points.
func Points(d string) []Point {
	return Interpret(Parse(d))
}

// BoundingBox returns the extent of a non empty point list.
func BoundingBox(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	return lo, hi
}
