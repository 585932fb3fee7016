package svgdraw

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads a color as written in element styles:
// #rgb, #rrggbb, #rrggbbaa or a SVG color name.
// `ok` is false for invisible or invalid colors.
func ParseColor(s string) (c color.NRGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return c, false
	}
	if strings.HasPrefix(s, "#") {
		c, ok = parseHex(s[1:])
	} else {
		var named color.RGBA
		named, ok = colornames.Map[s]
		c = color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}
	}
	if c.A == 0 {
		return c, false
	}
	return c, ok
}

func parseHex(x string) (color.NRGBA, bool) {
	switch len(x) {
	case 3:
		v, err := strconv.ParseUint(x, 16, 16)
		if err != nil {
			return color.NRGBA{}, false
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b, A: 0xff}, true
	case 6:
		v, err := strconv.ParseUint(x, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	case 8:
		v, err := strconv.ParseUint(x, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
	}
	return color.NRGBA{}, false
}
