package svgdoc

import (
	"math"
	"strings"

	"github.com/beevik/etree"
	"github.com/tdewolff/parse/v2/strconv"
)

// None is the keyword disabling a paint attribute.
const None = "none"

// StringOr returns the value of the attribute `key`,
// or `dflt` when it is missing or empty.
func StringOr(e *etree.Element, key, dflt string) string {
	attr := e.SelectAttr(key)
	if attr == nil || attr.Value == "" {
		return dflt
	}
	return attr.Value
}

// ColorOr behaves like StringOr, and also replaces
// the keyword "none" by `none`.
func ColorOr(e *etree.Element, key, dflt, none string) string {
	v := StringOr(e, key, dflt)
	if v == None {
		return none
	}
	return v
}

// FloatOr returns the number starting the (trimmed) value of the
// attribute `key`, ignoring trailing units: "10px" is read as 10.
// `dflt` is returned when the attribute is missing or does not
// start with a finite number.
func FloatOr(e *etree.Element, key string, dflt float64) float64 {
	attr := e.SelectAttr(key)
	if attr == nil {
		return dflt
	}
	f, ok := parseLeadingFloat(attr.Value)
	if !ok {
		return dflt
	}
	return f
}

// NonZeroFloatOr is like FloatOr, but also returns `dflt`
// when the value is zero. It is used for the style attributes,
// which have a non zero default.
func NonZeroFloatOr(e *etree.Element, key string, dflt float64) float64 {
	if f := FloatOr(e, key, dflt); f != 0 {
		return f
	}
	return dflt
}

func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
