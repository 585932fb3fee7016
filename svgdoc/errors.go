package svgdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedSource is returned for markup which is not well formed XML.
	ErrMalformedSource = errors.New("malformed svg source")
	// ErrMissingInput is returned when the markup has no root element.
	ErrMissingInput = errors.New("missing svg root element")
	// ErrUnsupportedElement is returned in StrictErrorMode for drawable
	// elements which are not converted.
	ErrUnsupportedElement = errors.New("unsupported svg element")
)

// ErrorMode is the for setting how the parser reacts to unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning about the unsupported element.
	WarnErrorMode
	// StrictErrorMode causes an error when an unsupported element is found.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<invalid error mode %d>", m)
	}
}

// ParseErrorMode is the inverse of String. The empty string
// maps to IgnoreErrorMode.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("invalid error mode %q (expected ignore, warn or strict)", s)
}

// MarshalText implements encoding.TextMarshaler, so that modes
// may be written in configuration files.
func (m ErrorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ErrorMode) UnmarshalText(text []byte) error {
	mode, err := ParseErrorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
