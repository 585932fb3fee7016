// Implements the parsing of SVG markup into an element tree,
// with the attribute lookups needed to convert its shapes.
// Styles, transforms and definitions are not resolved: each
// element is read from its own attributes only.
package svgdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// DefaultSize is the width and height assumed when the root
// element does not provide them.
const DefaultSize = 200

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Document is a parsed SVG file.
type Document struct {
	Root *etree.Element

	Width, Height float64 // root width and height attributes, or DefaultSize
	ViewBox       Bounds
	HasViewBox    bool

	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here

	byTag map[string][]*etree.Element
}

// Elements returns the descendants of the root with the given tag,
// in document order.
func (doc *Document) Elements(tag string) []*etree.Element {
	return doc.byTag[tag]
}

type elementFunc func(c *docCursor, e *etree.Element) error

// elementFuncs holds the tags needing a special treatment
// while walking the tree. Other tags are only indexed.
var elementFuncs = map[string]elementFunc{
	"title":    titleF,
	"desc":     descF,
	"line":     unsupportedF,
	"polyline": unsupportedF,
	"polygon":  unsupportedF,
	"image":    unsupportedF,
	"use":      unsupportedF,
}

// docCursor is used while walking the tree
type docCursor struct {
	doc       *Document
	errorMode ErrorMode
	log       *zap.Logger
}

func titleF(c *docCursor, e *etree.Element) error {
	c.doc.Titles = append(c.doc.Titles, TextContent(e))
	return nil
}

func descF(c *docCursor, e *etree.Element) error {
	c.doc.Descriptions = append(c.doc.Descriptions, TextContent(e))
	return nil
}

func unsupportedF(c *docCursor, e *etree.Element) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%w: <%s>", ErrUnsupportedElement, e.Tag)
	case WarnErrorMode:
		c.log.Warn("cannot process svg element", zap.String("tag", e.Tag), zap.String("path", e.GetPath()))
	}
	return nil
}

func (c *docCursor) walk(parent *etree.Element) error {
	for _, child := range parent.ChildElements() {
		c.doc.byTag[child.Tag] = append(c.doc.byTag[child.Tag], child)
		if f, ok := elementFuncs[child.Tag]; ok {
			if err := f(c, child); err != nil {
				return err
			}
		}
		if err := c.walk(child); err != nil {
			return err
		}
	}
	return nil
}

func (c *docCursor) readRoot(root *etree.Element) {
	c.doc.Width = FloatOr(root, "width", DefaultSize)
	c.doc.Height = FloatOr(root, "height", DefaultSize)
	if attr := root.SelectAttr("viewBox"); attr != nil {
		nums := svgpath.ParseNumbers(attr.Value)
		if len(nums) == 4 {
			c.doc.ViewBox = Bounds{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}
			c.doc.HasViewBox = true
		} else if c.errorMode == WarnErrorMode {
			c.log.Warn("invalid viewBox", zap.String("viewBox", attr.Value))
		}
	}
}

// Parse reads SVG markup from `stream`. Non UTF-8 inputs are
// decoded according to their XML declaration.
// errMode determines if the parser ignores, errors out, or logs a warning
// (using `log`, which may be nil) when it finds an element which is
// drawable but not supported by the converter.
func Parse(stream io.Reader, errMode ErrorMode, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := tree.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSource, err)
	}
	roots := tree.ChildElements()
	switch len(roots) {
	case 0:
		return nil, ErrMissingInput
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d root elements", ErrMalformedSource, len(roots))
	}
	root := roots[0]

	doc := &Document{Root: root, byTag: make(map[string][]*etree.Element)}
	cursor := &docCursor{doc: doc, errorMode: errMode, log: log}
	cursor.readRoot(root)
	if err := cursor.walk(root); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string, errMode ErrorMode, log *zap.Logger) (*Document, error) {
	return Parse(strings.NewReader(markup), errMode, log)
}

// TextContent returns the concatenation of the character data
// of `e` and its descendants.
func TextContent(e *etree.Element) string {
	var b strings.Builder
	writeText(&b, e)
	return b.String()
}

func writeText(b *strings.Builder, e *etree.Element) {
	for _, tok := range e.Child {
		switch tok := tok.(type) {
		case *etree.CharData:
			b.WriteString(tok.Data)
		case *etree.Element:
			writeText(b, tok)
		}
	}
}
