package excalidraw

import (
	"fmt"
	"math"
)

// Type is the kind of an element.
type Type string

const (
	Rectangle Type = "rectangle"
	Ellipse   Type = "ellipse"
	Freedraw  Type = "freedraw"
	Text      Type = "text"
)

// Style defaults shared by the converter and the view state.
const (
	DefaultStrokeColor = "#1e1e1e"
	Transparent        = "transparent"
)

// FontFamily enumerates the fonts known to Excalidraw.
type FontFamily int

const (
	Virgil   FontFamily = 1
	Cascadia FontFamily = 2
	// OtherFont is used for every family which is not
	// Virgil or Cascadia.
	OtherFont FontFamily = 3
)

// ParseFontFamily maps a font-family attribute value to its enumeration.
func ParseFontFamily(family string) FontFamily {
	switch family {
	case "Virgil":
		return Virgil
	case "Cascadia":
		return Cascadia
	default:
		return OtherFont
	}
}

// Point is a position relative to the element origin, written as [x, y].
type Point [2]float64

// Roundness describes corner rounding. Only rectangles carry one.
type Roundness struct {
	Type int `json:"type"`
}

// BoundElement references an element attached to another one.
type BoundElement struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`
}

// Element is one drawing record. The fields of FreedrawData and TextData
// are only written for the corresponding types.
type Element struct {
	ID              string         `json:"id"`
	Type            Type           `json:"type"`
	X               float64        `json:"x"`
	Y               float64        `json:"y"`
	Width           float64        `json:"width"`
	Height          float64        `json:"height"`
	Angle           float64        `json:"angle"`
	StrokeColor     string         `json:"strokeColor"`
	BackgroundColor string         `json:"backgroundColor"`
	FillStyle       string         `json:"fillStyle"`
	StrokeWidth     float64        `json:"strokeWidth"`
	StrokeStyle     string         `json:"strokeStyle"`
	Roughness       int            `json:"roughness"`
	Opacity         int            `json:"opacity"`
	GroupIDs        []string       `json:"groupIds"`
	FrameID         *string        `json:"frameId"`
	Index           string         `json:"index"`
	Roundness       *Roundness     `json:"roundness"`
	Seed            uint32         `json:"seed"`
	VersionNonce    uint32         `json:"versionNonce"`
	IsDeleted       bool           `json:"isDeleted"`
	BoundElements   []BoundElement `json:"boundElements"`
	Updated         int64          `json:"updated"`
	Link            *string        `json:"link"`
	Locked          bool           `json:"locked"`

	*FreedrawData
	*TextData
}

// FreedrawData is the payload of freedraw elements.
type FreedrawData struct {
	Points             []Point   `json:"points"`
	Pressures          []float64 `json:"pressures"`
	SimulatePressure   bool      `json:"simulatePressure"`
	LastCommittedPoint *Point    `json:"lastCommittedPoint"`
}

// TextData is the payload of text elements.
type TextData struct {
	Text          string     `json:"text"`
	FontSize      float64    `json:"fontSize"`
	FontFamily    FontFamily `json:"fontFamily"`
	TextAlign     string     `json:"textAlign"`
	VerticalAlign string     `json:"verticalAlign"`
	ContainerID   *string    `json:"containerId"`
	OriginalText  string     `json:"originalText"`
	AutoResize    bool       `json:"autoResize"`
	LineHeight    float64    `json:"lineHeight"`
}

// IndexLabel returns the fractional index label of the n-th element.
func IndexLabel(n int) string { return fmt.Sprintf("a%d", n) }

// NewElement returns an element with the base style and fresh
// identifier and seeds drawn from `rd`. `index` is the z-order
// position of the element in its document.
func NewElement(rd Randomizer, typ Type, x, y, width, height float64, index int) Element {
	el := Element{
		ID:              rd.NextID(),
		Type:            typ,
		X:               x,
		Y:               y,
		Width:           width,
		Height:          height,
		StrokeColor:     DefaultStrokeColor,
		BackgroundColor: Transparent,
		FillStyle:       "solid",
		StrokeWidth:     1,
		StrokeStyle:     "solid",
		Roughness:       1,
		Opacity:         100,
		GroupIDs:        []string{},
		Index:           IndexLabel(index),
		Seed:            rd.NextSeed(),
		VersionNonce:    rd.NextSeed(),
		Updated:         1,
	}
	if typ == Rectangle {
		el.Roundness = &Roundness{Type: 1}
	}
	return el
}

// NewFreedrawData returns a payload for points already
// expressed relative to the element origin.
func NewFreedrawData(points []Point) *FreedrawData {
	return &FreedrawData{
		Points:           points,
		Pressures:        []float64{},
		SimulatePressure: true,
	}
}

// NewTextData returns a left/top aligned, auto resized text payload.
func NewTextData(text string, fontSize float64, family FontFamily) *TextData {
	return &TextData{
		Text:          text,
		FontSize:      fontSize,
		FontFamily:    family,
		TextAlign:     "left",
		VerticalAlign: "top",
		OriginalText:  text,
		AutoResize:    true,
		LineHeight:    1.25,
	}
}

// Opacity converts an opacity in [0, 1] to the [0, 100] integer scale,
// clamping out of range values.
func Opacity(f float64) int {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return int(f*100 + 0.5)
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// Finite returns false if one of the coordinates or sizes of `el`
// is infinite or NaN, which JSON can't represent.
func (el Element) Finite() bool {
	for _, f := range [...]float64{el.X, el.Y, el.Width, el.Height, el.Angle, el.StrokeWidth} {
		if !isFinite(f) {
			return false
		}
	}
	if el.TextData != nil && !(isFinite(el.FontSize) && isFinite(el.LineHeight)) {
		return false
	}
	if el.FreedrawData != nil {
		for _, p := range el.Points {
			if !(isFinite(p[0]) && isFinite(p[1])) {
				return false
			}
		}
	}
	return true
}
