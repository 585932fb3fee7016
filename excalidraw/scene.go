// Package excalidraw defines the Excalidraw scene format: the document
// envelope, its elements and the view state, as written to .excalidraw.json
// files.
package excalidraw

import (
	"encoding/json"
	"io"
)

// DefaultSource is the provenance written in the `source` field.
const DefaultSource = "https://github.com/your-username/svg-to-excelidraw-bin"

const (
	formatType    = "excalidraw"
	formatVersion = 2
)

// Document is the top level object of a scene file.
type Document struct {
	Type     string              `json:"type"`
	Version  int                 `json:"version"`
	Source   string              `json:"source"`
	Elements []Element           `json:"elements"`
	AppState AppState            `json:"appState"`
	Files    map[string]struct{} `json:"files"`
}

// NewDocument returns an empty scene, with the default view state.
func NewDocument(source string) *Document {
	if source == "" {
		source = DefaultSource
	}
	return &Document{
		Type:     formatType,
		Version:  formatVersion,
		Source:   source,
		Elements: []Element{},
		AppState: DefaultAppState(),
		Files:    map[string]struct{}{},
	}
}

// Zoom is the zoom level of the view.
type Zoom struct {
	Value float64 `json:"value"`
}

// GridColor holds the colors of the grid lines.
type GridColor struct {
	Bold    string `json:"Bold"`
	Regular string `json:"Regular"`
}

// FrameRendering toggles the frame decorations.
type FrameRendering struct {
	Enabled bool `json:"enabled"`
	Clip    bool `json:"clip"`
	Name    bool `json:"name"`
	Outline bool `json:"outline"`
}

// AppState is the view state saved with the scene.
// Pointer fields are always null in converted scenes.
type AppState struct {
	GridSize                   *int            `json:"gridSize"`
	ViewBackgroundColor        string          `json:"viewBackgroundColor"`
	CurrentItemStrokeColor     string          `json:"currentItemStrokeColor"`
	CurrentItemBackgroundColor string          `json:"currentItemBackgroundColor"`
	CurrentItemFillStyle       string          `json:"currentItemFillStyle"`
	CurrentItemStrokeWidth     float64         `json:"currentItemStrokeWidth"`
	CurrentItemStrokeStyle     string          `json:"currentItemStrokeStyle"`
	CurrentItemRoughness       int             `json:"currentItemRoughness"`
	CurrentItemOpacity         int             `json:"currentItemOpacity"`
	CurrentItemFontFamily      FontFamily      `json:"currentItemFontFamily"`
	CurrentItemFontSize        float64         `json:"currentItemFontSize"`
	CurrentItemTextAlign       string          `json:"currentItemTextAlign"`
	CurrentItemStartArrowhead  *string         `json:"currentItemStartArrowhead"`
	CurrentItemEndArrowhead    *string         `json:"currentItemEndArrowhead"`
	ScrollX                    float64         `json:"scrollX"`
	ScrollY                    float64         `json:"scrollY"`
	Zoom                       Zoom            `json:"zoom"`
	CurrentItemRoundness       string          `json:"currentItemRoundness"`
	GridColor                  GridColor       `json:"gridColor"`
	CurrentStrokeOptions       json.RawMessage `json:"currentStrokeOptions"`
	PreviousGridSize           *int            `json:"previousGridSize"`
	FrameRendering             FrameRendering  `json:"frameRendering"`
}

// DefaultAppState returns the view state used for converted scenes.
func DefaultAppState() AppState {
	return AppState{
		ViewBackgroundColor:        "#ffffff",
		CurrentItemStrokeColor:     DefaultStrokeColor,
		CurrentItemBackgroundColor: Transparent,
		CurrentItemFillStyle:       "solid",
		CurrentItemStrokeWidth:     1,
		CurrentItemStrokeStyle:     "solid",
		CurrentItemRoughness:       1,
		CurrentItemOpacity:         100,
		CurrentItemFontFamily:      Virgil,
		CurrentItemFontSize:        20,
		CurrentItemTextAlign:       "left",
		Zoom:                       Zoom{Value: 1},
		CurrentItemRoundness:       "round",
		GridColor:                  GridColor{Bold: "#C9C9C9", Regular: "#EDEDED"},
		CurrentStrokeOptions:       json.RawMessage("null"),
		FrameRendering:             FrameRendering{Enabled: true, Clip: true, Name: true, Outline: true},
	}
}

// Encode writes the scene as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Decode reads a scene written by Encode (or by Excalidraw).
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
