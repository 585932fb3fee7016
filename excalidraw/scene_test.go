package excalidraw

import (
	"bytes"
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(rd Randomizer) *Document {
	doc := NewDocument("")
	rect := NewElement(rd, Rectangle, 10, 20, 30, 40, 0)
	rect.BackgroundColor = "#ff0000"
	ellipse := NewElement(rd, Ellipse, 0, 0, 10, 10, 1)
	stroke := NewElement(rd, Freedraw, 5, 5, 10, 10, 2)
	stroke.FreedrawData = NewFreedrawData([]Point{{0, 0}, {10, 0}, {10, 10}})
	text := NewElement(rd, Text, 1, 2, 36, 24, 3)
	text.TextData = NewTextData("hello", 20, Virgil)
	doc.Elements = append(doc.Elements, rect, ellipse, stroke, text)
	return doc
}

func TestEnvelopeFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument("")))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"type", "version", "source", "elements", "appState", "files"}, keys)
	assert.JSONEq(t, `"excalidraw"`, string(raw["type"]))
	assert.JSONEq(t, `2`, string(raw["version"]))
	assert.JSONEq(t, `"`+DefaultSource+`"`, string(raw["source"]))
	assert.JSONEq(t, `[]`, string(raw["elements"]))
	assert.JSONEq(t, `{}`, string(raw["files"]))
}

func TestAppStateJSON(t *testing.T) {
	b, err := json.Marshal(DefaultAppState())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"gridSize": null,
		"viewBackgroundColor": "#ffffff",
		"currentItemStrokeColor": "#1e1e1e",
		"currentItemBackgroundColor": "transparent",
		"currentItemFillStyle": "solid",
		"currentItemStrokeWidth": 1,
		"currentItemStrokeStyle": "solid",
		"currentItemRoughness": 1,
		"currentItemOpacity": 100,
		"currentItemFontFamily": 1,
		"currentItemFontSize": 20,
		"currentItemTextAlign": "left",
		"currentItemStartArrowhead": null,
		"currentItemEndArrowhead": null,
		"scrollX": 0,
		"scrollY": 0,
		"zoom": {"value": 1},
		"currentItemRoundness": "round",
		"gridColor": {"Bold": "#C9C9C9", "Regular": "#EDEDED"},
		"currentStrokeOptions": null,
		"previousGridSize": null,
		"frameRendering": {"enabled": true, "clip": true, "name": true, "outline": true}
	}`, string(b))
}

func TestElementJSON(t *testing.T) {
	doc := sampleDocument(&scriptedRandomizer{})

	b, err := json.Marshal(doc.Elements[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "id000000", "type": "rectangle",
		"x": 10, "y": 20, "width": 30, "height": 40, "angle": 0,
		"strokeColor": "#1e1e1e", "backgroundColor": "#ff0000",
		"fillStyle": "solid", "strokeWidth": 1, "strokeStyle": "solid",
		"roughness": 1, "opacity": 100, "groupIds": [], "frameId": null,
		"index": "a0", "roundness": {"type": 1}, "seed": 1, "versionNonce": 2,
		"isDeleted": false, "boundElements": null, "updated": 1,
		"link": null, "locked": false
	}`, string(b))

	var fields map[string]json.RawMessage
	b, err = json.Marshal(doc.Elements[2])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.JSONEq(t, `null`, string(fields["roundness"]))
	assert.JSONEq(t, `[[0,0],[10,0],[10,10]]`, string(fields["points"]))
	assert.JSONEq(t, `[]`, string(fields["pressures"]))
	assert.JSONEq(t, `true`, string(fields["simulatePressure"]))
	assert.JSONEq(t, `null`, string(fields["lastCommittedPoint"]))
	assert.NotContains(t, fields, "text")

	fields = nil
	b, err = json.Marshal(doc.Elements[3])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.JSONEq(t, `"hello"`, string(fields["text"]))
	assert.JSONEq(t, `"hello"`, string(fields["originalText"]))
	assert.JSONEq(t, `1`, string(fields["fontFamily"]))
	assert.JSONEq(t, `"left"`, string(fields["textAlign"]))
	assert.JSONEq(t, `"top"`, string(fields["verticalAlign"]))
	assert.JSONEq(t, `null`, string(fields["containerId"]))
	assert.JSONEq(t, `1.25`, string(fields["lineHeight"]))
	assert.JSONEq(t, `true`, string(fields["autoResize"]))
	assert.NotContains(t, fields, "points")
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDocument(NewRandSource(rand.New(rand.NewSource(42))))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("{not json")))
	assert.Error(t, err)
}

func TestParseFontFamily(t *testing.T) {
	assert.Equal(t, Virgil, ParseFontFamily("Virgil"))
	assert.Equal(t, Cascadia, ParseFontFamily("Cascadia"))
	assert.Equal(t, OtherFont, ParseFontFamily("Helvetica"))
	assert.Equal(t, OtherFont, ParseFontFamily(""))
}

func TestOpacity(t *testing.T) {
	for _, test := range []struct {
		in       float64
		expected int
	}{
		{1, 100}, {0, 0}, {0.5, 50}, {0.126, 13}, {0.004, 0}, {1.5, 100}, {-1, 0},
	} {
		assert.Equal(t, test.expected, Opacity(test.in), "opacity %g", test.in)
	}
}

func TestIndexLabel(t *testing.T) {
	assert.Equal(t, "a0", IndexLabel(0))
	assert.Equal(t, "a12", IndexLabel(12))
}

func TestElementFinite(t *testing.T) {
	doc := sampleDocument(&scriptedRandomizer{})
	for _, el := range doc.Elements {
		assert.True(t, el.Finite(), el.Type)
	}

	rect := doc.Elements[0]
	rect.Width = math.Inf(1)
	assert.False(t, rect.Finite())

	stroke := doc.Elements[2]
	stroke.FreedrawData = NewFreedrawData([]Point{{0, 0}, {math.NaN(), 1}})
	assert.False(t, stroke.Finite())

	text := doc.Elements[3]
	text.TextData = NewTextData("a", math.Inf(-1), Virgil)
	assert.False(t, text.Finite())
}
