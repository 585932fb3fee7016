package excalidraw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEncoded(t *testing.T) {
	doc := sampleDocument(&scriptedRandomizer{})
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	report, err := Validate(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Version)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 4, report.ElementCount())
	assert.Equal(t, ElementSummary{Index: 0, Type: "rectangle", X: 10, Y: 20}, report.Elements[0])
	assert.Equal(t, "text", report.Elements[3].Type)
}

func TestValidateErrors(t *testing.T) {
	for _, test := range []struct {
		data     string
		expected error
	}{
		{`[1, 2]`, errNotAnObject},
		{`not json`, errNotAnObject},
		{`{"type": "excalidraw", "version": 2, "elements": []}`, errMissing},
		{`{"type": "other", "version": 2, "elements": [], "appState": {}}`, errWrongType},
		{`{"type": 4, "version": 2, "elements": [], "appState": {}}`, errWrongType},
	} {
		_, err := Validate([]byte(test.data))
		assert.True(t, errors.Is(err, test.expected), "%s: %v", test.data, err)
	}
}

func TestValidateWarnings(t *testing.T) {
	data := `{"type": "excalidraw", "version": 2, "appState": {}, "elements": [
		{"id": "a", "type": "ellipse", "x": 1, "y": 2, "width": 3, "height": 4},
		{"id": "b", "type": "ellipse", "x": 1}
	]}`
	report, err := Validate([]byte(data))
	require.NoError(t, err)
	assert.Len(t, report.Elements, 1)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 1, report.Warnings[0].Index)
	assert.Equal(t, []string{"y", "width", "height"}, report.Warnings[0].Missing)
	assert.Equal(t, "element 1 missing fields: y, width, height", report.Warnings[0].String())
	assert.Equal(t, 2, report.ElementCount())
}

func TestValidateMalformedFields(t *testing.T) {
	data := `{"type": "excalidraw", "version": 2, "appState": {}, "elements": [
		{"id": "a", "type": "ellipse", "x": "10", "y": 2, "width": 3, "height": [4]},
		{"id": 7, "type": "rectangle", "x": 1, "y": 2, "width": 3, "height": 4},
		{"id": "c", "type": "text", "x": 1.5, "y": -2, "width": 3, "height": 4}
	]}`
	report, err := Validate([]byte(data))
	require.NoError(t, err)
	require.Len(t, report.Warnings, 2)
	assert.Equal(t, []string{"x", "height"}, report.Warnings[0].Malformed)
	assert.Empty(t, report.Warnings[0].Missing)
	assert.Equal(t, "element 0 malformed fields: x, height", report.Warnings[0].String())
	assert.Equal(t, "element 1 malformed fields: id", report.Warnings[1].String())

	require.Len(t, report.Elements, 1)
	assert.Equal(t, ElementSummary{Index: 2, Type: "text", X: 1.5, Y: -2}, report.Elements[0])
	assert.Equal(t, 3, report.ElementCount())
}

func freedraw(x, y, w, h float64, points ...Point) Element {
	el := NewElement(&scriptedRandomizer{}, Freedraw, x, y, w, h, 0)
	el.FreedrawData = NewFreedrawData(points)
	return el
}

func TestCheckFreedraw(t *testing.T) {
	in, err := CheckFreedraw(freedraw(10, 20, 30, 40, Point{0, 40}, Point{30, 0}, Point{15, 10}))
	require.NoError(t, err)
	assert.True(t, in.OK())
	assert.Equal(t, 3, in.Points)
	assert.Equal(t, QualityPoor, in.Quality)
	assert.Equal(t, Point{10, 60}, in.AbsoluteFirstPoint)
	assert.Equal(t, 30., in.MaxX)
	assert.Equal(t, 40., in.MaxY)

	in, err = CheckFreedraw(freedraw(0, 0, 30, 40, Point{5, 5}, Point{35, 45}))
	require.NoError(t, err)
	assert.True(t, in.SizeConsistent)
	assert.False(t, in.StartsAtOrigin)

	in, err = CheckFreedraw(freedraw(0, 0, 10, 10, Point{0, 0}, Point{5, 5}))
	require.NoError(t, err)
	assert.False(t, in.SizeConsistent)
	assert.True(t, in.StartsAtOrigin)

	_, err = CheckFreedraw(NewElement(&scriptedRandomizer{}, Rectangle, 0, 0, 1, 1, 0))
	assert.Error(t, err)
}

func TestQualityGrades(t *testing.T) {
	assert.Equal(t, QualityPoor, gradeQuality(4))
	assert.Equal(t, QualityGood, gradeQuality(5))
	assert.Equal(t, QualityGood, gradeQuality(50))
	assert.Equal(t, QualityVeryGood, gradeQuality(51))
	assert.Equal(t, QualityExcellent, gradeQuality(101))
}

func TestCountByType(t *testing.T) {
	doc := sampleDocument(&scriptedRandomizer{})
	doc.Elements = append(doc.Elements, NewElement(&scriptedRandomizer{}, Rectangle, 0, 0, 1, 1, 4))
	types, counts := CountByType(doc)
	assert.Equal(t, []Type{Ellipse, Freedraw, Rectangle, Text}, types)
	assert.Equal(t, 2, counts[Rectangle])
	assert.Equal(t, 1, counts[Text])
}
