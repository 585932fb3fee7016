package excalidraw

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	errNotAnObject = errors.New("excalidraw: scene is not a JSON object")
	errWrongType   = errors.New("excalidraw: wrong scene type")
	errMissing     = errors.New("excalidraw: missing required fields")
)

var (
	requiredFields        = []string{"type", "version", "elements", "appState"}
	requiredElementFields = []string{"id", "type", "x", "y", "width", "height"}
)

// ElementWarning reports an element missing some required fields,
// or whose required fields have the wrong JSON type.
type ElementWarning struct {
	Index     int
	Missing   []string
	Malformed []string
}

func (w ElementWarning) String() string {
	var parts []string
	if len(w.Missing) != 0 {
		parts = append(parts, "missing fields: "+strings.Join(w.Missing, ", "))
	}
	if len(w.Malformed) != 0 {
		parts = append(parts, "malformed fields: "+strings.Join(w.Malformed, ", "))
	}
	return fmt.Sprintf("element %d %s", w.Index, strings.Join(parts, "; "))
}

// ElementSummary is the short description of a valid element.
type ElementSummary struct {
	Index int
	Type  string
	X, Y  float64
}

// Report is the result of a successful validation.
type Report struct {
	Version  int
	Elements []ElementSummary
	Warnings []ElementWarning
}

// Validate checks the structure of a scene file: the envelope must be
// complete and typed "excalidraw", otherwise an error is returned.
// Incomplete elements only produce warnings.
func Validate(data []byte) (*Report, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", errNotAnObject, err)
	}
	var missing []string
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) != 0 {
		return nil, fmt.Errorf("%w: %s", errMissing, strings.Join(missing, ", "))
	}

	var typ string
	if err := json.Unmarshal(raw["type"], &typ); err != nil || typ != formatType {
		return nil, fmt.Errorf("%w: expected %q, got %s", errWrongType, formatType, raw["type"])
	}

	var report Report
	if err := json.Unmarshal(raw["version"], &report.Version); err != nil {
		return nil, fmt.Errorf("excalidraw: invalid version: %s", err)
	}
	var elements []map[string]json.RawMessage
	if err := json.Unmarshal(raw["elements"], &elements); err != nil {
		return nil, fmt.Errorf("excalidraw: invalid elements: %s", err)
	}
	for i, el := range elements {
		var missing []string
		for _, field := range requiredElementFields {
			if _, ok := el[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) != 0 {
			report.Warnings = append(report.Warnings, ElementWarning{Index: i, Missing: missing})
			continue
		}
		var (
			summary       = ElementSummary{Index: i}
			id            string
			width, height float64
			malformed     []string
		)
		for _, field := range []struct {
			name string
			dst  interface{}
		}{
			{"id", &id},
			{"type", &summary.Type},
			{"x", &summary.X},
			{"y", &summary.Y},
			{"width", &width},
			{"height", &height},
		} {
			if err := json.Unmarshal(el[field.name], field.dst); err != nil {
				malformed = append(malformed, field.name)
			}
		}
		if len(malformed) != 0 {
			report.Warnings = append(report.Warnings, ElementWarning{Index: i, Malformed: malformed})
			continue
		}
		report.Elements = append(report.Elements, summary)
	}
	return &report, nil
}

// ElementCount returns the number of elements found, complete or not.
func (r *Report) ElementCount() int { return len(r.Elements) + len(r.Warnings) }

// sizeTolerance is the accepted difference between the
// points span and the element size.
const sizeTolerance = 0.1

// Quality grades the level of detail of a freedraw element.
type Quality string

const (
	QualityPoor      Quality = "Poor - Too few points"
	QualityGood      Quality = "Good"
	QualityVeryGood  Quality = "Very Good - Good detail"
	QualityExcellent Quality = "Excellent - High detail"
)

func gradeQuality(points int) Quality {
	switch {
	case points < 5:
		return QualityPoor
	case points > 100:
		return QualityExcellent
	case points > 50:
		return QualityVeryGood
	default:
		return QualityGood
	}
}

// Integrity is the result of CheckFreedraw.
type Integrity struct {
	Points             int
	MinX, MinY         float64
	MaxX, MaxY         float64
	SizeConsistent     bool
	StartsAtOrigin     bool
	Quality            Quality
	AbsoluteFirstPoint Point
}

// OK is true when both geometric checks pass.
func (in Integrity) OK() bool { return in.SizeConsistent && in.StartsAtOrigin }

var errNotFreedraw = errors.New("excalidraw: not a freedraw element")

// CheckFreedraw verifies that the points of a freedraw element are
// expressed relative to its origin and span exactly its size.
func CheckFreedraw(el Element) (Integrity, error) {
	if el.Type != Freedraw || el.FreedrawData == nil {
		return Integrity{}, errNotFreedraw
	}
	in := Integrity{Points: len(el.Points), Quality: gradeQuality(len(el.Points))}
	if len(el.Points) == 0 {
		return in, nil
	}
	in.MinX, in.MinY = math.Inf(1), math.Inf(1)
	in.MaxX, in.MaxY = math.Inf(-1), math.Inf(-1)
	for _, p := range el.Points {
		in.MinX = math.Min(in.MinX, p[0])
		in.MinY = math.Min(in.MinY, p[1])
		in.MaxX = math.Max(in.MaxX, p[0])
		in.MaxY = math.Max(in.MaxY, p[1])
	}
	in.SizeConsistent = math.Abs(in.MaxX-in.MinX-el.Width) < sizeTolerance &&
		math.Abs(in.MaxY-in.MinY-el.Height) < sizeTolerance
	in.StartsAtOrigin = in.MinX == 0 && in.MinY == 0
	in.AbsoluteFirstPoint = Point{el.Points[0][0] + el.X, el.Points[0][1] + el.Y}
	return in, nil
}

// CountByType returns the number of elements of each type, with
// the types sorted by name.
func CountByType(doc *Document) ([]Type, map[Type]int) {
	counts := make(map[Type]int)
	var types []Type
	for _, el := range doc.Elements {
		if counts[el.Type] == 0 {
			types = append(types, el.Type)
		}
		counts[el.Type]++
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types, counts
}
