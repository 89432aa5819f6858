package layout

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Font sizing constants for in-circle labels. Sizes are in pixels of the
// chart coordinate space.
const (
	// maxValueSize caps the value label so huge circles don't shout.
	maxValueSize = 24.0

	// valueDivisor scales the value label against the circle radius.
	valueDivisor = 2.5

	// maxNameSize caps the name label.
	maxNameSize = 11.0

	// nameDivisor scales the starting name size against the radius.
	nameDivisor = 4.5

	// nameAreaFactor trades per-character area against circle capacity
	// when shrinking long names: size <= r * sqrt(nameAreaFactor / chars).
	nameAreaFactor = 2.8

	// minNameSize is the legibility floor. Names that still don't fit at
	// this size will visually overflow small circles; that overflow is an
	// accepted approximation.
	minNameSize = 6.0

	// lineHeightFactor converts font size to line advance.
	lineHeightFactor = 1.1

	// chordUsage is the fraction of the horizontal chord usable for text,
	// approximating the inscribed rectangle of the circle.
	chordUsage = 0.9

	// clipFactor stops emitting lines past this fraction of the radius.
	clipFactor = 0.9
)

// Measurer reports the rendered width of a string at a font size.
// The PNG renderer supplies real font metrics; tests and the SVG path use
// the approximate RuneMeasurer.
type Measurer interface {
	Width(s string, size float64) float64
}

// RuneMeasurer approximates text width as a fixed fraction of the font
// size per rune. It is deliberately crude: proportional-font chart labels
// need only be roughly right, and the approximation keeps the SVG path
// free of font parsing.
type RuneMeasurer struct {
	// Ratio is the assumed advance per rune as a fraction of font size.
	// Zero means DefaultRuneRatio.
	Ratio float64
}

// DefaultRuneRatio approximates the average advance of a proportional
// sans-serif face.
const DefaultRuneRatio = 0.55

// Width implements Measurer.
func (m RuneMeasurer) Width(s string, size float64) float64 {
	ratio := m.Ratio
	if ratio == 0 {
		ratio = DefaultRuneRatio
	}
	return float64(utf8.RuneCountInString(s)) * size * ratio
}

// Line is one wrapped line of a name label. Y is the vertical offset of
// the line's center below the circle center.
type Line struct {
	Text string
	Y    float64
}

// Label is the fitted text layout for one bubble: a value label above
// center and zero or more wrapped name lines below it.
type Label struct {
	// ValueSize is the value label font size.
	ValueSize float64

	// ValueY is the vertical offset of the value label center, negative
	// meaning above the circle center.
	ValueY float64

	// NameSize is the font size shared by all name lines.
	NameSize float64

	// Lines are the visible wrapped name lines, top to bottom. Lines that
	// would land past the clip boundary are dropped.
	Lines []Line
}

// FitLabel computes the label layout for a circle of radius r.
//
// The value label is sized min(r/2.5, 24) and sits above center. The name
// starts at min(r/4.5, 11), shrinks for long names by the per-character
// area heuristic, and never drops below 6. Name text wraps greedily
// against 90% of the circle's chord at each line's offset; wrapping never
// re-shrinks the font once started.
func FitLabel(name string, r float64, m Measurer) Label {
	if m == nil {
		m = RuneMeasurer{}
	}

	lbl := Label{
		ValueSize: math.Min(r/valueDivisor, maxValueSize),
		NameSize:  math.Min(r/nameDivisor, maxNameSize),
	}
	lbl.ValueY = -lbl.ValueSize * 0.4

	chars := utf8.RuneCountInString(name)
	if chars > 0 {
		lbl.NameSize = math.Min(lbl.NameSize, r*math.Sqrt(nameAreaFactor/float64(chars)))
	}
	if lbl.NameSize < minNameSize {
		lbl.NameSize = minNameSize
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return lbl
	}

	lineHeight := lbl.NameSize * lineHeightFactor
	clip := clipFactor * r

	appendLine := func(text string, y float64) {
		if y <= clip {
			lbl.Lines = append(lbl.Lines, Line{Text: text, Y: y})
		}
	}

	y := lbl.NameSize
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.Width(candidate, lbl.NameSize) <= chordWidth(r, y) {
			current = candidate
			continue
		}
		// The word would overflow: emit the line and start a new one at
		// the next offset, where the chord budget is recomputed.
		appendLine(current, y)
		y += lineHeight
		current = word
	}
	appendLine(current, y)

	return lbl
}

// chordWidth returns the usable text width at vertical offset y from the
// circle center: 90% of the horizontal chord at that height.
func chordWidth(r, y float64) float64 {
	if y >= r {
		return 0
	}
	return 2 * math.Sqrt(r*r-y*y) * chordUsage
}
