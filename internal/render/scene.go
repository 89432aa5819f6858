package render

import (
	"strconv"

	"github.com/duochart/duochart/internal/layout"
	"github.com/duochart/duochart/internal/palette"
)

// Label text colors. Each bubble picks one against its own fill: the
// generated ramp mostly stays below the luminance threshold and gets
// light text, while bright custom colors flip to dark text.
const (
	lightTextColor = "#f5f5f4"
	darkTextColor  = "#1c1917"

	textLuminanceThreshold = 0.5
)

// SceneOptions configures scene construction for one chart.
type SceneOptions struct {
	// Width and Height are the chart box dimensions the leaves were
	// packed into.
	Width, Height float64

	// Title is the metric label shown above the chart.
	Title string

	// Note is the annotation shown under the title. Empty hides it.
	Note string

	// ValueSuffix is appended to formatted value labels, typically "%".
	ValueSuffix string
}

// Bubble is one drawable circle with its fitted label. It is the fully
// resolved form of a layout leaf: no type ambiguity survives into the
// back-ends.
type Bubble struct {
	// X, Y, R are the circle geometry in chart-box coordinates.
	X, Y, R float64

	// Fill is the bubble color.
	Fill string

	// Name and Value are the underlying datum.
	Name  string
	Value float64

	// TextColor is the label color chosen for contrast against Fill.
	TextColor string

	// ValueText is the formatted value label, e.g. "21%".
	ValueText string

	// Label is the fitted in-circle text layout.
	Label layout.Label
}

// Scene is everything needed to draw one chart: geometry and text, no
// retained handles to any rendering surface.
type Scene struct {
	Width, Height float64
	Title         string
	Note          string
	Bubbles       []Bubble
}

// BuildScene resolves leaves, palette, and label fitting into a Scene.
//
// Palette index i pairs with leaf i, cycling when there are more leaves
// than palette entries. A nil measurer falls back to the approximate rune
// measurer, which the SVG-only path uses.
func BuildScene(leaves []layout.Leaf, colors []string, m layout.Measurer, opts SceneOptions) *Scene {
	scene := &Scene{
		Width:   opts.Width,
		Height:  opts.Height,
		Title:   opts.Title,
		Note:    opts.Note,
		Bubbles: make([]Bubble, 0, len(leaves)),
	}

	for i, leaf := range leaves {
		fill := ""
		if len(colors) > 0 {
			fill = colors[i%len(colors)]
		}
		scene.Bubbles = append(scene.Bubbles, Bubble{
			X:         leaf.X,
			Y:         leaf.Y,
			R:         leaf.R,
			Fill:      fill,
			Name:      leaf.Datum.Name,
			Value:     leaf.Datum.Value,
			TextColor: textColorFor(fill),
			ValueText: FormatValue(leaf.Datum.Value, opts.ValueSuffix),
			Label:     layout.FitLabel(leaf.Datum.Name, leaf.R, m),
		})
	}

	return scene
}

// textColorFor picks the label color with enough contrast over the fill.
// Unparseable fills keep the light default.
func textColorFor(fill string) string {
	if lum, ok := palette.Luminance(fill); ok && lum > textLuminanceThreshold {
		return darkTextColor
	}
	return lightTextColor
}

// FormatValue renders a metric value with the shortest exact decimal form
// plus the configured suffix.
func FormatValue(v float64, suffix string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + suffix
}
