package render

// Canvas layout constants, in chart coordinate pixels.
const (
	canvasMargin = 24.0
	panelGap     = 24.0
	titleSize    = 18.0
	noteSize     = 12.0
	headerBand   = 52.0
)

// Background and text colors per mode. The dark background matches the
// PNG export background so SVG and raster output agree.
const (
	lightBackground = "#ffffff"
	lightTitleColor = "#1f2937"
	lightNoteColor  = "#6b7280"

	darkBackground = "#111827"
	darkTitleColor = "#f3f4f6"
	darkNoteColor  = "#9ca3af"
)

// CanvasOptions configures the side-by-side composition.
type CanvasOptions struct {
	// DarkMode switches the background and heading colors.
	DarkMode bool
}

// Panel positions one scene on the canvas.
type Panel struct {
	// Scene is the chart drawn in this panel.
	Scene *Scene

	// X, Y is the top-left corner of the chart box on the canvas.
	X, Y float64

	// TitleX, TitleY center the panel title.
	TitleX, TitleY float64

	// NoteX, NoteY center the panel note. Unused when the note is empty.
	NoteX, NoteY float64
}

// Canvas is the complete two-chart board ready for a back-end.
type Canvas struct {
	Width, Height float64
	Background    string
	TitleColor    string
	NoteColor     string
	TitleSize     float64
	NoteSize      float64
	Panels        []*Panel
}

// Compose lays out two scenes side by side with a shared margin and a gap
// between them, reserving a header band per panel for title and note.
func Compose(left, right *Scene, opts CanvasOptions) *Canvas {
	c := &Canvas{
		Width:      canvasMargin*2 + left.Width + panelGap + right.Width,
		Height:     canvasMargin*2 + headerBand + maxf(left.Height, right.Height),
		Background: lightBackground,
		TitleColor: lightTitleColor,
		NoteColor:  lightNoteColor,
		TitleSize:  titleSize,
		NoteSize:   noteSize,
	}
	if opts.DarkMode {
		c.Background = darkBackground
		c.TitleColor = darkTitleColor
		c.NoteColor = darkNoteColor
	}

	x := canvasMargin
	for _, scene := range []*Scene{left, right} {
		c.Panels = append(c.Panels, &Panel{
			Scene:  scene,
			X:      x,
			Y:      canvasMargin + headerBand,
			TitleX: x + scene.Width/2,
			TitleY: canvasMargin + titleSize,
			NoteX:  x + scene.Width/2,
			NoteY:  canvasMargin + titleSize + noteSize + 8,
		})
		x += scene.Width + panelGap
	}

	return c
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
