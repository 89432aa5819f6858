package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fogleman/gg"
)

// ExportScale is the fixed raster resolution multiplier. Exports are
// always rendered at twice the chart coordinate size.
const ExportScale = 2.0

// WritePNG rasterizes the canvas and writes it as PNG.
//
// Geometry and font sizes are multiplied by ExportScale explicitly rather
// than through a context transform, so glyphs rasterize at the target
// resolution instead of being scaled bitmaps.
func WritePNG(w io.Writer, c *Canvas) error {
	m, err := NewFontMeasurer()
	if err != nil {
		return err
	}
	return writePNG(w, c, m)
}

func writePNG(w io.Writer, c *Canvas, m *FontMeasurer) error {
	k := ExportScale
	dc := gg.NewContext(int(c.Width*k), int(c.Height*k))

	dc.SetHexColor(c.Background)
	dc.Clear()

	for _, p := range c.Panels {
		drawPanelPNG(dc, c, p, m, k)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawPanelPNG(dc *gg.Context, c *Canvas, p *Panel, m *FontMeasurer, k float64) {
	s := p.Scene

	dc.SetHexColor(c.TitleColor)
	dc.SetFontFace(m.Face(c.TitleSize * k))
	dc.DrawStringAnchored(s.Title, p.TitleX*k, p.TitleY*k, 0.5, 0.5)

	if s.Note != "" {
		dc.SetHexColor(c.NoteColor)
		dc.SetFontFace(m.Face(c.NoteSize * k))
		dc.DrawStringAnchored(s.Note, p.NoteX*k, p.NoteY*k, 0.5, 0.5)
	}

	for i := range s.Bubbles {
		drawBubblePNG(dc, &s.Bubbles[i], p, m, k)
	}
}

func drawBubblePNG(dc *gg.Context, b *Bubble, p *Panel, m *FontMeasurer, k float64) {
	cx := (p.X + b.X) * k
	cy := (p.Y + b.Y) * k

	dc.SetHexColor(b.Fill)
	dc.DrawCircle(cx, cy, b.R*k)
	dc.Fill()

	if b.R <= 0 {
		return
	}

	dc.SetHexColor(b.TextColor)
	dc.SetFontFace(m.Face(b.Label.ValueSize * k))
	dc.DrawStringAnchored(b.ValueText, cx, cy+b.Label.ValueY*k, 0.5, 0.5)

	dc.SetFontFace(m.Face(b.Label.NameSize * k))
	for _, line := range b.Label.Lines {
		dc.DrawStringAnchored(line.Text, cx, cy+line.Y*k, 0.5, 0.5)
	}
}

// DefaultExportName returns the conventional export file name for the
// given extension: chart-export-<unix-ms>.<ext>.
func DefaultExportName(ext string) string {
	return fmt.Sprintf("chart-export-%d.%s", time.Now().UnixMilli(), ext)
}
