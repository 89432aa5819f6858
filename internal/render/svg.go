package render

import (
	"fmt"
	"io"
	"strings"
)

// xmlEscaper covers the five characters with meaning in SVG text nodes
// and attribute values.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// WriteSVG serializes the canvas as a standalone SVG document.
//
// The emitted markup is plain shapes and text: one background rect, then
// per panel a heading, an optional note, and one group per bubble holding
// the circle, the value label, and the wrapped name lines.
func WriteSVG(w io.Writer, c *Canvas) error {
	ew := &errWriter{w: w}

	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	ew.printf(`  <rect width="%g" height="%g" fill="%s"/>`+"\n", c.Width, c.Height, c.Background)

	for _, p := range c.Panels {
		writePanelSVG(ew, c, p)
	}

	ew.printf("</svg>\n")
	return ew.err
}

func writePanelSVG(ew *errWriter, c *Canvas, p *Panel) {
	s := p.Scene

	ew.printf(`  <text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" font-family="sans-serif" font-weight="bold">%s</text>`+"\n",
		p.TitleX, p.TitleY, c.TitleSize, c.TitleColor, xmlEscaper.Replace(s.Title))

	if s.Note != "" {
		ew.printf(`  <text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" font-family="sans-serif">%s</text>`+"\n",
			p.NoteX, p.NoteY, c.NoteSize, c.NoteColor, xmlEscaper.Replace(s.Note))
	}

	ew.printf(`  <g transform="translate(%g,%g)">`+"\n", p.X, p.Y)
	for i := range s.Bubbles {
		writeBubbleSVG(ew, &s.Bubbles[i])
	}
	ew.printf("  </g>\n")
}

func writeBubbleSVG(ew *errWriter, b *Bubble) {
	ew.printf("    <g>\n")
	ew.printf(`      <circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n",
		b.X, b.Y, b.R, xmlEscaper.Replace(b.Fill))

	ew.printf(`      <text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-weight="bold">%s</text>`+"\n",
		b.X, b.Y+b.Label.ValueY, b.Label.ValueSize, b.TextColor, xmlEscaper.Replace(b.ValueText))

	for _, line := range b.Label.Lines {
		ew.printf(`      <text x="%g" y="%g" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif">%s</text>`+"\n",
			b.X, b.Y+line.Y, b.Label.NameSize, b.TextColor, xmlEscaper.Replace(line.Text))
	}
	ew.printf("    </g>\n")
}

// errWriter latches the first write error so the emitters stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
