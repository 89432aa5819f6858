package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontMeasurer measures text with real metrics from the embedded Go
// Regular face. The PNG back-end shares its faces so measured widths match
// drawn widths exactly.
//
// Faces are cached per size. The cache is not synchronized; build scenes
// from a single goroutine.
type FontMeasurer struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewFontMeasurer parses the embedded font. Parsing a compiled-in font
// should never fail; the error return exists so callers can fall back to
// the approximate rune measurer instead of panicking.
func NewFontMeasurer() (*FontMeasurer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return &FontMeasurer{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Width implements layout.Measurer using the face's advance widths.
func (m *FontMeasurer) Width(s string, size float64) float64 {
	return float64(font.MeasureString(m.Face(size), s)) / 64
}

// Face returns a cached font.Face at the given size.
func (m *FontMeasurer) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(m.font, &truetype.Options{Size: size})
	m.faces[size] = face
	return face
}
