package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lightness endpoints of the shade ramp. Index 0 sits at the medium end,
// the last index at the darkest. The darkest stays above pure black so
// circle outlines remain distinguishable on dark backgrounds.
const (
	rampStartLightness = 0.55
	rampEndLightness   = 0.20
)

// DefaultSteps is the default ramp length.
const DefaultSteps = 5

// Scale expands base into steps ordered shades, medium to dark.
//
// When base does not parse as a #rgb or #rrggbb hex color, the literal
// input is repeated steps times. Output order is caller-significant; use
// Reverse to flip the ramp for the opposite visual mapping.
func Scale(base string, steps int) []string {
	if steps <= 0 {
		return []string{}
	}

	h, s, _, ok := parseHexHSL(base)
	if !ok {
		out := make([]string, steps)
		for i := range out {
			out[i] = base
		}
		return out
	}

	out := make([]string, steps)
	for i := range out {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		l := rampStartLightness + t*(rampEndLightness-rampStartLightness)
		out[i] = formatHexHSL(h, s, l)
	}
	return out
}

// Reverse returns a new slice with the ramp order flipped.
func Reverse(colors []string) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[len(colors)-1-i] = c
	}
	return out
}

// Luminance returns the relative luminance of a hex color in [0, 1],
// or 0 and false when the color does not parse. The renderer uses this to
// pick a readable text color over arbitrary backgrounds.
func Luminance(hex string) (float64, bool) {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return 0, false
	}
	lin := func(c float64) float64 {
		if c <= 0.04045 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b), true
}

// parseHexRGB parses #rgb or #rrggbb into components in [0, 1].
func parseHexRGB(hex string) (r, g, b float64, ok bool) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, false
	}
	hex = hex[1:]

	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	r = float64((v>>16)&0xff) / 255
	g = float64((v>>8)&0xff) / 255
	b = float64(v&0xff) / 255
	return r, g, b, true
}

// parseHexHSL parses a hex color and converts it to HSL.
// Hue is in degrees [0, 360), saturation and lightness in [0, 1].
func parseHexHSL(hex string) (h, s, l float64, ok bool) {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return 0, 0, 0, false
	}

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2

	d := maxC - minC
	if d == 0 {
		return 0, 0, l, true
	}

	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	switch maxC {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, s, l, true
}

// formatHexHSL converts HSL back to a lowercase #rrggbb hex string.
func formatHexHSL(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	toByte := func(v float64) int {
		return int(math.Round((v + m) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
}
