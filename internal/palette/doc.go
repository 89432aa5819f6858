// Package palette expands a single base color into an ordered ramp of
// shades for the bubble charts.
//
// The ramp holds hue and saturation fixed and interpolates lightness
// downward, which keeps light label text readable over every generated
// shade. Unparseable base colors degrade to repeating the input string,
// never to an error.
package palette
