// Package render turns packed layout leaves into a drawable scene and
// serializes that scene to SVG text or rasterizes it to PNG.
//
// Rendering is a pure function of its inputs: the scene is rebuilt from
// scratch on every call and holds no state between renders. The SVG
// back-end writes markup directly; the PNG back-end draws through
// fogleman/gg with the embedded Go Regular face at a fixed 2x resolution
// multiplier.
package render
