// Package dataset converts freeform comma-separated text into a normalized
// chart dataset.
//
// The parser is a best-effort heuristic, not a strict CSV grammar: it
// detects an optional header row, tolerates percent signs on numeric
// fields, compensates for a known legacy leading-empty-column export
// format, and silently drops rows it cannot make sense of. Malformed input
// degrades to fewer rows or default labels; parsing never fails.
package dataset
