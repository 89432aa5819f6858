// Package report writes the insights derived from an imported dataset in
// JSON or Markdown form.
//
// The Markdown writer produces GitHub Flavored Markdown with a
// per-category table, a mermaid pie chart of metric share, and a short
// note on the largest mover between the two metrics.
package report
