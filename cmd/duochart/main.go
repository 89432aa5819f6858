// Package main provides the entry point for the duochart CLI.
//
// duochart turns a small CSV dataset (category, metric1, metric2) into two
// side-by-side bubble charts, exported as SVG or PNG, with an optional
// insights report and named profiles for recurring datasets.
//
// Usage:
//
//	duochart render data.csv
//	duochart render data.csv -o charts.png --dark
//
// See --help for all available options.
package main

// main is the entry point for duochart.
func main() {
	Execute()
}
