// Package model defines the core data structures shared across duochart.
//
// The central types are:
//   - DataPoint: one category with its two metric values
//   - ChartData: the normalized result of a CSV import
//   - Snapshot: the complete persistable application state
//   - Insights: derived per-category statistics for the insights report
//
// Types in this package are plain data with no behavior beyond
// construction, derivation, and serialization. All computation on them
// lives in the dataset, layout, render, and report packages.
package model
