package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Package-level sentinel errors let callers use errors.Is() for
// programmatic handling while still carrying a human-readable message.
// None of these need dynamic values, so errors.New() suffices.
var (
	// ErrNoInput is returned when neither a CSV file nor a profile is
	// specified. With no dataset source there is nothing to render.
	ErrNoInput = errors.New("no input: provide a CSV file or load a profile with --profile")

	// ErrInvalidDimensions is returned when a chart panel dimension is
	// not positive. Zero-area panels cannot hold any bubbles.
	ErrInvalidDimensions = errors.New("invalid chart dimensions: width and height must be positive")

	// ErrInvalidPadding is returned when the bubble padding is negative.
	// Use 0 for touching bubbles.
	ErrInvalidPadding = errors.New("invalid padding: must be non-negative")

	// ErrInvalidPaletteSteps is returned when the palette step count is
	// not positive. At least one shade is needed to fill bubbles.
	ErrInvalidPaletteSteps = errors.New("invalid palette steps: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one report format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidNoteMode is returned when the note mode is neither
	// "shared" nor "separate".
	ErrInvalidNoteMode = errors.New(`invalid note mode: must be "shared" or "separate"`)
)
