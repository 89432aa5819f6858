package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/duochart/duochart/internal/model"
)

// Default configuration values.
// These mirror the rendering defaults of the interactive tool duochart
// grew out of, where they produced readable charts for datasets of
// roughly 3 to 15 categories.
const (
	// DefaultChartWidth is the width in pixels of one chart panel.
	// Two panels sit side by side, so the exported canvas is roughly
	// twice this wide plus margins.
	DefaultChartWidth = 520.0

	// DefaultChartHeight is the height in pixels of one chart panel.
	DefaultChartHeight = 420.0

	// DefaultPadding is the gap in pixels between packed bubbles.
	// Larger values spread the bubbles and shrink them to compensate.
	DefaultPadding = 6.0

	// DefaultPaletteSteps is the number of shades generated from each
	// chart's base color. Bubbles cycle through the shades in row order.
	DefaultPaletteSteps = 5

	// DefaultValueSuffix is appended to each bubble's value text.
	// The tool's typical input is percentage-share data, so "%" is the
	// default. Pass an empty --suffix to render bare numbers.
	DefaultValueSuffix = "%"

	// AppName is the application name used for XDG directory paths.
	AppName = "duochart"
)

// Config holds all configuration options for duochart.
// It is populated from CLI flags and an optional preset file, then passed
// through the application via dependency injection rather than global state.
//
// A single flat struct keeps flag binding and preset merging simple; the
// option count does not justify nested sub-structs.
type Config struct {
	// InputPath is the CSV file to import. "-" reads standard input.
	// Empty means no import; the dataset must then come from a profile.
	InputPath string

	// Profile is the name of a stored profile to load before rendering.
	// When both Profile and InputPath are set, the profile is loaded
	// first and the imported dataset replaces its rows.
	Profile string

	// SaveProfile persists the resulting state under Profile after a
	// successful render. The CLI fills Profile with the store's default
	// profile name when the user names none.
	SaveProfile bool

	// Title1 and Title2 override the metric labels detected from the
	// CSV header. Empty means keep the detected or stored label.
	Title1 string
	Title2 string

	// ChartWidth and ChartHeight are the per-panel dimensions in pixels.
	ChartWidth  float64
	ChartHeight float64

	// Padding is the gap between packed bubbles in pixels.
	Padding float64

	// PaletteSteps is the number of shades per chart palette.
	PaletteSteps int

	// Color1 and Color2 are the base hex colors for the left and right
	// chart. Empty means keep the stored or default color.
	Color1 string
	Color2 string

	// DarkMode switches the canvas to the dark background and light
	// title colors.
	DarkMode bool

	// NoteMode selects shared or per-chart annotations. Must be
	// "shared" or "separate" when set; empty keeps the stored mode.
	NoteMode string

	// SharedNote is the annotation spanning both charts in shared mode.
	SharedNote string

	// Note1 and Note2 are the per-chart annotations in separate mode.
	Note1 string
	Note2 string

	// ValueSuffix is appended to each bubble's value text.
	ValueSuffix string

	// SVGFile is the SVG output path. Empty skips SVG output.
	SVGFile string

	// PNGFile is the PNG output path. Empty skips PNG output.
	PNGFile string

	// JSONReport writes the insights report as JSON instead of Markdown.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport writes the insights report as GitHub Flavored
	// Markdown. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the report output path. When set, the report goes to
	// this file as well as stdout. Only meaningful with a report format.
	ReportFile string

	// ConfigFilePath is the path to the preset file. If empty, the tool
	// searches for .duochart in the current directory and then in the
	// user's home directory.
	ConfigFilePath string

	// Presets holds the preset definitions loaded from the config file.
	Presets *File

	// PresetName selects which named preset from the config file to
	// apply on top of the defaults, before CLI flags.
	PresetName string

	// DBDir is the directory holding the profile database. Empty means
	// the XDG data directory.
	DBDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
// Many defaults are non-zero, so relying on zero values would silently
// produce degenerate charts; the constructor also documents what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		ChartWidth:   DefaultChartWidth,
		ChartHeight:  DefaultChartHeight,
		Padding:      DefaultPadding,
		PaletteSteps: DefaultPaletteSteps,
		ValueSuffix:  DefaultValueSuffix,
	}
}

// XDGDataDir returns the XDG data directory for duochart.
// On Linux: ~/.local/share/duochart
// On macOS: ~/Library/Application Support/duochart
// On Windows: %LOCALAPPDATA%\duochart
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for duochart.
// On Linux: ~/.config/duochart
// On macOS: ~/Library/Application Support/duochart
// On Windows: %APPDATA%\duochart
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid, and
// returns the first error found: fixing one error often makes others
// irrelevant.
//
// Validation happens once after CLI parsing and preset merging, before
// any rendering begins.
func (c *Config) Validate() error {
	// The dataset must come from somewhere
	if c.InputPath == "" && c.Profile == "" {
		return ErrNoInput
	}

	// Panel dimensions must be positive
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return ErrInvalidDimensions
	}

	// Padding must be non-negative; use 0 for touching bubbles
	if c.Padding < 0 {
		return ErrInvalidPadding
	}

	// At least one shade is needed to fill bubbles
	if c.PaletteSteps <= 0 {
		return ErrInvalidPaletteSteps
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// NoteMode, when set, must name a known mode
	if c.NoteMode != "" && !model.NoteMode(c.NoteMode).Valid() {
		return ErrInvalidNoteMode
	}

	return nil
}
