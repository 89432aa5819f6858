package config

// Preset holds a reusable set of rendering options. Presets capture the
// look of a chart (colors, dimensions, annotations) so that recurring
// reports render consistently without repeating flags.
type Preset struct {
	// Title1 and Title2 override the metric labels.
	Title1 string `yaml:"title1,omitempty"`
	Title2 string `yaml:"title2,omitempty"`

	// Color1 and Color2 are the base hex colors for the two charts.
	Color1 string `yaml:"color1,omitempty"`
	Color2 string `yaml:"color2,omitempty"`

	// DarkMode switches the canvas to the dark theme. A pointer keeps
	// "not set" distinct from an explicit false.
	DarkMode *bool `yaml:"darkMode,omitempty"`

	// NoteMode selects "shared" or "separate" annotations.
	NoteMode string `yaml:"noteMode,omitempty"`

	// SharedNote, Note1 and Note2 are the annotation texts.
	SharedNote string `yaml:"sharedNote,omitempty"`
	Note1      string `yaml:"note1,omitempty"`
	Note2      string `yaml:"note2,omitempty"`

	// Width and Height are the per-panel dimensions in pixels.
	// If zero, the global defaults are used.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Padding is the gap between bubbles in pixels. A pointer keeps
	// "not set" distinct from an explicit 0.
	Padding *float64 `yaml:"padding,omitempty"`

	// Steps is the number of palette shades per chart.
	Steps int `yaml:"steps,omitempty"`

	// Suffix is appended to bubble value text. A pointer keeps "not
	// set" distinct from an explicit empty suffix.
	Suffix *string `yaml:"suffix,omitempty"`
}

// File represents the structure of the .duochart configuration file.
type File struct {
	// Presets maps preset names to their rendering options.
	Presets map[string]Preset `yaml:"presets,omitempty"`

	// Defaults contains options applied to every render unless
	// overridden by a named preset.
	Defaults Preset `yaml:"defaults,omitempty"`
}

// GetPreset returns the options for a named preset merged over the file's
// defaults. An unknown name returns the defaults alone.
func (cf *File) GetPreset(name string) Preset {
	result := cf.Defaults

	p, ok := cf.Presets[name]
	if !ok {
		return result
	}

	if p.Title1 != "" {
		result.Title1 = p.Title1
	}
	if p.Title2 != "" {
		result.Title2 = p.Title2
	}
	if p.Color1 != "" {
		result.Color1 = p.Color1
	}
	if p.Color2 != "" {
		result.Color2 = p.Color2
	}
	if p.DarkMode != nil {
		result.DarkMode = p.DarkMode
	}
	if p.NoteMode != "" {
		result.NoteMode = p.NoteMode
	}
	if p.SharedNote != "" {
		result.SharedNote = p.SharedNote
	}
	if p.Note1 != "" {
		result.Note1 = p.Note1
	}
	if p.Note2 != "" {
		result.Note2 = p.Note2
	}
	if p.Width != 0 {
		result.Width = p.Width
	}
	if p.Height != 0 {
		result.Height = p.Height
	}
	if p.Padding != nil {
		result.Padding = p.Padding
	}
	if p.Steps != 0 {
		result.Steps = p.Steps
	}
	if p.Suffix != nil {
		result.Suffix = p.Suffix
	}

	return result
}

// Apply copies the preset's set fields onto the config. CLI flags are
// bound after presets, so explicit flags still win.
func (p Preset) Apply(c *Config) {
	if p.Title1 != "" {
		c.Title1 = p.Title1
	}
	if p.Title2 != "" {
		c.Title2 = p.Title2
	}
	if p.Color1 != "" {
		c.Color1 = p.Color1
	}
	if p.Color2 != "" {
		c.Color2 = p.Color2
	}
	if p.DarkMode != nil {
		c.DarkMode = *p.DarkMode
	}
	if p.NoteMode != "" {
		c.NoteMode = p.NoteMode
	}
	if p.SharedNote != "" {
		c.SharedNote = p.SharedNote
	}
	if p.Note1 != "" {
		c.Note1 = p.Note1
	}
	if p.Note2 != "" {
		c.Note2 = p.Note2
	}
	if p.Width != 0 {
		c.ChartWidth = p.Width
	}
	if p.Height != 0 {
		c.ChartHeight = p.Height
	}
	if p.Padding != nil {
		c.Padding = *p.Padding
	}
	if p.Steps != 0 {
		c.PaletteSteps = p.Steps
	}
	if p.Suffix != nil {
		c.ValueSuffix = *p.Suffix
	}
}
