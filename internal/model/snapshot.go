package model

// NoteMode selects how annotation text is attached to the two charts.
type NoteMode string

const (
	// NoteModeShared renders one annotation spanning both charts.
	NoteModeShared NoteMode = "shared"

	// NoteModeSeparate renders an independent annotation under each chart.
	NoteModeSeparate NoteMode = "separate"
)

// Valid reports whether m is a known note mode.
func (m NoteMode) Valid() bool {
	return m == NoteModeShared || m == NoteModeSeparate
}

// Snapshot is the entire mutable application state: metric labels, data
// rows, both base colors, the dark-mode flag, and annotation settings.
//
// A Snapshot is what the profile store persists and restores. Serialization
// is a single JSON blob with field-by-field optional decoding: unmarshaling
// into a default-populated Snapshot leaves defaults in place for any field
// missing from the stored blob, so old blobs remain loadable as fields are
// added. There is no schema version marker.
type Snapshot struct {
	// Title1 and Title2 are the metric labels shown above each chart.
	Title1 string `json:"title1"`
	Title2 string `json:"title2"`

	// Data holds the imported rows.
	Data []DataPoint `json:"data"`

	// Color1 and Color2 are the base colors for the left and right chart
	// palettes, as hex strings.
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`

	// DarkMode switches the canvas background and title colors.
	DarkMode bool `json:"darkMode"`

	// NoteMode selects shared or per-chart annotations.
	NoteMode NoteMode `json:"noteMode"`

	// SharedNote is the annotation used in shared mode.
	SharedNote string `json:"sharedNote"`

	// Note1 and Note2 are the per-chart annotations used in separate mode.
	Note1 string `json:"note1"`
	Note2 string `json:"note2"`
}

// Default base colors for the two charts. Color1 is a muted slate blue,
// Color2 a muted sage green; both darken well across the palette ramp.
const (
	DefaultColor1 = "#4f5870"
	DefaultColor2 = "#5f7a6a"
)

// NewSnapshot returns a Snapshot populated with defaults: default metric
// labels, no rows, default base colors, light mode, shared annotations.
//
// Callers that restore persisted state should unmarshal into the value
// returned here so that missing fields keep their defaults.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Title1:   DefaultTitle1,
		Title2:   DefaultTitle2,
		Data:     []DataPoint{},
		Color1:   DefaultColor1,
		Color2:   DefaultColor2,
		NoteMode: NoteModeShared,
	}
}

// ApplyData replaces the snapshot's labels and rows with an import result.
// The previous dataset is discarded wholesale.
func (s *Snapshot) ApplyData(cd ChartData) {
	s.Title1 = cd.Title1
	s.Title2 = cd.Title2
	s.Data = cd.Data
}

// NoteFor returns the annotation text for chart index 0 or 1, honoring the
// note mode. Shared mode returns the shared note for both charts.
func (s *Snapshot) NoteFor(chart int) string {
	if s.NoteMode == NoteModeShared {
		return s.SharedNote
	}
	if chart == 0 {
		return s.Note1
	}
	return s.Note2
}
