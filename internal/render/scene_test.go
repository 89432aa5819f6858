package render

import (
	"testing"

	"github.com/duochart/duochart/internal/layout"
)

// TestBuildScene verifies leaf resolution, palette pairing, and label
// attachment.
func TestBuildScene(t *testing.T) {
	t.Parallel()

	leaves := []layout.Leaf{
		{X: 100, Y: 100, R: 40, Datum: layout.Datum{Name: "Alpha", Value: 21}},
		{X: 200, Y: 120, R: 30, Datum: layout.Datum{Name: "Beta", Value: 13}},
	}
	colors := []string{"#111111", "#222222"}

	scene := BuildScene(leaves, colors, nil, SceneOptions{
		Width: 300, Height: 240, Title: "Reach", Note: "Q1", ValueSuffix: "%",
	})

	if scene.Width != 300 || scene.Height != 240 {
		t.Errorf("unexpected scene dimensions: %v x %v", scene.Width, scene.Height)
	}
	if scene.Title != "Reach" || scene.Note != "Q1" {
		t.Errorf("unexpected title/note: %q / %q", scene.Title, scene.Note)
	}
	if len(scene.Bubbles) != 2 {
		t.Fatalf("expected 2 bubbles, got %d", len(scene.Bubbles))
	}

	b := scene.Bubbles[0]
	if b.Fill != "#111111" {
		t.Errorf("expected palette color paired by index, got %q", b.Fill)
	}
	if b.ValueText != "21%" {
		t.Errorf("expected value text %q, got %q", "21%", b.ValueText)
	}
	if b.Label.ValueSize <= 0 || b.Label.NameSize <= 0 {
		t.Errorf("expected fitted label sizes, got %+v", b.Label)
	}
}

// TestBuildScenePaletteCycling verifies cyclic palette reuse when rows
// outnumber palette entries.
func TestBuildScenePaletteCycling(t *testing.T) {
	t.Parallel()

	leaves := make([]layout.Leaf, 5)
	for i := range leaves {
		leaves[i] = layout.Leaf{R: 10, Datum: layout.Datum{Name: "x", Value: 1}}
	}
	colors := []string{"#aa0000", "#00bb00"}

	scene := BuildScene(leaves, colors, nil, SceneOptions{Width: 100, Height: 100})

	want := []string{"#aa0000", "#00bb00", "#aa0000", "#00bb00", "#aa0000"}
	for i, b := range scene.Bubbles {
		if b.Fill != want[i] {
			t.Errorf("bubble %d: expected fill %q, got %q", i, want[i], b.Fill)
		}
	}
}

// TestBuildSceneTextContrast verifies that each bubble's label color is
// chosen against its own fill luminance.
func TestBuildSceneTextContrast(t *testing.T) {
	t.Parallel()

	leaves := []layout.Leaf{
		{R: 10, Datum: layout.Datum{Name: "a", Value: 1}},
		{R: 10, Datum: layout.Datum{Name: "b", Value: 1}},
		{R: 10, Datum: layout.Datum{Name: "c", Value: 1}},
	}
	colors := []string{"#1f2937", "#fde68a", "not-a-color"}

	scene := BuildScene(leaves, colors, nil, SceneOptions{Width: 100, Height: 100})

	want := []string{lightTextColor, darkTextColor, lightTextColor}
	for i, b := range scene.Bubbles {
		if b.TextColor != want[i] {
			t.Errorf("bubble %d over %q: expected text color %q, got %q", i, b.Fill, want[i], b.TextColor)
		}
	}
}

// TestBuildSceneEmpty verifies the zero-row case.
func TestBuildSceneEmpty(t *testing.T) {
	t.Parallel()

	scene := BuildScene(nil, []string{"#000000"}, nil, SceneOptions{Width: 10, Height: 10})
	if len(scene.Bubbles) != 0 {
		t.Errorf("expected no bubbles, got %d", len(scene.Bubbles))
	}
}

// TestFormatValue verifies value label formatting.
func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		suffix string
		want   string
	}{
		{21, "%", "21%"},
		{0.5, "%", "0.5%"},
		{1234, "", "1234"},
		{0, "%", "0%"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.suffix); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.v, tt.suffix, got, tt.want)
		}
	}
}
