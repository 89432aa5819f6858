package layout

import (
	"math"
	"testing"
)

// TestPackEmpty verifies that zero rows produce empty output.
func TestPackEmpty(t *testing.T) {
	t.Parallel()

	leaves := Pack(nil, 400, 300, 4)
	if len(leaves) != 0 {
		t.Errorf("expected no leaves, got %d", len(leaves))
	}
}

// TestPackSingleRow verifies that one row yields one centered circle
// sized to fill the area minus padding.
func TestPackSingleRow(t *testing.T) {
	t.Parallel()

	leaves := Pack([]Datum{{Name: "only", Value: 42}}, 400, 300, 10)
	if len(leaves) != 1 {
		t.Fatalf("expected 1 leaf, got %d", len(leaves))
	}

	leaf := leaves[0]
	if leaf.X != 200 || leaf.Y != 150 {
		t.Errorf("expected centered leaf, got (%v, %v)", leaf.X, leaf.Y)
	}

	halfMin := 150.0
	if leaf.R <= 0 || leaf.R > halfMin {
		t.Errorf("expected radius in (0, %v], got %v", halfMin, leaf.R)
	}
	// The padding gap halves on each side of the single circle.
	if math.Abs(leaf.R-(halfMin-5)) > 1 {
		t.Errorf("expected radius near %v, got %v", halfMin-5, leaf.R)
	}
}

// TestPackIdempotence verifies that identical inputs produce bit-identical
// leaf positions and radii. The packing must contain no hidden randomness
// or time dependence.
func TestPackIdempotence(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "a", Value: 21}, {Name: "b", Value: 13}, {Name: "c", Value: 34},
		{Name: "d", Value: 8}, {Name: "e", Value: 5}, {Name: "f", Value: 55},
		{Name: "g", Value: 2},
	}

	first := Pack(rows, 520, 420, 6)
	second := Pack(rows, 520, 420, 6)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("leaf %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestPackMonotonicity verifies that a strictly larger value yields a
// strictly larger radius, all else equal.
func TestPackMonotonicity(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "small", Value: 10},
		{Name: "large", Value: 11},
		{Name: "other", Value: 10.5},
	}

	leaves := Pack(rows, 400, 400, 4)
	if !(leaves[0].R < leaves[2].R && leaves[2].R < leaves[1].R) {
		t.Errorf("radii not monotone in value: %v, %v, %v",
			leaves[0].R, leaves[2].R, leaves[1].R)
	}
}

// TestPackAreaProportionalToValue verifies area (not radius) scales with
// the row value.
func TestPackAreaProportionalToValue(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "one", Value: 10},
		{Name: "four", Value: 40},
	}

	leaves := Pack(rows, 400, 400, 0)
	ratio := (leaves[1].R * leaves[1].R) / (leaves[0].R * leaves[0].R)
	if math.Abs(ratio-4) > 1e-9 {
		t.Errorf("expected area ratio 4, got %v", ratio)
	}
}

// TestPackNoOverlap verifies pairwise separation of the packed circles,
// accounting for the requested padding.
func TestPackNoOverlap(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "a", Value: 30}, {Name: "b", Value: 25}, {Name: "c", Value: 20},
		{Name: "d", Value: 15}, {Name: "e", Value: 10}, {Name: "f", Value: 5},
		{Name: "g", Value: 50}, {Name: "h", Value: 3}, {Name: "i", Value: 7},
	}

	const pad = 6.0
	leaves := Pack(rows, 520, 420, pad)

	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			dx := leaves[i].X - leaves[j].X
			dy := leaves[i].Y - leaves[j].Y
			dist := math.Hypot(dx, dy)
			minDist := leaves[i].R + leaves[j].R

			// Tangent circles may touch; a small tolerance absorbs float
			// error and the padding estimate from the two-pass scaling.
			if dist < minDist-0.5 {
				t.Errorf("leaves %d and %d overlap: dist %v < %v", i, j, dist, minDist)
			}
		}
	}
}

// TestPackFitsBoundingBox verifies the arrangement stays within the box.
func TestPackFitsBoundingBox(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "a", Value: 30}, {Name: "b", Value: 25}, {Name: "c", Value: 20},
		{Name: "d", Value: 15}, {Name: "e", Value: 10},
	}

	const w, h = 520.0, 420.0
	leaves := Pack(rows, w, h, 6)

	// The enclosing circle is fitted to the shorter side, so every leaf
	// must sit within halfMin of the center (plus float tolerance).
	halfMin := math.Min(w, h) / 2
	for i, leaf := range leaves {
		d := math.Hypot(leaf.X-w/2, leaf.Y-h/2) + leaf.R
		if d > halfMin+1e-6 {
			t.Errorf("leaf %d extends to %v, beyond %v", i, d, halfMin)
		}
	}
}

// TestPackZeroValues verifies the degenerate all-zero dataset degrades to
// centered zero-radius leaves instead of dividing by zero.
func TestPackZeroValues(t *testing.T) {
	t.Parallel()

	leaves := Pack([]Datum{{Name: "a"}, {Name: "b"}}, 400, 300, 4)
	for i, leaf := range leaves {
		if leaf.R != 0 {
			t.Errorf("leaf %d: expected zero radius, got %v", i, leaf.R)
		}
		if leaf.X != 200 || leaf.Y != 150 {
			t.Errorf("leaf %d: expected centered placement, got (%v, %v)", i, leaf.X, leaf.Y)
		}
	}
}

// TestPackPreservesInputOrder verifies leaves line up with input rows so
// palette indices pair with row indices.
func TestPackPreservesInputOrder(t *testing.T) {
	t.Parallel()

	rows := []Datum{
		{Name: "first", Value: 5},
		{Name: "second", Value: 25},
		{Name: "third", Value: 15},
	}

	leaves := Pack(rows, 400, 400, 2)
	for i, row := range rows {
		if leaves[i].Datum != row {
			t.Errorf("leaf %d carries %+v, want %+v", i, leaves[i].Datum, row)
		}
	}
}

// TestPackTwoRows covers the two-circle fast path.
func TestPackTwoRows(t *testing.T) {
	t.Parallel()

	leaves := Pack([]Datum{{Name: "a", Value: 9}, {Name: "b", Value: 16}}, 400, 400, 0)

	dist := math.Hypot(leaves[0].X-leaves[1].X, leaves[0].Y-leaves[1].Y)
	if math.Abs(dist-(leaves[0].R+leaves[1].R)) > 1e-6 {
		t.Errorf("expected tangent circles, dist %v vs radii sum %v",
			dist, leaves[0].R+leaves[1].R)
	}
}
