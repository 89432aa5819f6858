package layout

import "math"

// Datum is one weighted input row for the packing engine.
type Datum struct {
	// Name is the row label carried through to the leaf.
	Name string

	// Value is the row weight. Circle area is proportional to Value.
	Value float64
}

// Leaf is one positioned, sized circle corresponding to one input row.
// Positions are in the output coordinate space of the bounding box passed
// to Pack; no leaf identity persists across recomputation.
type Leaf struct {
	// X and Y locate the circle center.
	X, Y float64

	// R is the circle radius.
	R float64

	// Datum is the input row that produced this leaf.
	Datum Datum
}

// Pack arranges one circle per row, without overlap, inside a width x
// height bounding box with approximately padding pixels of separation
// between adjacent circles. Circle area is proportional to row value, and
// radius is strictly monotonic in value. The arrangement is centered in
// the box and scaled so the enclosing circle fits the shorter box side.
//
// Zero rows produce empty output. A single row produces one centered
// circle sized to fill the area minus padding. The computation contains
// no randomness or time dependence.
func Pack(rows []Datum, width, height, padding float64) []Leaf {
	n := len(rows)
	leaves := make([]Leaf, n)
	if n == 0 {
		return leaves
	}

	cx, cy := width/2, height/2
	halfMin := math.Min(width, height) / 2

	// Area proportional to value: the pack-space radius is sqrt(value).
	radii := make([]float64, n)
	for i, row := range rows {
		radii[i] = math.Sqrt(math.Max(0, row.Value))
		leaves[i] = Leaf{X: cx, Y: cy, Datum: row}
	}

	// First pass without padding estimates the pack-to-output scale, so
	// the padding gap can be expressed in pack-space units.
	first := makeCircles(radii, 0)
	r0 := packSiblings(first)
	if r0 <= 0 || halfMin <= 0 {
		return leaves
	}
	k0 := halfMin / r0

	// Second pass with padded radii produces the final arrangement.
	packed := makeCircles(radii, padding/(2*k0))
	r1 := packSiblings(packed)
	if r1 <= 0 {
		return leaves
	}
	k := halfMin / r1

	for i := range leaves {
		leaves[i].X = cx + packed[i].x*k
		leaves[i].Y = cy + packed[i].y*k
		leaves[i].R = radii[i] * k
	}
	return leaves
}

// circle is the mutable packing state for one row.
type circle struct {
	x, y, r float64
}

func makeCircles(radii []float64, pad float64) []*circle {
	cs := make([]*circle, len(radii))
	for i, r := range radii {
		cs[i] = &circle{r: r + pad}
	}
	return cs
}

// chainNode is one element of the circular front chain.
type chainNode struct {
	c          *circle
	next, prev *chainNode
}

// packSiblings positions the circles tangent to one another using the
// front-chain algorithm, recenters them around the origin, and returns
// the radius of their smallest enclosing circle.
func packSiblings(cs []*circle) float64 {
	n := len(cs)
	if n == 0 {
		return 0
	}

	a := cs[0]
	a.x, a.y = 0, 0
	if n == 1 {
		return a.r
	}

	b := cs[1]
	a.x, b.x, b.y = -b.r, a.r, 0
	if n == 2 {
		return a.r + b.r
	}

	place(b, a, cs[2])

	na := &chainNode{c: a}
	nb := &chainNode{c: b}
	nc := &chainNode{c: cs[2]}
	na.next, nb.prev = nb, na
	nb.next, nc.prev = nc, nb
	nc.next, na.prev = na, nc
	a2, b2 := na, nb

pack:
	for i := 3; i < n; i++ {
		c := cs[i]
		place(a2.c, b2.c, c)
		nc = &chainNode{c: c}

		// Walk the chain outward from the insertion point in both
		// directions, looking for the nearest circle the candidate
		// intersects. Nearness is linear distance along the chain.
		j, k := b2.next, a2.prev
		sj, sk := b2.c.r, a2.c.r
		for {
			if sj <= sk {
				if intersects(j.c, c) {
					b2 = j
					a2.next, b2.prev = b2, a2
					i--
					continue pack
				}
				sj += j.c.r
				j = j.next
			} else {
				if intersects(k.c, c) {
					a2 = k
					a2.next, b2.prev = b2, a2
					i--
					continue pack
				}
				sk += k.c.r
				k = k.prev
			}
			if j == k.next {
				break
			}
		}

		// Insert the new circle between a2 and b2 on the chain.
		nc.prev, nc.next = a2, b2
		a2.next, b2.prev = nc, nc
		b2 = nc

		// Advance to the chain pair closest to the weighted centroid.
		best := a2
		bestScore := score(a2)
		for cur := a2.next; cur != b2; cur = cur.next {
			if s := score(cur); s < bestScore {
				best, bestScore = cur, s
			}
		}
		a2 = best
		b2 = a2.next
	}

	// Collect the front chain and recenter on its enclosing circle.
	chain := []*circle{b2.c}
	for cur := b2.next; cur != b2; cur = cur.next {
		chain = append(chain, cur.c)
	}
	e := enclose(chain)
	for _, c := range cs {
		c.x -= e.x
		c.y -= e.y
	}
	return e.r
}

// place positions c tangent to both a and b, on the outside of the chain.
func place(b, a, c *circle) {
	dx := b.x - a.x
	dy := b.y - a.y
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		c.x = a.x + a.r + c.r
		c.y = a.y
		return
	}

	a2 := a.r + c.r
	a2 *= a2
	b2 := b.r + c.r
	b2 *= b2
	if a2 > b2 {
		x := (d2 + b2 - a2) / (2 * d2)
		y := math.Sqrt(math.Max(0, b2/d2-x*x))
		c.x = b.x - x*dx - y*dy
		c.y = b.y - x*dy + y*dx
	} else {
		x := (d2 + a2 - b2) / (2 * d2)
		y := math.Sqrt(math.Max(0, a2/d2-x*x))
		c.x = a.x + x*dx - y*dy
		c.y = a.y + x*dy + y*dx
	}
}

// intersects reports whether a and b overlap by more than the numeric
// tolerance. Tangency does not count as intersection.
func intersects(a, b *circle) bool {
	dr := a.r + b.r - 1e-6
	dx := b.x - a.x
	dy := b.y - a.y
	return dr > 0 && dr*dr > dx*dx+dy*dy
}

// score measures the squared distance of a chain pair's weighted midpoint
// from the origin. The pair closest to the centroid becomes the next
// insertion point, which keeps the arrangement compact.
func score(n *chainNode) float64 {
	a, b := n.c, n.next.c
	ab := a.r + b.r
	dx := (a.x*b.r + b.x*a.r) / ab
	dy := (a.y*b.r + b.y*a.r) / ab
	return dx*dx + dy*dy
}
