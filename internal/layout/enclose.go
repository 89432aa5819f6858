package layout

import "math"

// enclose computes the smallest circle containing every circle in cs
// using Welzl's algorithm with move-to-front restarts.
//
// Welzl's expected-linear bound assumes random input order, so the input
// is shuffled first. The shuffle draws from a linear congruential
// generator with a fixed seed: the same input always visits circles in
// the same order, keeping the whole layout reproducible.
func enclose(cs []*circle) circle {
	shuffled := make([]*circle, len(cs))
	copy(shuffled, cs)
	shuffle(shuffled, newLCG())

	var basis []*circle
	var e circle
	haveE := false

	i := 0
	for i < len(shuffled) {
		p := shuffled[i]
		if haveE && enclosesWeak(e, *p) {
			i++
		} else {
			basis = extendBasis(basis, p)
			e = encloseBasis(basis)
			haveE = true
			i = 0
		}
	}
	return e
}

// extendBasis grows the support set for the enclosing circle so that it
// includes p. The support set never exceeds three circles.
func extendBasis(basis []*circle, p *circle) []*circle {
	if enclosesWeakAll(*p, basis) {
		return []*circle{p}
	}

	// Support of size two.
	for i := 0; i < len(basis); i++ {
		if enclosesNot(*p, *basis[i]) &&
			enclosesWeakAll(encloseBasis2(*basis[i], *p), basis) {
			return []*circle{basis[i], p}
		}
	}

	// Support of size three.
	for i := 0; i < len(basis)-1; i++ {
		for j := i + 1; j < len(basis); j++ {
			if enclosesNot(encloseBasis2(*basis[i], *basis[j]), *p) &&
				enclosesNot(encloseBasis2(*basis[i], *p), *basis[j]) &&
				enclosesNot(encloseBasis2(*basis[j], *p), *basis[i]) &&
				enclosesWeakAll(encloseBasis3(*basis[i], *basis[j], *p), basis) {
				return []*circle{basis[i], basis[j], p}
			}
		}
	}

	// Unreachable for consistent input: a basis of three support circles
	// always admits one of the cases above.
	return basis
}

// enclosesNot reports that a does not contain b.
func enclosesNot(a, b circle) bool {
	dr := a.r - b.r
	dx := b.x - a.x
	dy := b.y - a.y
	return dr < 0 || dr*dr < dx*dx+dy*dy
}

// enclosesWeak reports that a contains b, with tolerance for floating
// point error proportional to the larger radius.
func enclosesWeak(a, b circle) bool {
	dr := a.r - b.r + math.Max(a.r, math.Max(b.r, 1))*1e-9
	dx := b.x - a.x
	dy := b.y - a.y
	return dr > 0 && dr*dr > dx*dx+dy*dy
}

func enclosesWeakAll(a circle, basis []*circle) bool {
	for _, b := range basis {
		if !enclosesWeak(a, *b) {
			return false
		}
	}
	return true
}

// encloseBasis returns the smallest circle through the support set.
func encloseBasis(basis []*circle) circle {
	switch len(basis) {
	case 1:
		return *basis[0]
	case 2:
		return encloseBasis2(*basis[0], *basis[1])
	default:
		return encloseBasis3(*basis[0], *basis[1], *basis[2])
	}
}

// encloseBasis2 returns the smallest circle containing two circles.
func encloseBasis2(a, b circle) circle {
	x21 := b.x - a.x
	y21 := b.y - a.y
	r21 := b.r - a.r
	l := math.Sqrt(x21*x21 + y21*y21)
	return circle{
		x: (a.x + b.x + x21/l*r21) / 2,
		y: (a.y + b.y + y21/l*r21) / 2,
		r: (l + a.r + b.r) / 2,
	}
}

// encloseBasis3 returns the smallest circle containing three circles,
// solved as the Apollonius circle externally tangent to all three.
func encloseBasis3(a, b, c circle) circle {
	x1, y1, r1 := a.x, a.y, a.r
	x2, y2, r2 := b.x, b.y, b.r
	x3, y3, r3 := c.x, c.y, c.r

	a2 := x1 - x2
	a3 := x1 - x3
	b2 := y1 - y2
	b3 := y1 - y3
	c2 := r2 - r1
	c3 := r3 - r1
	d1 := x1*x1 + y1*y1 - r1*r1
	d2 := d1 - x2*x2 - y2*y2 + r2*r2
	d3 := d1 - x3*x3 - y3*y3 + r3*r3
	ab := a3*b2 - a2*b3
	xa := (b2*d3-b3*d2)/(ab*2) - x1
	xb := (b3*c2 - b2*c3) / ab
	ya := (a3*d2-a2*d3)/(ab*2) - y1
	yb := (a2*c3 - a3*c2) / ab
	ca := xb*xb + yb*yb - 1
	cb := 2 * (r1 + xa*xb + ya*yb)
	cc := xa*xa + ya*ya - r1*r1

	var r float64
	if math.Abs(ca) > 1e-6 {
		r = -(cb + math.Sqrt(cb*cb-4*ca*cc)) / (2 * ca)
	} else {
		r = -cc / cb
	}
	return circle{x: x1 + xa + xb*r, y: y1 + ya + yb*r, r: r}
}

// newLCG returns a deterministic pseudo-random source in [0, 1).
// Parameters are the classic Numerical Recipes constants.
func newLCG() func() float64 {
	const (
		mul = 1664525
		inc = 1013904223
		mod = 1 << 32
	)
	var state uint64 = 1
	return func() float64 {
		state = (mul*state + inc) % mod
		return float64(state) / mod
	}
}

// shuffle permutes cs in place using draws from random.
func shuffle(cs []*circle, random func() float64) {
	for i := len(cs); i > 0; {
		j := int(random() * float64(i))
		i--
		cs[i], cs[j] = cs[j], cs[i]
	}
}
