package spline

import "seehuhn.de/go/geom/vec"

// charMatrix maps four control points to polynomial coefficients.
// Row i holds the weights of p0..p3 in the coefficient of u^i.
type charMatrix [4][4]float64

var bezierMatrix = charMatrix{
	{1, 0, 0, 0},
	{-3, 3, 0, 0},
	{3, -6, 3, 0},
	{-1, 3, -3, 1},
}

var bsplineMatrix = charMatrix{
	{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
	{-3.0 / 6, 0, 3.0 / 6, 0},
	{3.0 / 6, -6.0 / 6, 3.0 / 6, 0},
	{-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6},
}

// Catmull-Rom is the cardinal spline with tension 0.5.
var catmullRomMatrix = cardinalMatrix(0.5)

func cardinalMatrix(s float64) charMatrix {
	return charMatrix{
		{0, 1, 0, 0},
		{-s, 0, s, 0},
		{2 * s, s - 3, 3 - 2*s, -s},
		{-s, 2 - s, s - 2, s},
	}
}

func (m *charMatrix) segment(p0, p1, p2, p3 vec.Vec2) segment {
	var s segment
	for i := range s {
		s[i] = p0.Mul(m[i][0]).
			Add(p1.Mul(m[i][1])).
			Add(p2.Mul(m[i][2])).
			Add(p3.Mul(m[i][3]))
	}
	return s
}

// segment is a cubic polynomial c0 + c1·u + c2·u² + c3·u³ over u in [0, 1].
type segment [4]vec.Vec2

func (s segment) eval(u float64) vec.Vec2 {
	return s[0].Add(s[1].Add(s[2].Add(s[3].Mul(u)).Mul(u)).Mul(u))
}

type curve []segment

// sample evaluates the curve at SamplesPerSegment*len(c)+1 evenly spaced
// parameter values. Knots are hit with u == 0 exactly, so interpolating
// curves reproduce their control points without drift.
func (c curve) sample() []vec.Vec2 {
	if len(c) == 0 {
		return nil
	}
	resolution := SamplesPerSegment * len(c)
	out := make([]vec.Vec2, 0, resolution+1)
	for i := 0; i <= resolution; i++ {
		idx := i / SamplesPerSegment
		u := float64(i%SamplesPerSegment) / SamplesPerSegment
		if idx == len(c) {
			idx, u = len(c)-1, 1
		}
		out = append(out, c[idx].eval(u))
	}
	return out
}
