// Package spline converts ordered control point sequences into polylines.
//
// Every function in this package is pure: the input slice is never
// modified and each call returns a freshly allocated result. A nil result
// means there is nothing to draw for that curve kind.
package spline

import "seehuhn.de/go/geom/vec"

// SamplesPerSegment is the number of steps each cubic segment is split into.
// A curve with n segments is sampled at 100*n+1 points.
const SamplesPerSegment = 100

// Kind identifies one of the curve representations drawn through the
// control points.
type Kind int

const (
	KindLinestrip Kind = iota
	KindBSpline
	KindCardinal
	KindBezier
)

// Kinds lists every curve kind in draw order.
var Kinds = []Kind{KindLinestrip, KindBSpline, KindCardinal, KindBezier}

func (k Kind) String() string {
	switch k {
	case KindLinestrip:
		return "linestrip"
	case KindBSpline:
		return "bspline"
	case KindCardinal:
		return "cardinal"
	case KindBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Tessellate dispatches to the function for kind.
func Tessellate(kind Kind, points []vec.Vec2) []vec.Vec2 {
	switch kind {
	case KindLinestrip:
		return Linestrip(points)
	case KindBSpline:
		return BSpline(points)
	case KindCardinal:
		return Cardinal(points)
	case KindBezier:
		return Bezier(points)
	}
	return nil
}

// Linestrip returns a copy of the control polygon.
func Linestrip(points []vec.Vec2) []vec.Vec2 {
	if len(points) == 0 {
		return nil
	}
	out := make([]vec.Vec2, len(points))
	copy(out, points)
	return out
}

// BSpline samples a uniform cubic B-spline through points.
//
// The sequence is padded with a mirrored phantom point at each end, so two
// or more points give len(points)-1 segments and the curve starts and ends
// on the first and last control point. Interior points are approximated,
// not interpolated.
func BSpline(points []vec.Vec2) []vec.Vec2 {
	if len(points) < 2 {
		return nil
	}
	return windows(&bsplineMatrix, extend(points)).sample()
}

// Cardinal samples a Catmull-Rom spline, which passes through every
// control point. End segments use the same mirrored phantom points as
// [BSpline].
func Cardinal(points []vec.Vec2) []vec.Vec2 {
	if len(points) < 2 {
		return nil
	}
	return windows(&catmullRomMatrix, extend(points)).sample()
}

// Bezier treats exactly four points as a single cubic Bézier segment:
// two anchors with two handles between them. Any other count yields nil.
func Bezier(points []vec.Vec2) []vec.Vec2 {
	if len(points) != 4 {
		return nil
	}
	c := curve{bezierMatrix.segment(points[0], points[1], points[2], points[3])}
	return c.sample()
}

// extend mirrors the second and second-to-last points across the ends.
func extend(points []vec.Vec2) []vec.Vec2 {
	n := len(points)
	ext := make([]vec.Vec2, 0, n+2)
	ext = append(ext, points[0].Mul(2).Sub(points[1]))
	ext = append(ext, points...)
	ext = append(ext, points[n-1].Mul(2).Sub(points[n-2]))
	return ext
}

// windows builds one segment per run of four consecutive points.
func windows(m *charMatrix, points []vec.Vec2) curve {
	var c curve
	for i := 0; i+3 < len(points); i++ {
		c = append(c, m.segment(points[i], points[i+1], points[i+2], points[i+3]))
	}
	return c
}
