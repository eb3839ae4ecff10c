package frame

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Renderer receives the draw calls of a frame. Calls are fire-and-forget.
type Renderer interface {
	LineStrip(points []vec.Vec2, c color.Color)
	Circle(center vec.Vec2, radius float64, c color.Color)
}

type OpKind int

const (
	OpLineStrip OpKind = iota
	OpCircle
)

// Op is one recorded draw call, in world coordinates.
type Op struct {
	Kind   OpKind
	Points []vec.Vec2
	Center vec.Vec2
	Radius float64
	Color  color.Color
}

// DrawList records draw calls so a frame can be replayed later, e.g. into
// the canvas and again into an export.
type DrawList struct {
	Ops []Op
}

func (d *DrawList) LineStrip(points []vec.Vec2, c color.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpLineStrip, Points: points, Color: c})
}

func (d *DrawList) Circle(center vec.Vec2, radius float64, c color.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Color: c})
}

func (d *DrawList) Reset() {
	clear(d.Ops)
	d.Ops = d.Ops[:0]
}

// Replay sends the recorded calls to r in their original order.
func (d *DrawList) Replay(r Renderer) {
	for _, op := range d.Ops {
		switch op.Kind {
		case OpLineStrip:
			r.LineStrip(op.Points, op.Color)
		case OpCircle:
			r.Circle(op.Center, op.Radius, op.Color)
		}
	}
}

// Count returns the number of recorded calls of the given kind.
func (d *DrawList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Bounds is the world space bounding box of everything drawn, circles
// included. It reports false for an empty list.
func (d *DrawList) Bounds() (rect.Rect, bool) {
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, op := range d.Ops {
		switch op.Kind {
		case OpLineStrip:
			for _, p := range op.Points {
				b.Add(p.X, p.Y)
			}
		case OpCircle:
			b.Add(op.Center.X-op.Radius, op.Center.Y-op.Radius)
			b.Add(op.Center.X+op.Radius, op.Center.Y+op.Radius)
		}
	}
	if b.LLx > b.URx {
		return rect.Rect{}, false
	}
	return b, true
}
