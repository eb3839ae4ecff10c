// Package camera maps between screen coordinates (origin top left, y down)
// and world coordinates (origin at the viewport centre, y up).
package camera

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const (
	minZoom  = 0.3
	maxZoom  = 3.0
	zoomStep = 1.2
)

type Camera struct {
	width, height float64
	center        vec.Vec2
	zoom          float64
}

func New() *Camera {
	return &Camera{zoom: 1}
}

// SetViewport records the size of the drawing surface in screen units.
func (c *Camera) SetViewport(width, height float64) {
	c.width, c.height = width, height
}

func (c *Camera) Viewport() (width, height float64) {
	return c.width, c.height
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

func (c *Camera) ZoomIn() {
	c.zoom = math.Min(c.zoom*zoomStep, maxZoom)
}

func (c *Camera) ZoomOut() {
	c.zoom = math.Max(c.zoom/zoomStep, minZoom)
}

// Reset restores unit zoom centred on the world origin.
func (c *Camera) Reset() {
	c.zoom = 1
	c.center = vec.Vec2{}
}

// Matrix is the world to screen transform, in the usual
// [a b c d e f] layout: x' = a·x + c·y + e, y' = b·x + d·y + f.
func (c *Camera) Matrix() matrix.Matrix {
	return matrix.Matrix{
		c.zoom, 0,
		0, -c.zoom,
		c.width/2 - c.zoom*c.center.X, c.height/2 + c.zoom*c.center.Y,
	}
}

func (c *Camera) ready() bool {
	return c.width > 0 && c.height > 0 && c.zoom > 0
}

func (c *Camera) WorldToScreen(p vec.Vec2) (vec.Vec2, bool) {
	if !c.ready() {
		return vec.Vec2{}, false
	}
	return apply(c.Matrix(), p), true
}

// ScreenToWorld fails until the viewport has a size.
func (c *Camera) ScreenToWorld(p vec.Vec2) (vec.Vec2, bool) {
	if !c.ready() {
		return vec.Vec2{}, false
	}
	inv, ok := invert(c.Matrix())
	if !ok {
		return vec.Vec2{}, false
	}
	return apply(inv, p), true
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// invert is [matrix.Matrix.Inv] for transforms that may be singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return m.Inv(), true
}
