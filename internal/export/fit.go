// Package export writes a recorded frame to PDF or PNG.
package export

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrEmpty is returned when there is nothing to export.
var ErrEmpty = errors.New("nothing to export")

type Options struct {
	Title      string
	Background color.Color
	// LineWidth is in output units: millimetres for PDF, pixels for PNG.
	LineWidth float64
	// Width and Height are the PNG size in pixels.
	Width, Height int
}

func (o Options) withDefaults() Options {
	if o.Background == nil {
		o.Background = color.White
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 0.5
	}
	if o.Width <= 0 {
		o.Width = 1024
	}
	if o.Height <= 0 {
		o.Height = 768
	}
	return o
}

// fit maps world coordinates (y up) onto an output area (y down), keeping
// the aspect ratio and centring the content.
type fit struct {
	bounds     rect.Rect
	scale      float64
	offX, offY float64
}

func newFit(b rect.Rect, width, height, margin float64) fit {
	w, h := b.URx-b.LLx, b.URy-b.LLy
	availW, availH := width-2*margin, height-2*margin
	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = min(availW/w, availH/h)
	case w > 0:
		scale = availW / w
	case h > 0:
		scale = availH / h
	}
	return fit{
		bounds: b,
		scale:  scale,
		offX:   margin + (availW-w*scale)/2,
		offY:   margin + (availH-h*scale)/2,
	}
}

func (f fit) point(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.offX + (p.X-f.bounds.LLx)*f.scale,
		Y: f.offY + (f.bounds.URy-p.Y)*f.scale,
	}
}

func (f fit) length(l float64) float64 {
	return l * f.scale
}

func rgb(c color.Color) (r, g, b int) {
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}
