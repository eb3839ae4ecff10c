package state

import (
	"image/color"

	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"
)

// ControlPoint is a user-placed anchor of the curves.
type ControlPoint struct {
	ID       string
	Position vec.Vec2
	Selected bool

	// SelectedRadius doubles as the pointer hit-test threshold.
	DisplayRadius  float64
	SelectedRadius float64
	DefaultColor   color.RGBA
	SelectedColor  color.RGBA
}

// Radius is the radius the point is drawn with.
func (p ControlPoint) Radius() float64 {
	if p.Selected {
		return p.SelectedRadius
	}
	return p.DisplayRadius
}

// Color is the color the point is drawn with.
func (p ControlPoint) Color() color.RGBA {
	if p.Selected {
		return p.SelectedColor
	}
	return p.DefaultColor
}

// Style holds the display attributes given to newly created points.
type Style struct {
	DisplayRadius  float64
	SelectedRadius float64
	DefaultColor   color.RGBA
	SelectedColor  color.RGBA
}

func DefaultStyle() Style {
	return Style{
		DisplayRadius:  5,
		SelectedRadius: 10,
		DefaultColor:   colornames.Green,
		SelectedColor:  colornames.Red,
	}
}
