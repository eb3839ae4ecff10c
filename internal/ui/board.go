package ui

import (
	"image/color"

	"CurveBoard/internal/frame"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"seehuhn.de/go/geom/vec"
)

// boardRenderer turns the recorded frame into fyne canvas objects.
// Lines and circles are pooled across frames since a curve alone is a
// few hundred segments.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle

	lines   []*canvas.Line
	circles []*canvas.Circle
	objects []fyne.CanvasObject

	usedLines, usedCircles int
}

var _ frame.Renderer = (*boardRenderer)(nil)

func newBoardRenderer(b *BoardWidget) *boardRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(b.background),
	}
	r.rebuild()
	return r
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.camera.SetViewport(float64(size.Width), float64(size.Height))
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) rebuild() {
	r.background.FillColor = r.board.background
	r.usedLines, r.usedCircles = 0, 0
	r.board.frame.Replay(r)

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)
	for _, l := range r.lines[:r.usedLines] {
		r.objects = append(r.objects, l)
	}
	// Circles go on top of every curve.
	for _, c := range r.circles[:r.usedCircles] {
		r.objects = append(r.objects, c)
	}
}

func (r *boardRenderer) toScreen(p vec.Vec2) (fyne.Position, bool) {
	s, ok := r.board.camera.WorldToScreen(p)
	if !ok {
		return fyne.Position{}, false
	}
	return fyne.NewPos(float32(s.X), float32(s.Y)), true
}

func (r *boardRenderer) LineStrip(points []vec.Vec2, c color.Color) {
	if len(points) < 2 {
		return
	}
	prev, ok := r.toScreen(points[0])
	if !ok {
		return
	}
	for _, p := range points[1:] {
		cur, ok := r.toScreen(p)
		if !ok {
			return
		}
		l := r.nextLine()
		l.StrokeColor = c
		l.StrokeWidth = r.board.lineWidth
		l.Position1 = prev
		l.Position2 = cur
		prev = cur
	}
}

func (r *boardRenderer) Circle(center vec.Vec2, radius float64, c color.Color) {
	pos, ok := r.toScreen(center)
	if !ok {
		return
	}
	rad := float32(radius * r.board.camera.Zoom())
	circle := r.nextCircle()
	circle.FillColor = c
	circle.Position1 = fyne.NewPos(pos.X-rad, pos.Y-rad)
	circle.Position2 = fyne.NewPos(pos.X+rad, pos.Y+rad)
}

func (r *boardRenderer) nextLine() *canvas.Line {
	if r.usedLines == len(r.lines) {
		r.lines = append(r.lines, canvas.NewLine(color.White))
	}
	l := r.lines[r.usedLines]
	r.usedLines++
	return l
}

func (r *boardRenderer) nextCircle() *canvas.Circle {
	if r.usedCircles == len(r.circles) {
		r.circles = append(r.circles, canvas.NewCircle(color.White))
	}
	c := r.circles[r.usedCircles]
	r.usedCircles++
	return c
}
