package ui

import (
	"image/color"
	"sync"

	"CurveBoard/internal/camera"
	"CurveBoard/internal/frame"
	"CurveBoard/internal/interact"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"seehuhn.de/go/geom/vec"
)

// BoardWidget is the drawing surface. It queues raw pointer and key events
// for the frame loop and shows the draw calls of the latest frame.
type BoardWidget struct {
	widget.BaseWidget
	camera *camera.Camera

	mu        sync.Mutex
	pending   []interact.Event
	removeKey fyne.KeyName

	frame      frame.DrawList
	lineWidth  float32
	background color.Color
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ frame.Input = (*BoardWidget)(nil)

func NewBoardWidget(cam *camera.Camera, removeKey string) *BoardWidget {
	b := &BoardWidget{
		camera:     cam,
		removeKey:  fyne.KeyName(removeKey),
		lineWidth:  2,
		background: color.NRGBA{R: 43, G: 43, B: 43, A: 255},
	}
	b.ExtendBaseWidget(b)
	return b
}

// Poll hands the queued events to the frame loop and empties the queue.
func (b *BoardWidget) Poll() []interact.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.pending
	b.pending = nil
	return events
}

func (b *BoardWidget) push(events ...interact.Event) {
	b.mu.Lock()
	b.pending = append(b.pending, events...)
	b.mu.Unlock()
}

func moved(pos fyne.Position) interact.Event {
	return interact.Event{
		Kind:     interact.PointerMoved,
		Position: vec.Vec2{X: float64(pos.X), Y: float64(pos.Y)},
	}
}

func button(e *desktop.MouseEvent) (interact.Button, bool) {
	switch e.Button {
	case desktop.MouseButtonPrimary:
		return interact.ButtonLeft, true
	case desktop.MouseButtonSecondary:
		return interact.ButtonRight, true
	}
	return 0, false
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	btn, ok := button(e)
	if !ok {
		return
	}
	b.push(moved(e.Position), interact.Event{Kind: interact.ButtonDown, Button: btn})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	btn, ok := button(e)
	if !ok {
		return
	}
	b.push(moved(e.Position), interact.Event{Kind: interact.ButtonUp, Button: btn})
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.push(moved(e.Position))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.push(moved(e.Position))
}

// MouseOut keeps the last known pointer position.
func (b *BoardWidget) MouseOut() {}

// Dragged replaces MouseMoved while the primary button is down.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.push(moved(e.Position))
}

// DragEnd also ends the press, in case the release lands outside the board
// and MouseUp never arrives.
func (b *BoardWidget) DragEnd() {
	b.push(interact.Event{Kind: interact.ButtonUp, Button: interact.ButtonLeft})
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.camera.ZoomIn()
	} else if e.Scrolled.DY < 0 {
		b.camera.ZoomOut()
	}
	b.Refresh()
}

// KeyDown is installed on the window canvas so the board sees keys
// without holding focus.
func (b *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	b.mu.Lock()
	hit := e.Name == b.removeKey
	b.mu.Unlock()
	if hit {
		b.RequestRemove()
	}
}

// RequestRemove queues a remove-last event as if the remove key was hit.
func (b *BoardWidget) RequestRemove() {
	b.push(interact.Event{Kind: interact.RemoveKey})
}

func (b *BoardWidget) SetRemoveKey(name string) {
	b.mu.Lock()
	b.removeKey = fyne.KeyName(name)
	b.mu.Unlock()
}

func (b *BoardWidget) SetAppearance(background color.Color, lineWidth float32) {
	b.background = background
	b.lineWidth = lineWidth
	b.Refresh()
}

// ShowFrame copies the draw calls of a finished frame and repaints.
func (b *BoardWidget) ShowFrame(dl *frame.DrawList) {
	b.frame.Reset()
	b.frame.Ops = append(b.frame.Ops, dl.Ops...)
	b.Refresh()
}

// LastFrame returns a copy of the frame currently on screen.
func (b *BoardWidget) LastFrame() *frame.DrawList {
	var dl frame.DrawList
	b.frame.Replay(&dl)
	return &dl
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
