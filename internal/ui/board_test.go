package ui

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"CurveBoard/internal/camera"
	"CurveBoard/internal/config"
	"CurveBoard/internal/frame"
	"CurveBoard/internal/interact"
	"CurveBoard/internal/spline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/vec"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     b,
	}
}

func TestBoardQueuesEvents(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(camera.New(), "C")

	b.MouseMoved(mouse(1, 2, 0))
	b.MouseDown(mouse(3, 4, desktop.MouseButtonPrimary))
	b.MouseDown(mouse(3, 4, desktop.MouseButtonTertiary))
	b.KeyDown(&fyne.KeyEvent{Name: fyne.KeyX})
	b.KeyDown(&fyne.KeyEvent{Name: fyne.KeyC})
	b.MouseUp(mouse(5, 6, desktop.MouseButtonPrimary))

	events := b.Poll()
	require.Len(t, events, 6)
	assert.Equal(t, interact.Event{Kind: interact.PointerMoved, Position: vec.Vec2{X: 1, Y: 2}}, events[0])
	assert.Equal(t, interact.ButtonDown, events[2].Kind)
	assert.Equal(t, interact.ButtonLeft, events[2].Button)
	assert.Equal(t, interact.RemoveKey, events[3].Kind)
	assert.Equal(t, interact.ButtonUp, events[5].Kind)

	assert.Empty(t, b.Poll())

	b.SetRemoveKey("BackSpace")
	b.KeyDown(&fyne.KeyEvent{Name: fyne.KeyC})
	b.KeyDown(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, []interact.Event{{Kind: interact.RemoveKey}}, b.Poll())
}

func TestBoardRendersFrame(t *testing.T) {
	test.NewTempApp(t)
	cam := camera.New()
	b := NewBoardWidget(cam, "C")
	b.Resize(fyne.NewSize(400, 300))
	w, h := cam.Viewport()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)

	var dl frame.DrawList
	dl.LineStrip([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, colornames.White)
	dl.Circle(vec.Vec2{X: 10, Y: 10}, 5, colornames.Green)
	b.ShowFrame(&dl)

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 4)
	first, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(200, 150), first.Position1)
	assert.Equal(t, fyne.NewPos(210, 150), first.Position2)

	circle, ok := objects[3].(*canvas.Circle)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(205, 135), circle.Position1)
	assert.Equal(t, fyne.NewPos(215, 145), circle.Position2)

	// A smaller frame reuses the pooled objects and drops the rest.
	dl.Reset()
	dl.Circle(vec.Vec2{}, 5, colornames.Red)
	b.ShowFrame(&dl)
	objects = test.WidgetRenderer(b).Objects()
	assert.Len(t, objects, 2)
	assert.Same(t, circle, objects[1])

	assert.Len(t, b.LastFrame().Ops, 1)
}

func TestBoardWithoutViewportDrawsNothing(t *testing.T) {
	test.NewTempApp(t)
	b := NewBoardWidget(camera.New(), "C")

	var dl frame.DrawList
	dl.LineStrip([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, colornames.White)
	dl.Circle(vec.Vec2{}, 5, colornames.Green)
	b.ShowFrame(&dl)

	objects := test.WidgetRenderer(b).Objects()
	assert.Len(t, objects, 1)
}

// newTestEditor builds an editor whose board has a viewport, and returns
// a helper that maps world coordinates to board positions.
func newTestEditor(t *testing.T) (*Editor, func(x, y float64) (float32, float32)) {
	t.Helper()
	e := NewEditor(test.NewTempApp(t), config.Default(), quiet)
	if w, _ := e.camera.Viewport(); w == 0 {
		e.board.Resize(fyne.NewSize(400, 300))
	}
	at := func(x, y float64) (float32, float32) {
		s, ok := e.camera.WorldToScreen(vec.Vec2{X: x, Y: y})
		require.True(t, ok)
		return float32(s.X), float32(s.Y)
	}
	return e, at
}

func TestEditorTick(t *testing.T) {
	e, at := newTestEditor(t)

	x, y := at(10, 10)
	e.board.MouseDown(mouse(x, y, desktop.MouseButtonSecondary))
	e.tick()

	store := e.engine.Store()
	require.Equal(t, 1, store.Len())
	assert.InDelta(t, 10, store.At(0).Position.X, 1e-3)
	assert.InDelta(t, 10, store.At(0).Position.Y, 1e-3)
	assert.Equal(t, "1 points, idle", e.status.Text)

	x, y = at(11, 9)
	e.board.MouseDown(mouse(x, y, desktop.MouseButtonPrimary))
	e.tick()
	assert.Equal(t, "1 points, dragging #0", e.status.Text)

	x, y = at(50, 0)
	e.board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
	e.tick()
	assert.InDelta(t, 50, store.At(0).Position.X, 1e-3)
	assert.InDelta(t, 0, store.At(0).Position.Y, 1e-3)

	e.board.MouseUp(mouse(x, y, desktop.MouseButtonPrimary))
	e.board.RequestRemove()
	e.tick()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "0 points, idle", e.status.Text)
}

func TestEditorLegendTogglesCurves(t *testing.T) {
	e, _ := newTestEditor(t)

	entry := e.legend[spline.KindBezier]
	require.NotNil(t, entry)
	test.Tap(entry.swatch)
	assert.False(t, e.engine.Visible(spline.KindBezier))
	test.Tap(entry.check)
	assert.True(t, e.engine.Visible(spline.KindBezier))
}

func TestEditorApplyConfig(t *testing.T) {
	e, _ := newTestEditor(t)

	cfg := config.Default()
	cfg.Points.SelectedRadius = 25
	cfg.Curves.Cardinal.Visible = false
	cfg.Keys.Remove = "Delete"
	e.ApplyConfig(cfg)

	assert.Equal(t, 25.0, e.engine.Store().Style().SelectedRadius)
	assert.False(t, e.engine.Visible(spline.KindCardinal))
	assert.False(t, e.legend[spline.KindCardinal].check.Checked)
	assert.Equal(t, "Config reloaded", e.message.Text)

	e.board.KeyDown(&fyne.KeyEvent{Name: fyne.KeyDelete})
	assert.Len(t, e.board.Poll(), 1)
}

type memWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (m *memWriter) Close() error  { m.closed = true; return nil }
func (m *memWriter) URI() fyne.URI { return m.uri }

func TestWriteFrame(t *testing.T) {
	e, at := newTestEditor(t)

	x, y := at(0, 0)
	e.board.MouseDown(mouse(x, y, desktop.MouseButtonSecondary))
	e.tick()

	wc := &memWriter{uri: storage.NewFileURI("/tmp/curves.png")}
	e.writeFrame(wc, "PNG", e.board.LastFrame(), func(w io.Writer, dl *frame.DrawList) error {
		_, err := w.Write([]byte("ok"))
		return err
	})
	assert.True(t, wc.closed)
	assert.Equal(t, "ok", wc.String())
	assert.Equal(t, "Exported PNG to curves.png", e.message.Text)
}
