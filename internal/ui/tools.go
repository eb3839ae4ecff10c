package ui

import (
	"image/color"

	"CurveBoard/internal/spline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Curve legend swatch ---
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c), OnTapped: tapped}
	s.rect.SetMinSize(fyne.NewSize(20, 20))
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

type legendEntry struct {
	swatch *colorSwatch
	check  *widget.Check
}

func (e *Editor) newLegendEntry(kind spline.Kind) *legendEntry {
	entry := &legendEntry{check: widget.NewCheck(kind.String(), nil)}
	entry.check.SetChecked(e.engine.Visible(kind))
	entry.check.OnChanged = func(on bool) {
		e.engine.SetVisible(kind, on)
		e.log.Debug("curve visibility", "kind", kind.String(), "visible", on)
	}
	entry.swatch = newColorSwatch(e.cfg.CurveColors()[kind], func() {
		entry.check.SetChecked(!entry.check.Checked)
	})
	return entry
}

// --- The Main Toolbar ---
func (e *Editor) newToolbar() fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), func() {
			e.camera.ZoomIn()
			e.board.Refresh()
		}),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() {
			e.camera.ZoomOut()
			e.board.Refresh()
		}),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() {
			e.camera.Reset()
			e.board.Refresh()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), e.board.RequestRemove), // Remove last point
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), e.exportPDF),
		widget.NewToolbarAction(theme.FileImageIcon(), e.exportPNG),
	)

	curves := container.NewHBox()
	for _, kind := range spline.Kinds {
		entry := e.newLegendEntry(kind)
		e.legend[kind] = entry
		curves.Add(entry.swatch)
		curves.Add(entry.check)
	}

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Curves:"),
		curves,
		layout.NewSpacer(),
	)
}
