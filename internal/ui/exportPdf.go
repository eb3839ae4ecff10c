package ui

import (
	"io"

	"CurveBoard/internal/export"
	"CurveBoard/internal/frame"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Screen pixels to PDF millimetres for stroke widths.
const pxToMM = 0.25

type frameWriter func(w io.Writer, dl *frame.DrawList) error

func (e *Editor) exportOptions() export.Options {
	w, h := e.camera.Viewport()
	return export.Options{
		Title:      e.cfg.Window.Title,
		Background: e.cfg.Background(),
		LineWidth:  float64(e.cfg.Curves.LineWidth),
		Width:      int(w),
		Height:     int(h),
	}
}

func (e *Editor) exportPDF() {
	e.saveFrame("curves.pdf", "PDF", func(w io.Writer, dl *frame.DrawList) error {
		opt := e.exportOptions()
		opt.LineWidth *= pxToMM
		return export.PDF(w, dl, opt)
	})
}

func (e *Editor) exportPNG() {
	e.saveFrame("curves.png", "PNG", func(w io.Writer, dl *frame.DrawList) error {
		return export.PNG(w, dl, e.exportOptions())
	})
}

// saveFrame snapshots the frame on screen before the dialog opens, so the
// export shows what the user saw when asking for it.
func (e *Editor) saveFrame(name, kind string, write frameWriter) {
	dl := e.board.LastFrame()
	if len(dl.Ops) == 0 {
		e.setMessage("Nothing to export")
		return
	}
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			e.log.Error("save dialog", "err", err)
			e.setMessage("Export failed")
			return
		}
		if wc == nil {
			return // cancelled
		}
		e.writeFrame(wc, kind, dl, write)
	}, e.window)
	d.SetFileName(name)
	d.Show()
}

func (e *Editor) writeFrame(wc fyne.URIWriteCloser, kind string, dl *frame.DrawList, write frameWriter) {
	defer func() {
		if err := wc.Close(); err != nil {
			e.log.Error("close export", "err", err)
		}
	}()

	if err := write(wc, dl); err != nil {
		e.log.Error("export failed", "kind", kind, "uri", wc.URI().String(), "err", err)
		e.setMessage("Error writing " + kind)
		return
	}
	e.log.Info("frame exported", "kind", kind, "uri", wc.URI().String(), "ops", len(dl.Ops))
	e.setMessage("Exported " + kind + " to " + wc.URI().Name())
}
