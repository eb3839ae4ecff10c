package export

import (
	"fmt"
	"io"

	"CurveBoard/internal/frame"

	"github.com/jung-kurt/gofpdf"
)

const pdfMargin = 10 // mm

// PDF draws the frame on a single landscape A4 page.
func PDF(w io.Writer, dl *frame.DrawList, opt Options) error {
	bounds, ok := dl.Bounds()
	if !ok {
		return ErrEmpty
	}
	opt = opt.withDefaults()

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetCreator("CurveBoard", true)
	if opt.Title != "" {
		p.SetTitle(opt.Title, true)
	}
	p.AddPage()
	pageW, pageH := p.GetPageSize()

	p.SetFillColor(rgb(opt.Background))
	p.Rect(0, 0, pageW, pageH, "F")

	f := newFit(bounds, pageW, pageH, pdfMargin)
	p.SetLineWidth(opt.LineWidth)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, op := range dl.Ops {
		switch op.Kind {
		case frame.OpLineStrip:
			if len(op.Points) < 2 {
				continue
			}
			p.SetDrawColor(rgb(op.Color))
			start := f.point(op.Points[0])
			p.MoveTo(start.X, start.Y)
			for _, pt := range op.Points[1:] {
				q := f.point(pt)
				p.LineTo(q.X, q.Y)
			}
			p.DrawPath("D")
		case frame.OpCircle:
			p.SetFillColor(rgb(op.Color))
			c := f.point(op.Center)
			p.Circle(c.X, c.Y, f.length(op.Radius), "F")
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
