package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"CurveBoard/internal/frame"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

const (
	pngMargin     = 16 // px
	circleSides   = 32
	jointSides    = 8
	minPixelWidth = 1
)

// PNG rasterizes the frame into an image of opt.Width x opt.Height pixels.
func PNG(w io.Writer, dl *frame.DrawList, opt Options) error {
	img, err := Rasterize(dl, opt)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Rasterize draws the frame into a new RGBA image.
func Rasterize(dl *frame.DrawList, opt Options) (*image.RGBA, error) {
	bounds, ok := dl.Bounds()
	if !ok {
		return nil, ErrEmpty
	}
	opt = opt.withDefaults()

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	f := newFit(bounds, float64(opt.Width), float64(opt.Height), pngMargin)
	half := math.Max(opt.LineWidth, minPixelWidth) / 2

	z := vector.NewRasterizer(opt.Width, opt.Height)
	for _, op := range dl.Ops {
		z.Reset(opt.Width, opt.Height)
		z.DrawOp = draw.Over
		switch op.Kind {
		case frame.OpLineStrip:
			if len(op.Points) < 2 {
				continue
			}
			prev := f.point(op.Points[0])
			polygon(z, prev, half, jointSides)
			for _, pt := range op.Points[1:] {
				cur := f.point(pt)
				quad(z, prev, cur, half)
				polygon(z, cur, half, jointSides)
				prev = cur
			}
		case frame.OpCircle:
			polygon(z, f.point(op.Center), f.length(op.Radius), circleSides)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(op.Color), image.Point{})
	}
	return img, nil
}

// quad adds the rectangle around segment a-b. All shapes are wound the
// same way so overlapping parts do not cancel out.
func quad(z *vector.Rasterizer, a, b vec.Vec2, half float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(half / l)
	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}

func polygon(z *vector.Rasterizer, c vec.Vec2, r float64, sides int) {
	for i := range sides + 1 {
		theta := -2 * math.Pi * float64(i) / float64(sides)
		x, y := float32(c.X+r*math.Cos(theta)), float32(c.Y+r*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
