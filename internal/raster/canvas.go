package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	ft "github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	xdraw "golang.org/x/image/draw"
)

// Canvas is an in-memory Surface backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	r   *ft.Rasterizer
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of w x h pixels. Non-positive
// dimensions are raised to 1.
func NewCanvas(w, h int) *Canvas {
	w, h = clampSize(w, h)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		r:   ft.NewRasterizer(w, h),
	}
}

func clampSize(w, h int) (int, int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image. Callers must not modify it.
func (c *Canvas) Image() image.Image { return c.img }

func (c *Canvas) Resize(w, h int) {
	w, h = clampSize(w, h)
	if w == c.Width() && h == c.Height() {
		return
	}
	next := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(next, image.Point{}, c.img, c.img.Bounds(), xdraw.Src, nil)
	c.img = next
	c.r.SetBounds(w, h)
}

func (c *Canvas) Snapshot() Snapshot { return NewSnapshot(c.img) }

func (c *Canvas) Restore(s Snapshot) {
	if s.IsZero() {
		return
	}
	if s.img.Bounds() == c.img.Bounds() {
		copy(c.img.Pix, s.img.Pix)
		return
	}
	xdraw.Copy(c.img, image.Point{}, s.img, s.img.Bounds(), xdraw.Src, nil)
}

func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	p := NewPath()
	p.Rect(x, y, w, h)
	c.Fill(p, col)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) Fill(path *Path, col color.Color) {
	if path == nil {
		return
	}
	q := path.toFixed(true)
	if len(q) == 0 {
		return
	}
	c.r.Clear()
	c.r.UseNonZeroWinding = true
	c.r.AddPath(q)
	c.paint(col)
}

func (c *Canvas) Stroke(path *Path, style StrokeStyle) {
	if path == nil || style.Width <= 0 {
		return
	}
	q := path.toFixed(false)
	if len(q) == 0 {
		return
	}
	c.r.Clear()
	c.r.UseNonZeroWinding = true
	c.r.AddStroke(q, fixed.Int26_6(math.Round(style.Width*64)), ft.RoundCapper, ft.RoundJoiner)
	c.paint(style.Color)
}

func (c *Canvas) paint(col color.Color) {
	if col == nil {
		col = color.Black
	}
	painter := ft.NewRGBAPainter(c.img)
	painter.SetColor(col)
	c.r.Rasterize(painter)
}

func (c *Canvas) ReadRegion(r image.Rectangle) *image.RGBA {
	src := r.Intersect(c.img.Bounds())
	out := image.NewRGBA(src)
	if !src.Empty() {
		draw.Draw(out, src, c.img, src.Min, draw.Src)
	}
	return out
}

func (c *Canvas) WriteRegion(src image.Image, at image.Point) {
	if src == nil {
		return
	}
	xdraw.Copy(c.img, at, src, src.Bounds(), xdraw.Src, nil)
}
