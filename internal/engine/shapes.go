package engine

import (
	"image/color"
	"math"

	"github.com/example/easel/internal/raster"
)

func (e *Engine) strokeColor() color.RGBA {
	return e.style.StrokeFor(e.g.tool == Eraser)
}

func (e *Engine) strokeStyle() raster.StrokeStyle {
	return raster.StrokeStyle{Color: e.strokeColor(), Width: float64(e.style.Brush)}
}

func (e *Engine) strokeSegment(from, to raster.Point) {
	p := raster.NewPath()
	p.MoveTo(from.X, from.Y)
	p.LineTo(to.X, to.Y)
	e.surface.Stroke(p, e.strokeStyle())
}

// paintClosed fills path when fill mode is on and then strokes its outline.
func (e *Engine) paintClosed(path *raster.Path) {
	if e.style.FillMode {
		e.surface.Fill(path, e.style.Fill)
	}
	e.surface.Stroke(path, e.strokeStyle())
}

func drawLine(e *Engine, a, p raster.Point) {
	e.strokeSegment(a, p)
}

func drawRect(e *Engine, a, p raster.Point) {
	d := p.Sub(a)
	path := raster.NewPath()
	path.Rect(a.X, a.Y, d.X, d.Y)
	e.paintClosed(path)
}

func drawCircle(e *Engine, a, p raster.Point) {
	path := raster.NewPath()
	path.Circle(a.X, a.Y, a.Dist(p))
	e.paintClosed(path)
}

// drawTriangle puts the apex on the anchor and the base on the pointer's row,
// as wide as the horizontal drag distance.
func drawTriangle(e *Engine, a, p raster.Point) {
	d := p.Sub(a)
	path := raster.NewPath()
	path.Polygon(
		a,
		raster.Pt(a.X-d.X/2, a.Y+d.Y),
		raster.Pt(a.X+d.X/2, a.Y+d.Y),
	)
	e.paintClosed(path)
}

func drawPolygon(e *Engine, a, p raster.Point) {
	path := raster.NewPath()
	path.Polygon(RegularPolygon(a, a.Dist(p), e.style.Sides)...)
	e.paintClosed(path)
}

// RegularPolygon returns the vertices of a regular polygon with the given
// number of sides. The first vertex points straight up; with an even side
// count the shape is turned half a step so a flat edge sits on top.
func RegularPolygon(c raster.Point, r float64, sides int) []raster.Point {
	if sides < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(sides)
	start := -math.Pi / 2
	if sides%2 == 0 {
		start -= step / 2
	}
	pts := make([]raster.Point, sides)
	for i := range pts {
		a := start + float64(i)*step
		pts[i] = raster.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}
