// Package curve turns pointer samples into a smooth path by chaining
// quadratic segments through the midpoints of consecutive samples.
package curve

import "github.com/example/easel/internal/raster"

// MarkerSize is the edge length of the square drawn on each sample while a
// curve is being previewed.
const MarkerSize = 4

// Smoother accumulates the samples of one curve gesture.
type Smoother struct {
	pts []raster.Point
}

// Add appends a sample.
func (s *Smoother) Add(p raster.Point) { s.pts = append(s.pts, p) }

// Len returns the number of samples.
func (s *Smoother) Len() int { return len(s.pts) }

// Reset discards every sample.
func (s *Smoother) Reset() { s.pts = s.pts[:0] }

// Points returns a copy of the samples.
func (s *Smoother) Points() []raster.Point {
	out := make([]raster.Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// Path returns the smoothed path through the current samples.
func (s *Smoother) Path() *raster.Path { return Smooth(s.pts) }

// Smooth builds the path for pts. Fewer than two points give an empty path
// and two points a straight segment. Longer runs start at pts[0], use every
// interior sample as a control point with the curve passing through the
// midpoints between samples, and end exactly on the last sample.
func Smooth(pts []raster.Point) *raster.Path {
	p := raster.NewPath()
	n := len(pts)
	if n < 2 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if n == 2 {
		p.LineTo(pts[1].X, pts[1].Y)
		return p
	}
	for i := 0; i < n-2; i++ {
		m := pts[i].Mid(pts[i+1])
		p.QuadTo(pts[i].X, pts[i].Y, m.X, m.Y)
	}
	c, end := pts[n-2], pts[n-1]
	p.QuadTo(c.X, c.Y, end.X, end.Y)
	return p
}

// Markers returns one MarkerSize square centred on every point.
func Markers(pts []raster.Point) *raster.Path {
	p := raster.NewPath()
	half := float64(MarkerSize) / 2
	for _, pt := range pts {
		p.Rect(pt.X-half, pt.Y-half, MarkerSize, MarkerSize)
	}
	return p
}
