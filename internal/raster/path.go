package raster

import (
	"math"

	ft "github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// Point is a position in surface coordinates. The pixel (x, y) covers the
// half-open square [x, x+1) x [y, y+1).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

func (p Point) fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// SegmentKind identifies the shape of a path segment.
type SegmentKind uint8

const (
	// SegmentLine is a straight segment from From to To.
	SegmentLine SegmentKind = iota
	// SegmentQuad is a quadratic Bezier from From to To with control Ctrl.
	SegmentQuad
)

// Segment is one drawing command of a Path with its start point resolved.
type Segment struct {
	Kind SegmentKind
	From Point
	Ctrl Point
	To   Point
}

// Eval returns the point of the segment at parameter t in [0, 1].
func (s Segment) Eval(t float64) Point {
	if s.Kind == SegmentLine {
		return s.From.Add(s.To.Sub(s.From).Mul(t))
	}
	u := 1 - t
	return s.From.Mul(u * u).Add(s.Ctrl.Mul(2 * u * t)).Add(s.To.Mul(t * t))
}

type subpath struct {
	start  Point
	segs   []Segment
	closed bool
}

// Path is a sequence of subpaths made of line and quadratic segments. It is
// the geometry handed to Surface.Fill and Surface.Stroke.
type Path struct {
	subs []subpath
	cur  Point
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.subs = append(p.subs, subpath{start: pt})
	p.cur = pt
}

// LineTo adds a straight segment from the current point. Without a current
// subpath it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(x, y)
		return
	}
	to := Pt(x, y)
	p.append(Segment{Kind: SegmentLine, From: p.cur, To: to})
}

// QuadTo adds a quadratic curve with control (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.subs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.append(Segment{Kind: SegmentQuad, From: p.cur, Ctrl: Pt(cx, cy), To: Pt(x, y)})
}

// Close joins the current point back to the start of the subpath.
func (p *Path) Close() {
	if len(p.subs) == 0 {
		return
	}
	sp := &p.subs[len(p.subs)-1]
	if sp.closed {
		return
	}
	if p.cur != sp.start {
		sp.segs = append(sp.segs, Segment{Kind: SegmentLine, From: p.cur, To: sp.start})
	}
	sp.closed = true
	p.cur = sp.start
}

func (p *Path) append(s Segment) {
	sp := &p.subs[len(p.subs)-1]
	if sp.closed {
		p.subs = append(p.subs, subpath{start: p.cur})
		sp = &p.subs[len(p.subs)-1]
	}
	sp.segs = append(sp.segs, s)
	p.cur = s.To
}

// Rect adds a closed rectangle with corner (x, y) and signed size w x h.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// circleSegments is the number of quadratic pieces used for a full circle.
const circleSegments = 16

// Circle adds a closed circle of radius r centred at (cx, cy).
func (p *Path) Circle(cx, cy, r float64) {
	step := 2 * math.Pi / circleSegments
	k := r / math.Cos(step/2)
	p.MoveTo(cx+r, cy)
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) * step
		am := a0 + step/2
		a1 := a0 + step
		p.QuadTo(cx+k*math.Cos(am), cy+k*math.Sin(am), cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	}
	p.Close()
}

// Polygon adds a closed polygon through pts.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Empty reports whether the path holds no segments.
func (p *Path) Empty() bool {
	for _, sp := range p.subs {
		if len(sp.segs) > 0 {
			return false
		}
	}
	return true
}

// Current returns the current point.
func (p *Path) Current() Point { return p.cur }

// Segments returns every segment of every subpath in drawing order.
func (p *Path) Segments() []Segment {
	var out []Segment
	for _, sp := range p.subs {
		out = append(out, sp.segs...)
	}
	return out
}

// toFixed converts the path for the freetype rasterizer. Zero-length
// segments are dropped and quadratics whose control point coincides with an
// endpoint become lines, which keeps the stroker away from zero-length
// tangents. When closeAll is set every subpath is closed, as filling
// requires.
func (p *Path) toFixed(closeAll bool) ft.Path {
	var out ft.Path
	for _, sp := range p.subs {
		start := sp.start.fixed()
		cur := start
		var q ft.Path
		for _, s := range sp.segs {
			to := s.To.fixed()
			if s.Kind == SegmentQuad {
				ctrl := s.Ctrl.fixed()
				if ctrl != cur && ctrl != to && to != cur {
					q.Add2(ctrl, to)
					cur = to
					continue
				}
			}
			if to == cur {
				continue
			}
			q.Add1(to)
			cur = to
		}
		if len(q) == 0 {
			continue
		}
		if (closeAll || sp.closed) && cur != start {
			q.Add1(start)
		}
		out.Start(start)
		out = append(out, q...)
	}
	return out
}
