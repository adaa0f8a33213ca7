package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func rgbaAt(c *Canvas, x, y int) color.RGBA {
	return c.Image().(*image.RGBA).RGBAAt(x, y)
}

func TestNewCanvasClampsSize(t *testing.T) {
	c := NewCanvas(0, -4)
	assert.Equal(t, 1, c.Width())
	assert.Equal(t, 1, c.Height())
}

func TestResizePreservesContent(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillBackground(white)
	c.FillRect(2, 2, 3, 3, red)

	c.Resize(20, 15)
	require.Equal(t, 20, c.Width())
	require.Equal(t, 15, c.Height())
	assert.Equal(t, red, rgbaAt(c, 3, 3))
	assert.Equal(t, white, rgbaAt(c, 9, 9))
	assert.Equal(t, color.RGBA{}, rgbaAt(c, 15, 12), "exposed area starts transparent")

	c.Resize(4, 4)
	assert.Equal(t, red, rgbaAt(c, 3, 3))
	assert.Equal(t, white, rgbaAt(c, 0, 0))
}

func TestSnapshotIsImmutable(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillBackground(white)
	snap := c.Snapshot()

	c.FillBackground(red)
	assert.Equal(t, white, snap.Image().RGBAAt(4, 4))

	img := snap.Image()
	img.SetRGBA(1, 1, blue)
	assert.Equal(t, white, snap.Image().RGBAAt(1, 1))
}

func TestRestoreOverwritesBuffer(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillBackground(white)
	before := c.Snapshot()

	c.FillRect(0, 0, 8, 8, red)
	require.False(t, c.Snapshot().Equal(before))

	c.Restore(before)
	assert.True(t, c.Snapshot().Equal(before))

	c.Restore(Snapshot{})
	assert.True(t, c.Snapshot().Equal(before), "zero snapshot is ignored")
}

func TestRestoreDifferentSizeCopiesIntersection(t *testing.T) {
	small := NewCanvas(4, 4)
	small.FillBackground(red)
	snap := small.Snapshot()

	c := NewCanvas(8, 8)
	c.FillBackground(white)
	c.Restore(snap)
	assert.Equal(t, red, rgbaAt(c, 3, 3))
	assert.Equal(t, white, rgbaAt(c, 6, 6))
}

func TestFillRectNegativeSize(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillBackground(white)
	c.FillRect(10, 10, -5, -5, blue)
	assert.Equal(t, blue, rgbaAt(c, 7, 7))
	assert.Equal(t, white, rgbaAt(c, 11, 11))
}

func TestClearRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillBackground(white)
	c.ClearRect(2, 2, 2, 2)
	assert.Equal(t, color.RGBA{}, rgbaAt(c, 3, 3))
	assert.Equal(t, white, rgbaAt(c, 4, 4))
}

func TestStrokeHorizontalLine(t *testing.T) {
	c := NewCanvas(40, 20)
	c.FillBackground(white)
	p := NewPath()
	p.MoveTo(5, 10)
	p.LineTo(35, 10)
	c.Stroke(p, StrokeStyle{Color: red, Width: 4})

	for x := 6; x < 34; x++ {
		for y := 8; y < 12; y++ {
			require.Equal(t, red, rgbaAt(c, x, y), "pixel (%d,%d)", x, y)
		}
		assert.Equal(t, white, rgbaAt(c, x, 7))
		assert.Equal(t, white, rgbaAt(c, x, 12))
	}
}

func TestStrokeDegeneratePathDrawsNothing(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillBackground(white)
	before := c.Snapshot()

	p := NewPath()
	p.MoveTo(5, 5)
	p.LineTo(5, 5)
	c.Stroke(p, StrokeStyle{Color: red, Width: 4})
	assert.True(t, c.Snapshot().Equal(before))

	c.Stroke(NewPath(), StrokeStyle{Color: red, Width: 4})
	c.Stroke(nil, StrokeStyle{Color: red, Width: 4})
	assert.True(t, c.Snapshot().Equal(before))
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(100, 100)
	c.FillBackground(white)
	p := NewPath()
	p.Circle(50, 50, 20)
	c.Fill(p, blue)

	assert.Equal(t, blue, rgbaAt(c, 50, 50))
	assert.Equal(t, blue, rgbaAt(c, 50+15, 50))
	assert.Equal(t, white, rgbaAt(c, 50+25, 50))
	assert.Equal(t, white, rgbaAt(c, 50+16, 50+16), "corner of bounding box stays outside")
}

func TestCirclePathRadius(t *testing.T) {
	p := NewPath()
	p.Circle(10, 20, 30)
	for _, s := range p.Segments() {
		for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
			d := s.Eval(tt).Dist(Pt(10, 20))
			assert.InDelta(t, 30, d, 0.1)
		}
	}
}

func TestReadWriteRegion(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillBackground(white)
	c.FillRect(0, 0, 2, 2, red)

	region := c.ReadRegion(image.Rect(-5, -5, 3, 3))
	require.Equal(t, image.Rect(0, 0, 3, 3), region.Bounds())
	assert.Equal(t, red, region.RGBAAt(1, 1))
	assert.Equal(t, white, region.RGBAAt(2, 2))

	c.WriteRegion(region, image.Pt(6, 6))
	assert.Equal(t, red, rgbaAt(c, 7, 7))
	assert.Equal(t, white, rgbaAt(c, 8, 8))
}

func TestSegmentEvalQuad(t *testing.T) {
	s := Segment{Kind: SegmentQuad, From: Pt(0, 0), Ctrl: Pt(10, 0), To: Pt(10, 10)}
	assert.Equal(t, Pt(0, 0), s.Eval(0))
	assert.Equal(t, Pt(10, 10), s.Eval(1))
	mid := s.Eval(0.5)
	assert.InDelta(t, 7.5, mid.X, 1e-9)
	assert.InDelta(t, 2.5, mid.Y, 1e-9)
	assert.False(t, math.IsNaN(mid.X))
}

func TestPathCloseAddsReturnSegment(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	segs := p.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, Pt(0, 0), segs[2].To)
	assert.False(t, p.Empty())
	assert.True(t, NewPath().Empty())
}
