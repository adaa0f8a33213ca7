package curve

import (
	"testing"

	"github.com/example/easel/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothTooFewPoints(t *testing.T) {
	assert.True(t, Smooth(nil).Empty())
	assert.True(t, Smooth([]raster.Point{raster.Pt(1, 1)}).Empty())
}

func TestSmoothTwoPointsIsStraight(t *testing.T) {
	segs := Smooth([]raster.Point{raster.Pt(0, 0), raster.Pt(10, 5)}).Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, raster.SegmentLine, segs[0].Kind)
	assert.Equal(t, raster.Pt(0, 0), segs[0].From)
	assert.Equal(t, raster.Pt(10, 5), segs[0].To)
}

func TestSmoothThreePoints(t *testing.T) {
	pts := []raster.Point{raster.Pt(0, 0), raster.Pt(10, 0), raster.Pt(20, 10)}
	segs := Smooth(pts).Segments()
	require.Len(t, segs, 2)

	assert.Equal(t, raster.SegmentQuad, segs[0].Kind)
	assert.Equal(t, raster.Pt(0, 0), segs[0].From)
	assert.Equal(t, raster.Pt(0, 0), segs[0].Ctrl)
	assert.Equal(t, raster.Pt(5, 0), segs[0].To)

	assert.Equal(t, raster.SegmentQuad, segs[1].Kind)
	assert.Equal(t, raster.Pt(5, 0), segs[1].From)
	assert.Equal(t, raster.Pt(10, 0), segs[1].Ctrl)
	assert.Equal(t, raster.Pt(20, 10), segs[1].To)

	corner := raster.Pt(10, 0)
	for _, s := range segs {
		for i := 0; i <= 100; i++ {
			assert.Greater(t, s.Eval(float64(i)/100).Dist(corner), 1e-6)
		}
	}
}

func TestSmoothPassesThroughMidpoints(t *testing.T) {
	pts := []raster.Point{raster.Pt(0, 0), raster.Pt(10, 10), raster.Pt(20, 0), raster.Pt(30, 10), raster.Pt(40, 0)}
	segs := Smooth(pts).Segments()
	require.Len(t, segs, len(pts)-1)
	for i := 0; i < len(pts)-2; i++ {
		assert.Equal(t, pts[i].Mid(pts[i+1]), segs[i].To)
		assert.Equal(t, pts[i], segs[i].Ctrl)
	}
	last := segs[len(segs)-1]
	assert.Equal(t, pts[len(pts)-2], last.Ctrl)
	assert.Equal(t, pts[len(pts)-1], last.To)
}

func TestSmootherAccumulates(t *testing.T) {
	var s Smoother
	s.Add(raster.Pt(1, 2))
	s.Add(raster.Pt(3, 4))
	assert.Equal(t, 2, s.Len())

	pts := s.Points()
	pts[0] = raster.Pt(99, 99)
	assert.Equal(t, raster.Pt(1, 2), s.Points()[0])
	assert.Len(t, s.Path().Segments(), 1)

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Path().Empty())
}

func TestMarkers(t *testing.T) {
	segs := Markers([]raster.Point{raster.Pt(10, 10), raster.Pt(20, 20)}).Segments()
	require.Len(t, segs, 8)
	assert.Equal(t, raster.Pt(8, 8), segs[0].From)
	assert.Equal(t, raster.Pt(12, 8), segs[0].To)
	assert.Equal(t, raster.Pt(18, 18), segs[4].From)
}
