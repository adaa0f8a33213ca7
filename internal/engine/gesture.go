package engine

import (
	"math"

	"github.com/example/easel/internal/curve"
	"github.com/example/easel/internal/raster"
)

// gesture is the state of one press-drag-release interaction.
type gesture struct {
	active  bool
	tool    Tool
	anchor  raster.Point
	last    raster.Point
	before  raster.Snapshot
	samples curve.Smoother
}

// behavior is the per-tool part of a gesture.
type behavior struct {
	begin  func(e *Engine, p raster.Point)
	drag   func(e *Engine, p raster.Point)
	finish func(e *Engine)
}

var behaviors = map[Tool]behavior{
	Pencil:    freehand,
	Eraser:    freehand,
	Line:      preview(drawLine),
	Rectangle: preview(drawRect),
	Circle:    preview(drawCircle),
	Triangle:  preview(drawTriangle),
	Polygon:   preview(drawPolygon),
	Curve: {
		begin:  beginCurve,
		drag:   dragCurve,
		finish: finishCurve,
	},
}

var freehand = behavior{
	drag: func(e *Engine, p raster.Point) {
		e.strokeSegment(e.g.last, p)
	},
}

func preview(draw func(e *Engine, a, p raster.Point)) behavior {
	return behavior{
		begin: func(e *Engine, _ raster.Point) { e.g.before = e.surface.Snapshot() },
		drag: func(e *Engine, p raster.Point) {
			e.surface.Restore(e.g.before)
			draw(e, e.g.anchor, p)
		},
	}
}

func beginCurve(e *Engine, p raster.Point) {
	e.g.before = e.surface.Snapshot()
	e.g.samples.Reset()
	e.g.samples.Add(p)
}

func dragCurve(e *Engine, p raster.Point) {
	e.g.samples.Add(p)
	e.surface.Restore(e.g.before)
	pts := e.g.samples.Points()
	e.surface.Fill(curve.Markers(pts), e.strokeColor())
	e.surface.Stroke(curve.Smooth(pts), e.strokeStyle())
}

func finishCurve(e *Engine) {
	if e.g.samples.Len() < 2 {
		return
	}
	e.surface.Restore(e.g.before)
	e.surface.Stroke(e.g.samples.Path(), e.strokeStyle())
}

// PointerDown starts a gesture at (x, y) with the active tool. It is ignored
// while another gesture is in progress.
func (e *Engine) PointerDown(x, y float64) {
	if e.surface == nil {
		e.log.Debug("pointer down ignored", "reason", "no surface")
		return
	}
	if e.g.active {
		e.log.Debug("pointer down ignored", "reason", "gesture in progress")
		return
	}
	if !finite(x, y) {
		e.log.Debug("pointer down ignored", "reason", "non-finite position", "x", x, "y", y)
		return
	}
	p := raster.Pt(x, y)
	e.g = gesture{active: true, tool: e.tool, anchor: p, last: p}
	if b := behaviors[e.tool]; b.begin != nil {
		b.begin(e, p)
	}
}

// PointerMove continues the gesture to (x, y). Without a gesture it does
// nothing.
func (e *Engine) PointerMove(x, y float64) {
	if e.surface == nil || !e.g.active {
		return
	}
	if !finite(x, y) {
		e.log.Debug("pointer move ignored", "reason", "non-finite position", "x", x, "y", y)
		return
	}
	p := raster.Pt(x, y)
	if b := behaviors[e.g.tool]; b.drag != nil {
		b.drag(e, p)
	}
	e.g.last = p
}

// finite reports whether (x, y) can be rasterized. NaN and infinite
// coordinates never leave the freetype rasterizer.
func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// PointerUp ends the gesture and commits the result to history.
func (e *Engine) PointerUp() { e.endGesture("up") }

// PointerLeave behaves like PointerUp: the gesture is committed, not rolled
// back.
func (e *Engine) PointerLeave() { e.endGesture("leave") }

func (e *Engine) endGesture(cause string) {
	if e.surface == nil || !e.g.active {
		return
	}
	if b := behaviors[e.g.tool]; b.finish != nil {
		b.finish(e)
	}
	e.hist.Commit(e.surface.Snapshot())
	tool := e.g.tool
	e.g = gesture{}
	e.log.Debug("gesture committed", "tool", tool.String(), "cause", cause)
	e.applyPendingResize()
}
