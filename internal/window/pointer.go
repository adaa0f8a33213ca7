package window

import (
	"image"

	"golang.org/x/mobile/event/mouse"

	"github.com/example/easel/internal/engine"
)

// pointerEvent translates a shiny mouse event into an engine event. Only the
// left button draws. Motion outside size while dragging ends the gesture the
// same way leaving the canvas does.
func pointerEvent(e mouse.Event, size image.Point, dragging bool) (engine.Event, bool) {
	if e.Button.IsWheel() {
		return engine.Event{}, false
	}
	x, y := float64(e.X), float64(e.Y)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return engine.Event{}, false
		}
		return engine.Event{Kind: engine.EventDown, X: x, Y: y}, true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return engine.Event{}, false
		}
		return engine.Event{Kind: engine.EventUp, X: x, Y: y}, true
	case mouse.DirNone:
		if !dragging {
			return engine.Event{}, false
		}
		if !image.Pt(int(e.X), int(e.Y)).In(image.Rectangle{Max: size}) {
			return engine.Event{Kind: engine.EventLeave}, true
		}
		return engine.Event{Kind: engine.EventMove, X: x, Y: y}, true
	}
	return engine.Event{}, false
}
