package engine

import "fmt"

// EventKind is the type of a pointer event.
type EventKind int

const (
	EventDown EventKind = iota
	EventMove
	EventUp
	EventLeave
)

func (k EventKind) String() string {
	switch k {
	case EventDown:
		return "down"
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	case EventLeave:
		return "leave"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a pointer event in surface coordinates. X and Y are ignored for
// EventUp and EventLeave.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Dispatch feeds ev into the gesture state machine.
func (e *Engine) Dispatch(ev Event) {
	switch ev.Kind {
	case EventDown:
		e.PointerDown(ev.X, ev.Y)
	case EventMove:
		e.PointerMove(ev.X, ev.Y)
	case EventUp:
		e.PointerUp()
	case EventLeave:
		e.PointerLeave()
	default:
		e.log.Debug("unknown event", "kind", int(ev.Kind))
	}
}
