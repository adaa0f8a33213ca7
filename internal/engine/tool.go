package engine

import (
	"fmt"
	"strings"
)

// Tool selects how a pointer gesture is turned into pixels.
type Tool int

const (
	Pencil Tool = iota
	Eraser
	Line
	Curve
	Rectangle
	Circle
	Triangle
	Polygon
)

var toolNames = [...]string{
	Pencil:    "pencil",
	Eraser:    "eraser",
	Line:      "line",
	Curve:     "curve",
	Rectangle: "rectangle",
	Circle:    "circle",
	Triangle:  "triangle",
	Polygon:   "polygon",
}

var toolSummaries = [...]string{
	Pencil:    "freehand stroke in the stroke colour",
	Eraser:    "freehand stroke in the background colour",
	Line:      "straight segment from the press point",
	Curve:     "smoothed curve through the dragged samples",
	Rectangle: "rectangle spanning the press and current points",
	Circle:    "circle centred on the press point",
	Triangle:  "isosceles triangle with its apex at the press point",
	Polygon:   "regular polygon centred on the press point",
}

var toolAliases = map[string]Tool{
	"pen":  Pencil,
	"rect": Rectangle,
	"poly": Polygon,
	"tri":  Triangle,
}

// Tools returns every tool in display order.
func Tools() []Tool {
	return []Tool{Pencil, Eraser, Line, Curve, Rectangle, Circle, Triangle, Polygon}
}

// ParseTool resolves a tool name or alias, ignoring case.
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range toolNames {
		if s == n {
			return Tool(i), nil
		}
	}
	if t, ok := toolAliases[n]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

func (t Tool) String() string {
	if t.Valid() {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// Summary is a one-line description of the tool.
func (t Tool) Summary() string {
	if t.Valid() {
		return toolSummaries[t]
	}
	return ""
}

// Valid reports whether t names a known tool.
func (t Tool) Valid() bool { return t >= 0 && int(t) < len(toolNames) }

// Freehand reports whether the tool paints incrementally instead of
// redrawing a preview over a saved snapshot.
func (t Tool) Freehand() bool { return t == Pencil || t == Eraser }
