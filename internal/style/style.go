// Package style holds the drawing parameters shared by every tool.
package style

import (
	"fmt"
	"image/color"
)

const (
	MinBrush = 1
	MaxBrush = 100

	MinSides = 3
	MaxSides = 12
)

// Eraser is the colour painted by the eraser tool. It doubles as the canvas
// background so erased pixels are indistinguishable from untouched ones.
var Eraser = color.RGBA{255, 255, 255, 255}

// Background is the colour a fresh or cleared canvas is filled with.
var Background = Eraser

// Style is the set of parameters read by the drawing tools.
type Style struct {
	Stroke   color.RGBA
	Fill     color.RGBA
	Brush    int
	FillMode bool
	Sides    int
}

// Default returns the style a new drawing starts with.
func Default() Style {
	return Style{
		Stroke:   color.RGBA{0, 0, 0, 255},
		Fill:     color.RGBA{255, 255, 255, 255},
		Brush:    5,
		FillMode: false,
		Sides:    5,
	}
}

// Normalize returns s with Brush and Sides clamped into their valid ranges.
func Normalize(s Style) Style {
	s.Brush = clamp(s.Brush, MinBrush, MaxBrush)
	s.Sides = clamp(s.Sides, MinSides, MaxSides)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StrokeFor returns the colour a tool strokes with. The eraser always paints
// the background colour regardless of s.Stroke.
func (s Style) StrokeFor(eraser bool) color.RGBA {
	if eraser {
		return Eraser
	}
	return s.Stroke
}

func (s Style) String() string {
	fill := "off"
	if s.FillMode {
		fill = "on"
	}
	return fmt.Sprintf("stroke=%s fill=%s brush=%d fillmode=%s sides=%d",
		FormatColor(s.Stroke), FormatColor(s.Fill), s.Brush, fill, s.Sides)
}
