// Package raster provides the pixel surface the drawing engine paints on.
//
// Surface is the capability interface the engine depends on; Canvas is the
// in-memory implementation backed by an *image.RGBA. Paths are rasterized
// with anti-aliasing by github.com/golang/freetype/raster.
package raster

import (
	"bytes"
	"image"
	"image/color"
)

// Surface is a fixed-size pixel buffer with drawing primitives.
//
// Surfaces are not safe for concurrent use.
type Surface interface {
	// Width returns the buffer width in device pixels.
	Width() int
	// Height returns the buffer height in device pixels.
	Height() int

	// Resize reallocates the buffer to w x h, copying the previous content
	// anchored at the origin. Newly exposed pixels are transparent.
	Resize(w, h int)

	// Snapshot returns an immutable copy of the whole buffer.
	Snapshot() Snapshot
	// Restore overwrites the buffer with the snapshot's pixels.
	Restore(s Snapshot)

	// FillBackground fills the whole buffer with c.
	FillBackground(c color.Color)
	// FillRect fills the rectangle with corner (x, y) and signed size w x h.
	FillRect(x, y, w, h float64, c color.Color)
	// ClearRect makes every pixel touched by the rectangle transparent.
	ClearRect(x, y, w, h float64)

	// Fill fills the interior of path using the non-zero winding rule.
	Fill(path *Path, c color.Color)
	// Stroke outlines path with round caps and joins.
	Stroke(path *Path, style StrokeStyle)

	// ReadRegion copies the part of r inside the buffer into a new image
	// with the same bounds as that intersection.
	ReadRegion(r image.Rectangle) *image.RGBA
	// WriteRegion copies src into the buffer with src.Bounds().Min at at.
	WriteRegion(src image.Image, at image.Point)

	// Image returns a read-only view of the buffer.
	Image() image.Image
}

// StrokeStyle configures Surface.Stroke.
type StrokeStyle struct {
	Color color.Color
	Width float64
}

// Snapshot is an immutable copy of a surface's pixels.
type Snapshot struct {
	img *image.RGBA
}

// NewSnapshot copies img into a snapshot.
func NewSnapshot(img *image.RGBA) Snapshot {
	return Snapshot{img: cloneRGBA(img)}
}

// IsZero reports whether s holds no pixels.
func (s Snapshot) IsZero() bool { return s.img == nil }

// Bounds returns the size of the captured buffer.
func (s Snapshot) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Image returns a copy of the captured pixels.
func (s Snapshot) Image() *image.RGBA {
	if s.img == nil {
		return nil
	}
	return cloneRGBA(s.img)
}

// Equal reports whether s and o hold exactly the same pixels.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.img == nil || o.img == nil {
		return s.img == o.img
	}
	if s.img.Bounds() != o.img.Bounds() {
		return false
	}
	return bytes.Equal(s.img.Pix, o.img.Pix)
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	if img.Stride == out.Stride {
		copy(out.Pix, img.Pix)
		return out
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)],
			img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)])
	}
	return out
}
