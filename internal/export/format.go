// Package export encodes a canvas image into the downloadable formats.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for format names export does not know.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format identifies an output encoding.
type Format int

const (
	PNG Format = iota + 1
	JPEG
	SVG
	PDF
)

type formatInfo struct {
	name      string
	ext       string
	mediaType string
	summary   string
}

var formats = map[Format]formatInfo{
	PNG:  {"png", ".png", "image/png", "lossless raster"},
	JPEG: {"jpeg", ".jpg", "image/jpeg", "lossy raster, quality 90 unless configured"},
	SVG:  {"svg", ".svg", "image/svg+xml", "SVG document embedding the PNG"},
	PDF:  {"pdf", ".pdf", "application/pdf", "single page PDF sized to the canvas"},
}

// Formats returns every supported format in a stable order.
func Formats() []Format { return []Format{PNG, JPEG, SVG, PDF} }

// ParseFormat resolves a format name. Names are case-insensitive, may carry
// a leading dot and "jpg" is accepted for JPEG.
func ParseFormat(name string) (Format, error) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	switch n {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(path[i:])
}

func (f Format) String() string {
	if info, ok := formats[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string { return formats[f].ext }

// MediaType returns the MIME type of the encoding.
func (f Format) MediaType() string { return formats[f].mediaType }

// Summary is a one-line description for listings.
func (f Format) Summary() string { return formats[f].summary }

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}
