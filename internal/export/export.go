package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// DefaultJPEGQuality matches the 0.9 quality the browser exporter used.
const DefaultJPEGQuality = 90

// DefaultName is used when no base name is given.
const DefaultName = "my-drawing"

// Options tunes the encoders.
type Options struct {
	JPEGQuality int
}

func (o Options) jpegQuality() int {
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return o.JPEGQuality
}

// Artifact is an encoded image ready to be written or offered for download.
type Artifact struct {
	Name      string
	MediaType string
	Data      []byte
}

// FileName joins base and the format extension. An empty base becomes
// DefaultName and an existing matching extension is not repeated.
func FileName(base string, f Format) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultName
	}
	ext := f.Extension()
	if strings.HasSuffix(strings.ToLower(base), ext) {
		return base
	}
	return base + ext
}

// Render encodes img and wraps the result in an Artifact.
func Render(img image.Image, f Format, base string, opts Options) (Artifact, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f, opts); err != nil {
		return Artifact{}, err
	}
	return Artifact{Name: FileName(base, f), MediaType: f.MediaType(), Data: buf.Bytes()}, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, opts Options) error {
	if img == nil {
		return fmt.Errorf("encode %s: nil image", f)
	}
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()})
	case SVG:
		return encodeSVG(w, img)
	case PDF:
		return encodePDF(w, img)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

func encodeSVG(w io.Writer, img image.Image) error {
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	b := img.Bounds()
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<image href="data:image/png;base64,%s" width="%d" height="%d"/></svg>`,
		b.Dx(), b.Dy(), b.Dx(), b.Dy(),
		base64.StdEncoding.EncodeToString(pngBuf.Bytes()),
		b.Dx(), b.Dy())
	return err
}

func encodePDF(w io.Writer, img image.Image) error {
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opt, &pngBuf)
	p.ImageOptions("canvas", 0, 0, wd, ht, false, opt, 0, "")
	if err := p.Output(w); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}
	return nil
}
