// Package window hosts an engine in a shiny window. Mouse, keyboard, size
// and lifecycle events are translated into engine calls and the canvas is
// uploaded on every paint.
package window

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/export"
)

// statusHeight is the height of the status bar below the canvas.
const statusHeight = 18

var statusBackground = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}

// Options configures a Host.
type Options struct {
	Title string
	// Name is the base file name used by Ctrl+S.
	Name string
	// Save receives the PNG artifact produced by Ctrl+S.
	Save func(export.Artifact) error
	// Copy receives the canvas on Ctrl+C.
	Copy   func(image.Image) error
	Logger *slog.Logger
}

// Host connects a shiny window to an engine.
type Host struct {
	eng  *engine.Engine
	opts Options
	log  *slog.Logger
}

// New returns a host for eng. The engine must have a surface attached.
func New(eng *engine.Engine, opts Options) *Host {
	l := opts.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	if opts.Title == "" {
		opts.Title = "Easel"
	}
	return &Host{eng: eng, opts: opts, log: l}
}

// HandlePointer feeds a mouse event to the engine and reports whether the
// window must repaint.
func (h *Host) HandlePointer(e mouse.Event) bool {
	w, ht := h.eng.Size()
	ev, ok := pointerEvent(e, image.Pt(w, ht), h.eng.Dragging())
	if !ok {
		return false
	}
	h.eng.Dispatch(ev)
	return true
}

// HandleLifecycle ends a gesture when the window loses focus. It reports
// whether the window is being torn down.
func (h *Host) HandleLifecycle(e lifecycle.Event) (dead bool) {
	if e.To == lifecycle.StageDead {
		return true
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff && h.eng.Dragging() {
		h.eng.PointerLeave()
	}
	return false
}

// Main runs the event loop until the window is closed. It is meant to be
// passed to driver.Main.
func (h *Host) Main(s screen.Screen) {
	width, height := h.eng.Size()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height + statusHeight, Title: h.opts.Title})
	if err != nil {
		h.log.Error("new window", "error", err)
		return
	}
	defer w.Release()

	for {
		repaint := false
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if h.HandleLifecycle(e) {
				return
			}
			repaint = true
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > statusHeight {
				h.eng.Resize(e.WidthPx, e.HeightPx-statusHeight)
			}
			repaint = true
		case paint.Event:
			h.paint(s, w)
		case mouse.Event:
			repaint = h.HandlePointer(e)
		case key.Event:
			repaint = h.HandleKey(e)
		case error:
			h.log.Error("window event", "error", e)
		}
		if repaint {
			w.Send(paint.Event{})
		}
	}
}

func (h *Host) paint(s screen.Screen, w screen.Window) {
	img := h.eng.Image()
	if img == nil {
		return
	}
	sz := img.Bounds().Size()
	b, err := s.NewBuffer(image.Pt(sz.X, sz.Y+statusHeight))
	if err != nil {
		h.log.Error("new buffer", "error", err)
		return
	}
	defer b.Release()
	dst := b.RGBA()
	draw.Draw(dst, image.Rectangle{Max: sz}, img, img.Bounds().Min, draw.Src)
	h.drawStatus(dst, image.Rect(0, sz.Y, sz.X, sz.Y+statusHeight))
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (h *Host) drawStatus(dst *image.RGBA, r image.Rectangle) {
	draw.Draw(dst, r, image.NewUniform(statusBackground), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(r.Min.X+4, r.Max.Y-5),
	}
	d.DrawString(h.Status())
}

// Status summarizes the tool, style and history for the status bar.
func (h *Host) Status() string {
	st := h.eng.Style()
	fill := "off"
	if st.FillMode {
		fill = "on"
	}
	undo, redo := h.eng.HistoryDepth()
	return fmt.Sprintf("%s  brush %d  fill %s  sides %d  undo %d  redo %d",
		h.eng.Tool(), st.Brush, fill, st.Sides, undo, redo)
}
