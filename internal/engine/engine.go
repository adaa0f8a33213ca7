// Package engine implements the drawing state machine: it turns tool
// selection, style and pointer gestures into surface mutations, keeps the
// undo history and produces exports.
//
// An Engine is driven from a single goroutine. Every operation invoked
// before a surface is attached is a no-op, as are undo and redo on empty
// stacks; those conditions are logged at debug level and never returned.
package engine

import (
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/history"
	"github.com/example/easel/internal/raster"
	"github.com/example/easel/internal/style"
)

// Engine owns the surface, style, active tool, history and the gesture in
// progress.
type Engine struct {
	surface raster.Surface
	style   style.Style
	tool    Tool
	hist    *history.Manager
	g       gesture

	// size requested while a gesture was active, applied when it ends
	pending *image.Point

	histLimit  int
	exportOpts export.Options
	session    uuid.UUID
	log        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSurface attaches s when the engine is created.
func WithSurface(s raster.Surface) Option {
	return func(e *Engine) { e.surface = s }
}

// WithCanvas attaches a fresh in-memory canvas of w x h pixels.
func WithCanvas(w, h int) Option {
	return func(e *Engine) { e.surface = raster.NewCanvas(w, h) }
}

// WithStyle sets the initial style.
func WithStyle(s style.Style) Option {
	return func(e *Engine) { e.style = style.Normalize(s) }
}

// WithTool sets the initially active tool.
func WithTool(t Tool) Option {
	return func(e *Engine) {
		if t.Valid() {
			e.tool = t
		}
	}
}

// WithHistoryLimit caps the undo stack. Zero keeps it unbounded.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) { e.histLimit = n }
}

// WithJPEGQuality overrides the JPEG export quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(e *Engine) { e.exportOpts.JPEGQuality = q }
}

// WithLogger routes engine diagnostics to l. Without it the engine is silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an engine with the default style and the pencil selected.
func New(opts ...Option) *Engine {
	e := &Engine{
		style:   style.Default(),
		tool:    Pencil,
		session: uuid.New(),
		log:     newNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("session", e.session.String())
	e.hist = e.newHistory()
	if e.surface != nil {
		e.Attach(e.surface)
	}
	return e
}

func (e *Engine) newHistory() *history.Manager {
	return history.New(history.WithLimit(e.histLimit), history.WithBackground(style.Background))
}

// Attach makes s the drawing surface, fills it with the background colour
// and starts an empty history.
func (e *Engine) Attach(s raster.Surface) {
	e.surface = s
	e.g = gesture{}
	e.pending = nil
	e.hist = e.newHistory()
	if s == nil {
		return
	}
	s.FillBackground(style.Background)
	e.log.Debug("surface attached", "width", s.Width(), "height", s.Height())
}

// Session returns the identifier attached to every log record.
func (e *Engine) Session() string { return e.session.String() }

// Surface returns the attached surface, or nil.
func (e *Engine) Surface() raster.Surface { return e.surface }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// SetTool selects the tool used by the next gesture. A gesture already in
// progress keeps the tool it started with.
func (e *Engine) SetTool(t Tool) {
	if !t.Valid() {
		e.log.Debug("ignoring invalid tool", "tool", int(t))
		return
	}
	e.tool = t
}

// Style returns the current style.
func (e *Engine) Style() style.Style { return e.style }

// SetStyle replaces the style. Out of range brush and side counts are
// clamped.
func (e *Engine) SetStyle(s style.Style) { e.style = style.Normalize(s) }

// UpdateStyle applies fn to a copy of the style and stores the normalized
// result.
func (e *Engine) UpdateStyle(fn func(*style.Style)) {
	s := e.style
	fn(&s)
	e.SetStyle(s)
}

// Dragging reports whether a gesture is in progress.
func (e *Engine) Dragging() bool { return e.g.active }

// Size returns the surface dimensions, or zeros without a surface.
func (e *Engine) Size() (w, h int) {
	if e.surface == nil {
		return 0, 0
	}
	return e.surface.Width(), e.surface.Height()
}

// Image returns a read-only view of the surface pixels, or nil.
func (e *Engine) Image() image.Image {
	if e.surface == nil {
		return nil
	}
	return e.surface.Image()
}

// HistoryDepth returns the number of undo and redo entries.
func (e *Engine) HistoryDepth() (undo, redo int) { return e.hist.Len() }

// Clear records the current pixels in history and fills the surface with the
// background colour. A gesture in progress is abandoned with its pixels kept
// in the recorded state, and any curve samples are discarded.
func (e *Engine) Clear() {
	if e.surface == nil {
		e.log.Debug("clear ignored", "reason", "no surface")
		return
	}
	pre := e.surface.Snapshot()
	// Undo pops one entry and restores the one beneath it, so the pre-clear
	// pixels must also sit beneath the new top. With an empty history, or
	// right after a redo (which leaves the redone pixels off the undo top),
	// a single commit would make undo skip back past the drawing. See
	// TestClearAfterRedoThenUndoRestoresDrawing.
	if top, ok := e.hist.Top(); !ok || !top.Equal(pre) {
		e.hist.Commit(pre)
	}
	e.hist.Commit(pre)
	e.surface.FillBackground(style.Background)
	wasDragging := e.g.active
	e.g = gesture{}
	if wasDragging {
		e.applyPendingResize()
	}
	e.log.Debug("cleared", "abandoned_gesture", wasDragging)
}

// Undo steps back one history entry. It reports false when nothing changed.
func (e *Engine) Undo() bool {
	if !e.historyReady("undo") {
		return false
	}
	if !e.hist.Undo(e.surface) {
		e.log.Debug("undo ignored", "reason", "empty history")
		return false
	}
	return true
}

// Redo reapplies the last undone entry. It reports false when nothing
// changed.
func (e *Engine) Redo() bool {
	if !e.historyReady("redo") {
		return false
	}
	if !e.hist.Redo(e.surface) {
		e.log.Debug("redo ignored", "reason", "empty history")
		return false
	}
	return true
}

func (e *Engine) historyReady(op string) bool {
	switch {
	case e.surface == nil:
		e.log.Debug(op+" ignored", "reason", "no surface")
		return false
	case e.g.active:
		e.log.Debug(op+" ignored", "reason", "gesture in progress")
		return false
	}
	return true
}

// Export encodes the surface in the named format. The artifact is named
// name plus the format extension, or "my-drawing" when name is empty. An
// unknown format or a missing surface yields no artifact and false.
func (e *Engine) Export(format, name string) (export.Artifact, bool) {
	if e.surface == nil {
		e.log.Debug("export ignored", "reason", "no surface")
		return export.Artifact{}, false
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		e.log.Debug("export ignored", "error", err)
		return export.Artifact{}, false
	}
	a, err := export.Render(e.surface.Image(), f, name, e.exportOpts)
	if err != nil {
		e.log.Warn("export failed", "format", f.String(), "error", err)
		return export.Artifact{}, false
	}
	e.log.Debug("exported", "name", a.Name, "bytes", len(a.Data))
	return a, true
}

// Resize changes the surface size, keeping existing pixels anchored at the
// origin and filling newly exposed pixels with the background colour. During
// a gesture the resize is deferred until the gesture ends.
func (e *Engine) Resize(w, h int) {
	if e.surface == nil {
		e.log.Debug("resize ignored", "reason", "no surface")
		return
	}
	if e.g.active {
		e.pending = &image.Point{X: w, Y: h}
		e.log.Debug("resize deferred", "width", w, "height", h)
		return
	}
	e.resize(w, h)
}

func (e *Engine) applyPendingResize() {
	if e.pending == nil {
		return
	}
	p := *e.pending
	e.pending = nil
	e.resize(p.X, p.Y)
}

func (e *Engine) resize(w, h int) {
	ow, oh := e.surface.Width(), e.surface.Height()
	e.surface.Resize(w, h)
	nw, nh := e.surface.Width(), e.surface.Height()
	if nw == ow && nh == oh {
		return
	}
	if nw > ow {
		e.surface.FillRect(float64(ow), 0, float64(nw-ow), float64(nh), style.Background)
	}
	if nh > oh {
		e.surface.FillRect(0, float64(oh), float64(min(ow, nw)), float64(nh-oh), style.Background)
	}
	e.log.Debug("resized", "width", nw, "height", nh)
}
