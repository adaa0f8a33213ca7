package window

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/style"
)

// Shortcut describes a keyboard combination that triggers an action.
type Shortcut struct {
	Code      key.Code
	Modifiers key.Modifiers
}

const modMask = key.ModShift | key.ModControl | key.ModAlt | key.ModMeta

func shortcutFor(e key.Event) Shortcut {
	return Shortcut{Code: e.Code, Modifiers: e.Modifiers & modMask}
}

// action mutates the engine and reports whether the window must repaint.
type action func(h *Host) bool

func selectTool(t engine.Tool) action {
	return func(h *Host) bool {
		h.eng.SetTool(t)
		h.log.Info("tool selected", "tool", t.String())
		return true
	}
}

func adjust(fn func(*style.Style)) action {
	return func(h *Host) bool {
		h.eng.UpdateStyle(fn)
		h.log.Info("style changed", "style", h.eng.Style().String())
		return true
	}
}

var shortcuts = map[Shortcut]action{
	{Code: key.CodeP}: selectTool(engine.Pencil),
	{Code: key.CodeE}: selectTool(engine.Eraser),
	{Code: key.CodeL}: selectTool(engine.Line),
	{Code: key.CodeC}: selectTool(engine.Curve),
	{Code: key.CodeR}: selectTool(engine.Rectangle),
	{Code: key.CodeO}: selectTool(engine.Circle),
	{Code: key.CodeT}: selectTool(engine.Triangle),
	{Code: key.CodeG}: selectTool(engine.Polygon),

	{Code: key.CodeF}:                  adjust(func(s *style.Style) { s.FillMode = !s.FillMode }),
	{Code: key.CodeLeftSquareBracket}:  adjust(func(s *style.Style) { s.Brush-- }),
	{Code: key.CodeRightSquareBracket}: adjust(func(s *style.Style) { s.Brush++ }),
	{Code: key.CodeHyphenMinus}:        adjust(func(s *style.Style) { s.Sides-- }),
	{Code: key.CodeEqualSign}:          adjust(func(s *style.Style) { s.Sides++ }),

	{Code: key.CodeZ, Modifiers: key.ModControl}:                (*Host).undo,
	{Code: key.CodeY, Modifiers: key.ModControl}:                (*Host).redo,
	{Code: key.CodeZ, Modifiers: key.ModControl | key.ModShift}: (*Host).redo,
	{Code: key.CodeDeleteForward}:                               (*Host).clear,
	{Code: key.CodeS, Modifiers: key.ModControl}:                (*Host).save,
	{Code: key.CodeC, Modifiers: key.ModControl}:                (*Host).copy,
}

// HandleKey runs the action bound to e, if any, and reports whether the
// window must repaint. Only key presses trigger actions.
func (h *Host) HandleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	act, ok := shortcuts[shortcutFor(e)]
	if !ok {
		return false
	}
	return act(h)
}

func (h *Host) undo() bool { return h.eng.Undo() }

func (h *Host) redo() bool { return h.eng.Redo() }

func (h *Host) clear() bool {
	h.eng.Clear()
	return true
}

func (h *Host) save() bool {
	a, ok := h.eng.Export("png", h.opts.Name)
	if !ok {
		return false
	}
	if h.opts.Save == nil {
		h.log.Warn("save ignored", "reason", "no save handler")
		return false
	}
	if err := h.opts.Save(a); err != nil {
		h.log.Error("save failed", "name", a.Name, "error", err)
	}
	return false
}

func (h *Host) copy() bool {
	img := h.eng.Image()
	if img == nil || h.opts.Copy == nil {
		return false
	}
	if err := h.opts.Copy(img); err != nil {
		h.log.Error("copy failed", "error", err)
	}
	return false
}
