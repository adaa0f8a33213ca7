package window

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/easel/internal/engine"
	"github.com/example/easel/internal/export"
	"github.com/example/easel/internal/style"
)

func press(code key.Code, mods key.Modifiers) key.Event {
	return key.Event{Code: code, Modifiers: mods, Direction: key.DirPress}
}

func newHost(t *testing.T, opts Options) (*Host, *engine.Engine) {
	t.Helper()
	eng := engine.New(engine.WithCanvas(40, 30))
	return New(eng, opts), eng
}

func drawStroke(h *Host) {
	h.HandlePointer(mouse.Event{X: 5, Y: 5, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	h.HandlePointer(mouse.Event{X: 30, Y: 20})
	h.HandlePointer(mouse.Event{X: 30, Y: 20, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
}

func TestToolKeys(t *testing.T) {
	h, eng := newHost(t, Options{})
	cases := map[key.Code]engine.Tool{
		key.CodeP: engine.Pencil,
		key.CodeE: engine.Eraser,
		key.CodeL: engine.Line,
		key.CodeC: engine.Curve,
		key.CodeR: engine.Rectangle,
		key.CodeO: engine.Circle,
		key.CodeT: engine.Triangle,
		key.CodeG: engine.Polygon,
	}
	for code, want := range cases {
		assert.True(t, h.HandleKey(press(code, 0)), "code %v repaints the status bar", code)
		assert.Equal(t, want, eng.Tool(), "code %v", code)
	}
}

func TestKeyReleaseIgnored(t *testing.T) {
	h, eng := newHost(t, Options{})
	h.HandleKey(key.Event{Code: key.CodeL, Direction: key.DirRelease})
	assert.Equal(t, engine.Pencil, eng.Tool())
}

func TestStyleKeys(t *testing.T) {
	h, eng := newHost(t, Options{})
	def := style.Default()

	assert.True(t, h.HandleKey(press(key.CodeF, 0)))
	assert.True(t, eng.Style().FillMode)
	h.HandleKey(press(key.CodeRightSquareBracket, 0))
	assert.Equal(t, def.Brush+1, eng.Style().Brush)
	h.HandleKey(press(key.CodeLeftSquareBracket, 0))
	h.HandleKey(press(key.CodeLeftSquareBracket, 0))
	assert.Equal(t, def.Brush-1, eng.Style().Brush)
	h.HandleKey(press(key.CodeEqualSign, 0))
	assert.Equal(t, def.Sides+1, eng.Style().Sides)
	h.HandleKey(press(key.CodeHyphenMinus, 0))
	assert.Equal(t, def.Sides, eng.Style().Sides)

	for i := 0; i < 20; i++ {
		h.HandleKey(press(key.CodeHyphenMinus, 0))
	}
	assert.Equal(t, style.MinSides, eng.Style().Sides)
}

func TestUndoRedoClearKeys(t *testing.T) {
	h, eng := newHost(t, Options{})
	drawStroke(h)
	undo, _ := eng.HistoryDepth()
	require.Equal(t, 1, undo)

	assert.True(t, h.HandleKey(press(key.CodeZ, key.ModControl)))
	_, redo := eng.HistoryDepth()
	assert.Equal(t, 1, redo)

	assert.True(t, h.HandleKey(press(key.CodeZ, key.ModControl|key.ModShift)))
	_, redo = eng.HistoryDepth()
	assert.Equal(t, 0, redo)

	h.HandleKey(press(key.CodeZ, key.ModControl))
	assert.True(t, h.HandleKey(press(key.CodeY, key.ModControl)))

	assert.True(t, h.HandleKey(press(key.CodeDeleteForward, 0)))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, eng.Image().At(17, 12))
}

func TestCtrlCDoesNotSelectCurve(t *testing.T) {
	var copied image.Image
	h, eng := newHost(t, Options{Copy: func(img image.Image) error {
		copied = img
		return nil
	}})
	h.HandleKey(press(key.CodeC, key.ModControl))
	assert.Equal(t, engine.Pencil, eng.Tool())
	require.NotNil(t, copied)
	assert.Equal(t, image.Rect(0, 0, 40, 30), copied.Bounds())
}

func TestSaveKey(t *testing.T) {
	var got []export.Artifact
	h, _ := newHost(t, Options{Name: "doodle", Save: func(a export.Artifact) error {
		got = append(got, a)
		return nil
	}})
	h.HandleKey(press(key.CodeS, key.ModControl))
	require.Len(t, got, 1)
	assert.Equal(t, "doodle.png", got[0].Name)
	assert.Equal(t, "image/png", got[0].MediaType)
	assert.NotEmpty(t, got[0].Data)
}

func TestSaveErrorIsLogged(t *testing.T) {
	h, _ := newHost(t, Options{Save: func(export.Artifact) error { return errors.New("disk full") }})
	assert.False(t, h.HandleKey(press(key.CodeS, key.ModControl)))
}

func TestPointerEventTranslation(t *testing.T) {
	size := image.Pt(40, 30)

	ev, ok := pointerEvent(mouse.Event{X: 3, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirPress}, size, false)
	require.True(t, ok)
	assert.Equal(t, engine.Event{Kind: engine.EventDown, X: 3, Y: 4}, ev)

	_, ok = pointerEvent(mouse.Event{X: 3, Y: 4, Button: mouse.ButtonRight, Direction: mouse.DirPress}, size, false)
	assert.False(t, ok)

	_, ok = pointerEvent(mouse.Event{X: 3, Y: 4, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep}, size, true)
	assert.False(t, ok)

	_, ok = pointerEvent(mouse.Event{X: 3, Y: 4}, size, false)
	assert.False(t, ok, "hover without a gesture is ignored")

	ev, ok = pointerEvent(mouse.Event{X: 7, Y: 8}, size, true)
	require.True(t, ok)
	assert.Equal(t, engine.EventMove, ev.Kind)

	ev, ok = pointerEvent(mouse.Event{X: 45, Y: 8}, size, true)
	require.True(t, ok)
	assert.Equal(t, engine.EventLeave, ev.Kind)

	ev, ok = pointerEvent(mouse.Event{X: 9, Y: 9, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}, size, true)
	require.True(t, ok)
	assert.Equal(t, engine.EventUp, ev.Kind)
}

func TestPointerDrawsOnCanvas(t *testing.T) {
	h, eng := newHost(t, Options{})
	h.HandleKey(press(key.CodeL, 0))
	drawStroke(h)
	assert.False(t, eng.Dragging())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, eng.Image().At(17, 12))
}

func TestFocusLossEndsGesture(t *testing.T) {
	h, eng := newHost(t, Options{})
	h.HandlePointer(mouse.Event{X: 5, Y: 5, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	require.True(t, eng.Dragging())

	dead := h.HandleLifecycle(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible})
	assert.False(t, dead)
	assert.False(t, eng.Dragging())
	undo, _ := eng.HistoryDepth()
	assert.Equal(t, 1, undo)

	assert.True(t, h.HandleLifecycle(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageDead}))
}

func TestStatus(t *testing.T) {
	h, _ := newHost(t, Options{})
	h.HandleKey(press(key.CodeG, 0))
	h.HandleKey(press(key.CodeF, 0))
	assert.Equal(t, "polygon  brush 5  fill on  sides 5  undo 0  redo 0", h.Status())
}

func TestDrawStatusFillsBar(t *testing.T) {
	h, _ := newHost(t, Options{})
	dst := image.NewRGBA(image.Rect(0, 0, 200, 30+statusHeight))
	bar := image.Rect(0, 30, 200, 30+statusHeight)
	h.drawStatus(dst, bar)
	assert.Equal(t, statusBackground, dst.RGBAAt(199, 30))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0), "canvas area is untouched")
}
