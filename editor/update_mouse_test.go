package editor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/buffer"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time            { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func newMouseModel(text string, clock *fakeClock) Model {
	m := New(Config{Text: text, Now: clock.Now})
	return m.SetSize(20, 3)
}

func TestMouse_ClickPlacesCaret(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world\nsecond", clock)

	m = click(m, 3, 1)
	if got, want := m.buf.Caret(), (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}

	m = click(m, 19, 0)
	if got, want := m.buf.Caret(), (buffer.Pos{Line: 0, Col: 11}); got != want {
		t.Fatalf("caret past end of line: got %v, want %v", got, want)
	}
	if _, ok := m.buf.Selection(); ok {
		t.Fatalf("plain click created a selection")
	}
}

func TestMouse_PressOutsideBoundsIsIgnored(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world\nsecond", clock)

	m = click(m, 3, 1)
	m = click(m, 99, 0)
	if got, want := m.buf.Caret(), (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("caret after out-of-bounds press: got %v, want %v", got, want)
	}
	m = click(m, 2, 5)
	if got, want := m.buf.Caret(), (buffer.Pos{Line: 1, Col: 3}); got != want {
		t.Fatalf("caret after press below the view: got %v, want %v", got, want)
	}
}

func TestMouse_DoubleClickSelectsWord(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world", clock)

	m = click(m, 2, 0)
	clock.Advance(100 * time.Millisecond)
	m = click(m, 2, 0)

	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 5}) {
		t.Fatalf("selection after double click: got %v (ok=%v), want [0,5)", r, ok)
	}
}

func TestMouse_SlowSecondClickIsSingleClick(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world", clock)

	m = click(m, 2, 0)
	clock.Advance(time.Second)
	m = click(m, 2, 0)

	if _, ok := m.buf.Selection(); ok {
		t.Fatalf("slow second click selected a word")
	}
	if got, want := m.buf.CaretOffset(), 2; got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
}

func TestMouse_DoubleClickStateIsPerModel(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	a := newMouseModel("hello world", clock)
	b := newMouseModel("hello world", clock)

	a = click(a, 2, 0)
	b = click(b, 2, 0)

	if _, ok := b.buf.Selection(); ok {
		t.Fatalf("first click on the second editor was treated as a double click")
	}
	if _, ok := a.buf.Selection(); ok {
		t.Fatalf("first editor selected without a second click")
	}
}

func TestMouse_ShiftClickExtendsFromCaret(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world", clock)

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 5}) {
		t.Fatalf("selection after shift click: got %v (ok=%v), want [0,5)", r, ok)
	}

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 8, Y: 0, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	r, ok = m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 8}) {
		t.Fatalf("selection after second shift click: got %v (ok=%v), want [0,8)", r, ok)
	}
}

func TestMouse_DragRetargetsCaret(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world", clock)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 1, End: 4}) {
		t.Fatalf("selection while dragging right: got %v (ok=%v), want [1,4)", r, ok)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	r, ok = m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 1}) {
		t.Fatalf("selection while dragging left: got %v (ok=%v), want [0,1)", r, ok)
	}
	if got, want := m.buf.CaretOffset(), 0; got != want {
		t.Fatalf("caret follows the pointer: got %d, want %d", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionMotion})
	r, ok = m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 1}) {
		t.Fatalf("motion after release changed the selection: got %v (ok=%v)", r, ok)
	}
}

func TestMouse_KeysExtendWhileButtonDown(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello world", clock)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = pressKey(m, tea.KeyRight)
	r, ok := m.buf.Selection()
	if !ok || r != (buffer.Range{Start: 1, End: 2}) {
		t.Fatalf("selection: got %v (ok=%v), want [1,2)", r, ok)
	}
}

func TestMouse_PressFocusesBlurredEditor(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newMouseModel("hello", clock).Blur()

	m = click(m, 2, 0)
	if !m.Focused() {
		t.Fatalf("click did not focus the editor")
	}
	if got, want := m.buf.CaretOffset(), 2; got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
}

func TestMouse_WheelScrollsWithoutMovingCaret(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3"})
	m = m.SetSize(10, 2)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.ViewportState().TopVisualRow; got <= 0 {
		t.Fatalf("top row after wheel: got %d, want > 0", got)
	}
	if got, want := m.buf.CaretOffset(), 0; got != want {
		t.Fatalf("wheel moved the caret to %d", got)
	}
}
