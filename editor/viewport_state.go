package editor

import "github.com/iw2rmb/caret/buffer"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual line index rendered at viewport screen row 0.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal cell offset when lines are not soft
	// wrapped.
	LeftCellOffset int
	// GutterWidth is the number of cells taken by line numbers.
	GutterWidth int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	left := 0
	if !m.softWraps() {
		left = m.xOffset
	}
	return ViewportState{
		TopVisualRow:   maxInt(m.viewport.YOffset, 0),
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: left,
		GutterWidth:    m.gutterWidth(),
		WrapMode:       m.cfg.WrapMode,
	}
}

// ScreenToDoc maps viewport-local screen coordinates to a caret position.
//
// Coordinates use terminal cells relative to the editor viewport.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a caret position to viewport-local screen coordinates.
//
// ok is false when the position is outside the visible viewport content.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	return (&m).docToScreenPos(pos)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
