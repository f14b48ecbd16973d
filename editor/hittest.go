package editor

import (
	"github.com/iw2rmb/caret/buffer"
)

// screenToDocPos maps viewport-local cell coordinates to a caret position.
//
// (0,0) is the top-left of the viewport. Gutter clicks map to column 0 and
// coordinates outside the text are clamped into the document.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	s := m.buf.Snapshot()
	row := clampInt(m.viewport.YOffset+y, 0, s.LineCount()-1)

	x = maxInt(x-m.gutterWidth(), 0)
	if !m.softWraps() {
		x += m.xOffset
	}
	col := m.measure.ColumnAt(s.LineText(row), x)
	return s.ClampPos(buffer.Pos{Line: row, Col: col})
}

// docToScreenPos maps a caret position to viewport-local cell coordinates.
//
// ok is false when the position is scrolled out of view.
func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	s := m.buf.Snapshot()
	pos = s.ClampPos(pos)

	x = m.measure.TextWidth(s.LineText(pos.Line), pos.Col)
	if !m.softWraps() {
		x -= m.xOffset
	}
	x += m.gutterWidth()
	y = pos.Line - m.viewport.YOffset

	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return x, y, x >= 0 && y >= 0
	}
	ok = y >= 0 && y < m.visibleRowCount() && x >= 0 && x < m.viewport.Width
	return x, y, ok
}
