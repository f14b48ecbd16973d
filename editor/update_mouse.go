package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		if msg.Action == tea.MouseActionRelease {
			m.mouse.down = false
		}
		return nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if !m.mouseInBounds(msg.X, msg.Y) {
			return nil
		}
		cmd := m.focus()
		m.press(m.buf.Snapshot().OffsetOf(m.screenToDocPos(msg.X, msg.Y)), msg.Shift)
		return cmd

	case tea.MouseActionMotion:
		if !m.mouse.down {
			return nil
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		off := m.buf.Snapshot().OffsetOf(m.screenToDocPos(x, y))
		m.buf.Select(m.mouse.anchor, off)

	case tea.MouseActionRelease:
		m.mouse.down = false
	}
	return nil
}

// press places the caret for a left-button press at logical offset off.
func (m *Model) press(off int, shift bool) {
	now := m.cfg.now()

	if shift {
		anchor, ok := m.buf.Anchor()
		if !ok {
			anchor = m.buf.CaretOffset()
		}
		m.mouse.anchor = anchor
		m.mouse.down = true
		m.mouse.hasLastClick = false
		m.buf.Select(anchor, off)
		return
	}

	double := m.mouse.hasLastClick &&
		m.mouse.lastClickOffset == off &&
		now.Sub(m.mouse.lastClickAt) <= m.cfg.doubleClickInterval()
	if double {
		m.mouse.hasLastClick = false
		m.mouse.down = false
		m.buf.SetCaretOffset(off)
		if !m.buf.SelectWordAtCaret() {
			m.buf.ClearSelection()
		}
		return
	}

	m.mouse.lastClickAt = now
	m.mouse.lastClickOffset = off
	m.mouse.hasLastClick = true
	m.mouse.anchor = off
	m.mouse.down = true
	m.buf.ClearSelection()
	m.buf.SetCaretOffset(off)
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
