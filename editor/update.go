package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/buffer"
)

const byteOrderMark = "\ufeff"

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		cmds = append(cmds, m.focus())
	case tea.BlurMsg:
		m = m.Blur()
		return m, nil
	case tea.KeyMsg:
		if m.focused {
			m.handleKey(msg)
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case RenderedMsg:
		m.acceptRendered(msg)
		return m, nil
	default:
		blink := m.cursor.Blink
		var cmd tea.Cmd
		m.cursor, cmd = m.cursor.Update(msg)
		cmds = append(cmds, cmd)
		if m.cursor.Blink != blink {
			m.rebuildContent()
		}
	}

	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

// HandleKey dispatches one key event and reports whether the editor consumed
// it. Unhandled keys (Enter in single-line mode, unbound shortcuts) are left
// for the host. The returned command restarts the caret blink after a move.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if !m.focused {
		return m, nil, false
	}
	handled := m.handleKey(msg)
	cmd := m.sync()
	return m, cmd, handled
}

func (m *Model) handleKey(msg tea.KeyMsg) bool {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Paste {
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !m.cfg.ReadOnly {
			m.insert(strings.TrimPrefix(string(msg.Runes), byteOrderMark))
		}
		return true
	}

	km := m.keys
	extend := m.mouse.down

	switch {
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if len(msg.Runes) > 0 && !m.cfg.ReadOnly {
			m.insert(string(msg.Runes))
		}
		return true
	case msg.Type == tea.KeySpace:
		if !m.cfg.ReadOnly {
			m.buf.InsertRune(' ')
		}
		return true

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward(false)
		}
		return true
	case key.Matches(msg, km.WordBackspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward(true)
		}
		return true
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward(false)
		}
		return true
	case key.Matches(msg, km.WordDelete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward(true)
		}
		return true

	case key.Matches(msg, km.Left):
		m.moveHorizontal(buffer.MoveChar, buffer.DirLeft, extend)
	case key.Matches(msg, km.Right):
		m.moveHorizontal(buffer.MoveChar, buffer.DirRight, extend)
	case key.Matches(msg, km.WordLeft):
		m.moveHorizontal(buffer.MoveWord, buffer.DirLeft, extend)
	case key.Matches(msg, km.WordRight):
		m.moveHorizontal(buffer.MoveWord, buffer.DirRight, extend)
	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveChar, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftWordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftWordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight, Extend: true})

	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: extend})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: extend})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: extend})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: extend})
	case key.Matches(msg, km.ShiftHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome, Extend: extend})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd, Extend: extend})
	case key.Matches(msg, km.ShiftDocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftDocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd, Extend: true})

	case key.Matches(msg, km.Enter):
		if m.cfg.SingleLine {
			return false
		}
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}
	case msg.Type == tea.KeyTab:
		if m.cfg.SingleLine {
			return false
		}
		if !m.cfg.ReadOnly {
			m.buf.InsertRune('\t')
		}

	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		return false
	}
	return true
}

// moveHorizontal collapses an active selection onto the edge facing dir and
// stops there; otherwise it moves the caret.
func (m *Model) moveHorizontal(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
	if !extend && m.buf.CollapseSelection(dir) {
		return
	}
	m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
}

// insert sanitizes typed or pasted text and inserts it over the selection.
func (m *Model) insert(s string) {
	if s = m.clean(s); s == "" {
		return
	}
	m.buf.InsertText(s)
}

// clean folds CRLF pairs and drops control characters other than tabs and
// line breaks. Single-line editors turn line breaks into spaces.
func (m *Model) clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return string(m.sanitizer.Sanitize([]rune(s)))
}

func (m *Model) copySelection() {
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.writeClipboard(s); err != nil {
		m.log.Error(err, "copy failed")
	}
}

func (m *Model) cutSelection() {
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.writeClipboard(s); err != nil {
		m.log.Error(err, "cut failed")
		return
	}
	m.buf.DeleteSelection()
}

func (m *Model) pasteClipboard() {
	s, err := m.readClipboard()
	if err != nil {
		m.log.Error(err, "paste failed")
		return
	}
	s = strings.TrimPrefix(s, byteOrderMark)
	if s == "" {
		m.buf.DeleteSelection()
		return
	}
	m.insert(s)
}

func (m *Model) writeClipboard(s string) error {
	if m.cfg.Clipboard == nil {
		return ErrNoClipboard
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return fmt.Errorf("editor: write clipboard: %w", err)
	}
	return nil
}

func (m *Model) readClipboard() (string, error) {
	if m.cfg.Clipboard == nil {
		return "", ErrNoClipboard
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return "", fmt.Errorf("editor: read clipboard: %w", err)
	}
	return s, nil
}
