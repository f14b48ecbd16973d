package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderedMsg carries a view rendered off the update goroutine by
// RenderAsync.
type RenderedMsg struct {
	// ID is the Model that requested the render.
	ID int
	// Version is the buffer version the view was rendered from.
	Version uint64
	View    string
}

// RenderAsync returns a command that renders the committed snapshot on the
// command goroutine. The resulting RenderedMsg is kept by Update only while
// the buffer is still at the rendered version; a later edit supersedes it.
//
// The command reads an immutable snapshot and a copy of the render state, so
// the Model may keep handling input while it runs.
func (m Model) RenderAsync() tea.Cmd {
	snap := m.buf.Snapshot()
	st := m.renderState()
	id, ver := m.id, m.buf.Version()
	return func() tea.Msg {
		return RenderedMsg{
			ID:      id,
			Version: ver,
			View:    strings.Join(renderSnapshot(snap, st), "\n"),
		}
	}
}

// AsyncView returns the latest view delivered by RenderAsync. ok is false
// when none has arrived or the buffer changed since it was requested.
func (m Model) AsyncView() (string, bool) {
	if !m.hasAsyncView || m.asyncVersion != m.buf.Version() {
		return "", false
	}
	return m.asyncView, true
}

func (m *Model) acceptRendered(msg RenderedMsg) {
	if msg.ID != m.id || msg.Version != m.buf.Version() {
		m.log.V(2).Info("dropping stale render", "version", msg.Version, "current", m.buf.Version())
		return
	}
	m.asyncView = msg.View
	m.asyncVersion = msg.Version
	m.hasAsyncView = true
}
