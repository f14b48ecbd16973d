package editor

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/runeutil"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/iw2rmb/caret/buffer"
	"github.com/iw2rmb/caret/layout"
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// mouseState belongs to one Model, so two editors never share click history.
type mouseState struct {
	down   bool
	anchor int

	lastClickAt     time.Time
	lastClickOffset int
	hasLastClick    bool
}

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// Model is a value type; copies share the underlying *buffer.Buffer.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	log  logr.Logger
	keys KeyMap

	measure   layout.CellMeasurer
	sanitizer runeutil.Sanitizer

	id      int
	focused bool

	viewport viewport.Model
	cursor   cursor.Model
	lines    []string
	xOffset  int

	mouse mouseState

	lastVersion     uint64
	lastTextVersion uint64
	lastBlinkReset  time.Time

	asyncView    string
	asyncVersion uint64
	hasAsyncView bool
}

func New(cfg Config) Model {
	log := cfg.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	keys := cfg.KeyMap
	if len(keys.Left.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	newline := "\n"
	if cfg.SingleLine {
		newline = " "
	}

	m := Model{
		cfg:       cfg,
		log:       log,
		keys:      keys,
		measure:   layout.CellMeasurer{TabWidth: cfg.TabWidth},
		sanitizer: runeutil.NewSanitizer(runeutil.ReplaceTabs("\t"), runeutil.ReplaceNewlines(newline)),
		id:        nextID(),
		focused:   true,
		viewport:  viewport.New(0, 0),
		cursor:    cursor.New(),
	}
	m.buf = buffer.New(m.clean(cfg.Text), buffer.Options{
		MaxLength:  cfg.MaxLength,
		MaxLines:   cfg.MaxLines,
		SingleLine: cfg.SingleLine,
		Wrap:       cfg.WrapMode.policy(),
		Wrapper:    layout.Wrapper{TabWidth: cfg.TabWidth},
		Measurer:   m.measure,
		Veto:       cfg.Veto,
		Logger:     log.WithName("buffer"),
		Now:        cfg.Now,
	})

	m.cursor.Style = cfg.Style.Cursor
	m.cursor.TextStyle = cfg.Style.Text
	m.cursor.SetMode(cfg.CursorMode)
	m.cursor.Focus()

	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastBlinkReset = m.buf.BlinkResetAt()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// ID identifies the Model in messages produced by its commands.
func (m Model) ID() int { return m.id }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd {
	if m.focused && m.cursor.Mode() == cursor.CursorBlink {
		return cursor.Blink
	}
	return nil
}

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = maxInt(width, 0)
	m.viewport.Height = maxInt(height, 0)

	m.syncWidth()
	m.refresh()
	m.sync()
	return m
}

func (m Model) WrapMode() WrapMode { return m.cfg.WrapMode }

// SetWrapMode rewraps the buffer. The caret keeps its logical offset.
func (m Model) SetWrapMode(mode WrapMode) Model {
	if mode == m.cfg.WrapMode {
		return m
	}
	m.cfg.WrapMode = mode
	m.xOffset = 0
	m.buf.SetWrap(mode.policy())
	m.syncWidth()
	m.refresh()
	m.sync()
	return m
}

func (m Model) Focus() Model {
	m.focus()
	return m
}

// Blur drops focus and the selection anchor.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouse.down = false
		m.cursor.Blur()
		m.buf.ClearSelection()
		m.rebuildContent()
		m.sync()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) SetReadOnly(v bool) Model {
	m.cfg.ReadOnly = v
	return m
}

func (m Model) View() string {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return strings.Join(m.lines, "\n")
	}
	return m.viewport.View()
}

func (m *Model) focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	cmd := m.cursor.Focus()
	m.refresh()
	return cmd
}

// sync reconciles the view with buffer state changed by this Update or by
// the host, and reports the change through Config.OnChange.
func (m *Model) sync() tea.Cmd {
	var cmd tea.Cmd
	if at := m.buf.BlinkResetAt(); !at.Equal(m.lastBlinkReset) {
		m.lastBlinkReset = at
		if m.focused {
			m.cursor.Blink = m.cursor.Mode() == cursor.CursorHide
			cmd = m.cursor.BlinkCmd()
		}
	}

	ver := m.buf.Version()
	if ver == m.lastVersion {
		if cmd != nil {
			m.rebuildContent()
		}
		return cmd
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	m.lastVersion = ver
	m.lastTextVersion = m.buf.TextVersion()

	m.syncWidth()
	m.refresh()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	return cmd
}

// refresh re-renders and scrolls so the caret stays visible.
func (m *Model) refresh() {
	m.followCaretX()
	m.rebuildContent()
	m.followCaretY()
}

func (m *Model) rebuildContent() {
	m.lines = renderSnapshot(m.buf.Snapshot(), m.renderState())
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
}

// syncWidth keeps the wrap budget one cell narrower than the text area so a
// caret at the end of a full line stays on screen.
func (m *Model) syncWidth() {
	if m.viewport.Width <= 0 {
		m.buf.SetWidth(0)
		return
	}
	m.buf.SetWidth(maxInt(m.contentWidth()-1, 1))
}

func (m Model) softWraps() bool {
	return !m.cfg.SingleLine && m.cfg.WrapMode != WrapNone
}

func (m *Model) followCaretX() {
	if m.softWraps() {
		m.xOffset = 0
		return
	}
	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	x, _ := m.buf.CaretPixel()
	if x < m.xOffset {
		m.xOffset = x
	}
	if x >= m.xOffset+w {
		m.xOffset = x - w + 1
	}
}

func (m *Model) followCaretY() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row := m.buf.Caret().Line
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return maxInt(w, 0)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterWidthFor(m.buf.Snapshot())
}

func (m Model) renderState() renderState {
	return renderState{
		focused:      m.focused,
		caret:        m.buf.Caret(),
		selection:    selectionOf(m.buf),
		showLineNums: m.cfg.ShowLineNums,
		xOffset:      m.xOffset,
		cut:          !m.softWraps() && m.viewport.Width > 0,
		width:        m.contentWidth(),
		style:        m.cfg.Style,
		cursor:       m.cursor,
		measure:      m.measure,
		placeholder:  m.cfg.Placeholder,
	}
}

func selectionOf(b *buffer.Buffer) buffer.SelectionState {
	if r, ok := b.Selection(); ok {
		return buffer.SelectionState{Active: true, Range: r}
	}
	return buffer.SelectionState{}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
