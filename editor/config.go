package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/go-logr/logr"

	"github.com/iw2rmb/caret/buffer"
)

// DefaultDoubleClickInterval is the press-to-press window that turns a
// second click on the same offset into a word selection.
const DefaultDoubleClickInterval = 400 * time.Millisecond

// Config configures the editor Model. The zero value is a focused,
// unconstrained, non-wrapping multi-line editor with plain styles.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Forwarded to buffer.Options.
	SingleLine bool
	MaxLength  int
	MaxLines   int
	Veto       func(candidate []string) bool

	WrapMode WrapMode
	// TabWidth sets tab stops for measuring, wrapping and rendering.
	TabWidth int

	ReadOnly    bool
	Placeholder string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	CursorMode   cursor.Mode

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	Clipboard Clipboard

	// OnChange fires once per Update that changed text, caret or selection.
	OnChange func(ChangeEvent)

	// DoubleClickInterval defaults to DefaultDoubleClickInterval.
	DoubleClickInterval time.Duration
	// Now is the clock for double-click detection and caret blink resets.
	Now func() time.Time

	Logger logr.Logger
}

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one hard line per visual line and scrolls horizontally to
// keep the caret visible. WrapWord and WrapGrapheme soft-wrap to the editor
// width.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (w WrapMode) policy() buffer.WrapPolicy {
	switch w {
	case WrapWord:
		return buffer.WrapWord
	case WrapGrapheme:
		return buffer.WrapGrapheme
	default:
		return buffer.WrapNone
	}
}

func (c Config) doubleClickInterval() time.Duration {
	if c.DoubleClickInterval > 0 {
		return c.DoubleClickInterval
	}
	return DefaultDoubleClickInterval
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
