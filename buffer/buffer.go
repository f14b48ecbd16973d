package buffer

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
)

var errWrapperContract = errors.New("buffer: wrapper output does not flatten to the logical text")

// Options configures a Buffer. The zero value is a usable unconstrained
// multi-line buffer without soft wrapping.
type Options struct {
	// MaxLength caps the logical length in runes. Values <= 0 (conventionally
	// -1) mean unlimited.
	MaxLength int
	// MaxLines caps the visual line count after wrapping. Values <= 0 mean
	// unlimited.
	MaxLines int

	// SingleLine keeps the whole text on one visual line and disables
	// InsertNewline.
	SingleLine bool

	// Wrap selects the soft-wrap policy; WrapNone wraps with an unbounded width.
	Wrap WrapPolicy
	// Width is the wrap budget in Measurer units.
	Width int

	Wrapper  Wrapper
	Measurer Measurer

	// Veto is consulted before every commit with the candidate visual lines.
	Veto func(candidate []string) bool

	// OnChange is called with the new logical text after every accepted commit.
	OnChange func(text string)
	// OnCaretMove is called with the new caret position after it moves.
	OnCaretMove func(p Pos)

	Logger logr.Logger

	// Now stamps caret blink resets. Defaults to time.Now.
	Now func() time.Time
}

type caretState struct {
	caret     Pos
	anchor    int
	hasAnchor bool
}

// Buffer is the editing state: committed text, derived visual lines, caret
// and selection anchor.
//
// A Buffer has a single writer. Snapshot may be called concurrently.
type Buffer struct {
	opt  Options
	gate Gate
	log  logr.Logger

	snap atomic.Pointer[Snapshot]

	version     uint64
	textVersion uint64

	caret     Pos
	anchor    int
	hasAnchor bool

	caretX, caretY int
	blinkReset     time.Time

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the caret at (0,0).
//
// The initial text is truncated and normalized like any other content but is
// not passed through the gate and does not fire OnChange.
func New(text string, opt Options) *Buffer {
	b := &Buffer{
		opt:  opt,
		gate: Gate{MaxLines: opt.MaxLines, Veto: opt.Veto},
		log:  opt.Logger,
	}
	if b.log.GetSink() == nil {
		b.log = logr.Discard()
	}

	runes := b.truncate([]rune(normalizeBreaks(text)))
	b.snap.Store(newSnapshot(0, opt.Width, runes, b.layoutLines(runes, opt.Width)))
	b.setCaretPos(Pos{})
	return b
}

// Snapshot returns the committed content. It is safe to call from any
// goroutine.
func (b *Buffer) Snapshot() *Snapshot { return b.snap.Load() }

func (b *Buffer) Text() string { return b.snap.Load().Text() }

// Lines returns the visual lines, each keeping its trailing hard break.
func (b *Buffer) Lines() []string { return b.snap.Load().Lines() }

func (b *Buffer) LineCount() int { return b.snap.Load().LineCount() }

func (b *Buffer) Line(i int) Line { return b.snap.Load().Line(i) }

// Len returns the logical length in runes.
func (b *Buffer) Len() int { return b.snap.Load().Len() }

// Version changes whenever text, caret or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the logical text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) SingleLine() bool { return b.opt.SingleLine }

func (b *Buffer) MaxLength() int { return b.opt.MaxLength }

func (b *Buffer) MaxLines() int { return b.opt.MaxLines }

func (b *Buffer) Width() int { return b.snap.Load().Width() }

func (b *Buffer) WrapPolicy() WrapPolicy { return b.opt.Wrap }

// ReplaceAll replaces the whole logical text. It reports whether the edit
// was accepted; a rejected edit leaves text, caret and selection untouched.
//
// The caret keeps its (line, col) clamped into the new layout.
func (b *Buffer) ReplaceAll(text string) bool {
	s := b.snap.Load()
	runes := b.truncate([]rune(normalizeBreaks(text)))
	return b.commit(txn{
		text:      runes,
		keepCaret: true,
		replaced:  Range{Start: 0, End: s.Len()},
		inserted:  string(runes),
	})
}

// SetWidth re-wraps the committed text for a new width budget. Reflow is not
// an edit: it bypasses the gate and keeps the caret at the same logical offset.
func (b *Buffer) SetWidth(width int) {
	s := b.snap.Load()
	if width == s.width {
		return
	}
	b.reflow(width, b.opt.Wrap)
}

// SetWrap changes the wrap policy and re-wraps the committed text.
func (b *Buffer) SetWrap(policy WrapPolicy) {
	if policy == b.opt.Wrap {
		return
	}
	b.reflow(b.snap.Load().width, policy)
}

func (b *Buffer) reflow(width int, policy WrapPolicy) {
	prev := b.caretState()
	s := b.snap.Load()
	off := s.OffsetOf(b.caret)

	b.opt.Wrap = policy
	next := newSnapshot(s.version, width, s.text, b.layoutLines(s.text, width))
	b.snap.Store(next)
	b.setCaretPos(next.PosOf(off))
	b.settle(prev, false)
}

// txn is a staged edit: the full candidate text and where the caret lands if
// the gate accepts it.
type txn struct {
	text []rune

	// caret is the logical offset of the caret after commit.
	caret int
	// keepCaret clamps the current (line, col) instead of using caret, and
	// keeps the anchor.
	keepCaret bool

	replaced Range
	inserted string
}

// commit lays out tx, passes it through the gate and publishes it. Nothing
// observable changes on rejection.
func (b *Buffer) commit(tx txn) bool {
	cur := b.snap.Load()
	prev := b.caretState()
	prevVersion := b.version
	prevOffset := cur.OffsetOf(b.caret)
	prevSel := selectionStateOf(prev, cur)

	changed := string(tx.text) != cur.str
	next := cur
	if changed {
		lines := b.layoutLines(tx.text, cur.width)
		candidate := lineStrings(tx.text, lines)
		if reason := b.gate.check(cur.LineCount(), candidate); reason != GateAccepted {
			b.log.V(1).Info("edit rejected",
				"reason", reason.String(),
				"lines", len(candidate),
				"currentLines", cur.LineCount(),
				"maxLines", b.gate.MaxLines)
			return false
		}
		b.textVersion++
		next = newSnapshot(b.textVersion, cur.width, tx.text, lines)
		b.snap.Store(next)
	}

	if tx.keepCaret {
		b.setCaretPos(next.ClampPos(b.caret))
		if b.hasAnchor {
			b.anchor = clampInt(b.anchor, 0, next.Len())
		}
	} else {
		b.hasAnchor = false
		b.setCaretPos(next.PosOf(tx.caret))
	}
	b.settle(prev, changed)

	if changed {
		b.lastChange = Change{
			VersionBefore: prevVersion,
			VersionAfter:  b.version,
			CaretBefore:   prev.caret,
			CaretAfter:    b.caret,
			OffsetBefore:  prevOffset,
			OffsetAfter:   next.OffsetOf(b.caret),

			SelectionBefore: prevSel,
			SelectionAfter:  selectionStateOf(b.caretState(), next),

			Replaced: tx.replaced,
			Deleted:  cur.Slice(tx.replaced.Start, tx.replaced.End),
			Inserted: tx.inserted,
		}
		b.hasLastChange = true
	}
	return true
}

func (b *Buffer) layoutLines(text []rune, width int) []Line {
	if b.opt.SingleLine {
		return singleLine(text)
	}

	w := width
	if b.opt.Wrap == WrapNone || w <= 0 {
		w = Unbounded
	}
	wrapper := b.opt.Wrapper
	if wrapper == nil {
		wrapper = WrapperFunc(SplitHardBreaks)
	}

	raw := wrapper.Wrap(string(text), w, b.opt.Wrap)
	lines, ok := indexLines(raw, text)
	if !ok {
		b.log.Error(errWrapperContract, "falling back to hard-break lines", "lines", len(raw), "width", w)
		lines, _ = indexLines(SplitHardBreaks(string(text), w, b.opt.Wrap), text)
	}
	return lines
}

// truncate enforces MaxLength on a whole text.
func (b *Buffer) truncate(text []rune) []rune {
	if b.opt.MaxLength > 0 && len(text) > b.opt.MaxLength {
		b.log.V(1).Info("text truncated", "length", len(text), "maxLength", b.opt.MaxLength)
		return text[:b.opt.MaxLength]
	}
	return text
}

// room returns how many runes may be added to a text of length base.
func (b *Buffer) room(base int) int {
	if b.opt.MaxLength <= 0 {
		return Unbounded
	}
	return maxInt(b.opt.MaxLength-base, 0)
}

func (b *Buffer) caretState() caretState {
	return caretState{caret: b.caret, anchor: b.anchor, hasAnchor: b.hasAnchor}
}

// settle drops an anchor that coincides with the caret, then bumps the
// version and notifies listeners for whatever changed since prev.
func (b *Buffer) settle(prev caretState, textChanged bool) {
	s := b.snap.Load()
	if b.hasAnchor && b.anchor == s.OffsetOf(b.caret) {
		b.hasAnchor = false
	}
	if !b.hasAnchor {
		b.anchor = 0
	}

	next := b.caretState()
	if !textChanged && next == prev {
		return
	}
	b.version++
	if textChanged && b.opt.OnChange != nil {
		b.opt.OnChange(s.Text())
	}
	if next.caret != prev.caret && b.opt.OnCaretMove != nil {
		b.opt.OnCaretMove(next.caret)
	}
}
