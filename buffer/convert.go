package buffer

import "time"

type OffsetClampMode uint8

const (
	// OffsetError rejects out-of-range input.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps out-of-range input into bounds.
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// ClampPos clamps p into the snapshot's valid caret positions.
//
// The returned Pos always satisfies:
// - 0 <= Line < LineCount()
// - 0 <= Col <= MaxCol(Line)
func (s *Snapshot) ClampPos(p Pos) Pos {
	line := clampInt(p.Line, 0, len(s.lines)-1)
	return Pos{Line: line, Col: clampInt(p.Col, 0, s.MaxCol(line))}
}

// OffsetOf converts a caret position to a logical offset. p is clamped first.
func (s *Snapshot) OffsetOf(p Pos) int {
	p = s.ClampPos(p)
	return s.lines[p.Line].Start + p.Col
}

// PosOf converts a logical offset to a caret position by scanning the line
// index. off is clamped into [0, Len()].
func (s *Snapshot) PosOf(off int) Pos {
	off = clampInt(off, 0, len(s.text))
	for i, l := range s.lines {
		if off <= l.Start+s.MaxCol(i) {
			return Pos{Line: i, Col: maxInt(off-l.Start, 0)}
		}
	}
	last := len(s.lines) - 1
	return Pos{Line: last, Col: s.MaxCol(last)}
}

func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	s := b.snap.Load()
	switch p.ClampMode {
	case OffsetError:
		if off < 0 || off > s.Len() {
			return Pos{}, false
		}
	case OffsetClamp:
	default:
		return Pos{}, false
	}
	return s.PosOf(off), true
}

func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	s := b.snap.Load()
	switch p.ClampMode {
	case OffsetError:
		if s.ClampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}
	return s.OffsetOf(pos), true
}

// Caret returns the caret position.
func (b *Buffer) Caret() Pos { return b.caret }

// CaretOffset returns the caret as a logical offset.
func (b *Buffer) CaretOffset() int { return b.snap.Load().OffsetOf(b.caret) }

// CaretPixel returns the caret's position in Measurer units, relative to the
// top-left of the first visual line.
func (b *Buffer) CaretPixel() (x, y int) { return b.caretX, b.caretY }

// BlinkResetAt is when the caret was last placed. Renderers restart the blink
// cycle from this instant.
func (b *Buffer) BlinkResetAt() time.Time { return b.blinkReset }

// SetCaret moves the caret to (line, col), clamped into the current layout.
// The selection anchor is kept.
func (b *Buffer) SetCaret(line, col int) {
	prev := b.caretState()
	b.setCaretPos(b.snap.Load().ClampPos(Pos{Line: line, Col: col}))
	b.settle(prev, false)
}

// SetCaretOffset moves the caret to logical offset off, clamped.
// The selection anchor is kept.
func (b *Buffer) SetCaretOffset(off int) {
	prev := b.caretState()
	b.setCaretPos(b.snap.Load().PosOf(off))
	b.settle(prev, false)
}

// setCaretPos places the caret at an already valid position, restarting the
// blink timer and recomputing the caret's pixel position.
func (b *Buffer) setCaretPos(p Pos) {
	s := b.snap.Load()
	m := b.measurer()
	b.caret = p
	b.caretX = m.TextWidth(s.LineText(p.Line), p.Col)
	b.caretY = p.Line * m.LineHeight()
	b.blinkReset = b.now()
}

func (b *Buffer) measurer() Measurer {
	if b.opt.Measurer != nil {
		return b.opt.Measurer
	}
	return runeMeasurer{}
}

func (b *Buffer) now() time.Time {
	if b.opt.Now != nil {
		return b.opt.Now()
	}
	return time.Now()
}
