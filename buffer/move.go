package buffer

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// Extend keeps or starts a selection: the anchor is set to the pre-move
	// caret if none exists. Without Extend the selection is cleared.
	Extend bool
}

// Move applies m and reports whether caret or selection changed.
func (b *Buffer) Move(m Move) bool {
	prev := b.caretState()
	s := b.snap.Load()
	from := s.OffsetOf(b.caret)

	next := b.moveCaret(s, b.caret, m)

	if m.Extend {
		if !b.hasAnchor {
			b.anchor = from
			b.hasAnchor = true
		}
	} else {
		b.hasAnchor = false
	}
	b.setCaretPos(next)
	b.settle(prev, false)
	return b.caretState() != prev
}

// MoveCaret moves the caret one step in dir (-1 or +1): one character, or one
// word when wholeWord is set. A word step first skips whitespace, then a run
// of characters sharing the rank of the first non-whitespace character.
// With skipTrailingSpace, a step that did not start on whitespace also skips
// the whitespace following the run.
//
// Moving past either end of the text is a no-op. The anchor is kept.
func (b *Buffer) MoveCaret(dir int, wholeWord, skipTrailingSpace bool) {
	if dir == 0 {
		return
	}
	prev := b.caretState()
	s := b.snap.Load()
	off := s.OffsetOf(b.caret)

	var target int
	if wholeWord {
		target = wordBoundary(s.text, off, dir, skipTrailingSpace)
	} else {
		target = clampInt(off+signInt(dir), 0, s.Len())
	}
	if target == off {
		return
	}
	b.setCaretPos(s.PosOf(target))
	b.settle(prev, false)
}

// CollapseSelection moves the caret to the selection edge facing dir and
// clears the selection. It reports false, doing nothing, when no selection
// is active.
func (b *Buffer) CollapseSelection(dir MoveDir) bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	prev := b.caretState()
	s := b.snap.Load()

	target := r.End
	if dir == DirLeft || dir == DirUp || dir == DirHome {
		target = r.Start
	}
	b.hasAnchor = false
	b.setCaretPos(s.PosOf(target))
	b.settle(prev, false)
	return true
}

func (b *Buffer) moveCaret(s *Snapshot, p Pos, m Move) Pos {
	switch m.Unit {
	case MoveChar:
		return moveChar(s, p, m.Dir)
	case MoveWord:
		return moveWord(s, p, m.Dir)
	case MoveLine:
		return moveLine(s, p, m.Dir)
	case MoveDoc:
		return moveDoc(s, p, m.Dir)
	default:
		return p
	}
}

func moveChar(s *Snapshot, p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		return s.PosOf(s.OffsetOf(p) - 1)
	case DirRight:
		return s.PosOf(s.OffsetOf(p) + 1)
	default:
		return moveLine(s, p, dir)
	}
}

func moveWord(s *Snapshot, p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		return s.PosOf(wordBoundary(s.text, s.OffsetOf(p), -1, false))
	case DirRight:
		return s.PosOf(wordBoundary(s.text, s.OffsetOf(p), 1, true))
	default:
		return moveLine(s, p, dir)
	}
}

func moveLine(s *Snapshot, p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Line: p.Line, Col: 0}
	case DirEnd:
		return Pos{Line: p.Line, Col: s.MaxCol(p.Line)}
	case DirUp:
		if p.Line == 0 {
			return p
		}
		return s.ClampPos(Pos{Line: p.Line - 1, Col: p.Col})
	case DirDown:
		if p.Line >= s.LineCount()-1 {
			return p
		}
		return s.ClampPos(Pos{Line: p.Line + 1, Col: p.Col})
	case DirLeft:
		return moveChar(s, p, dir)
	case DirRight:
		return moveChar(s, p, dir)
	default:
		return p
	}
}

func moveDoc(s *Snapshot, p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return s.PosOf(0)
	case DirEnd, DirDown, DirRight:
		return s.PosOf(s.Len())
	default:
		return p
	}
}

// wordBoundary returns the offset reached by one word step from off.
func wordBoundary(text []rune, off, dir int, skipTrailingSpace bool) int {
	n := len(text)
	i := clampInt(off, 0, n)

	if dir > 0 {
		for i < n && RankOf(text[i]) == RankWhitespace {
			i++
		}
		startedOnSpace := i > off
		if i < n {
			rank := RankOf(text[i])
			for i < n && RankOf(text[i]) == rank {
				i++
			}
		}
		if skipTrailingSpace && !startedOnSpace {
			for i < n && RankOf(text[i]) == RankWhitespace {
				i++
			}
		}
		return i
	}

	for i > 0 && RankOf(text[i-1]) == RankWhitespace {
		i--
	}
	startedOnSpace := i < off
	if i > 0 {
		rank := RankOf(text[i-1])
		for i > 0 && RankOf(text[i-1]) == rank {
			i--
		}
	}
	if skipTrailingSpace && !startedOnSpace {
		for i > 0 && RankOf(text[i-1]) == RankWhitespace {
			i--
		}
	}
	return i
}

func signInt(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
