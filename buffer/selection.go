package buffer

// Selection returns the active selection as a normalized offset range.
// ok is false when there is no anchor or the range is empty.
func (b *Buffer) Selection() (Range, bool) {
	if !b.hasAnchor {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.anchor, End: b.CaretOffset()})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// Anchor returns the selection anchor offset, if one is set.
func (b *Buffer) Anchor() (int, bool) {
	return b.anchor, b.hasAnchor
}

// SetAnchor fixes the selection anchor at off (clamped). An anchor equal to
// the caret is dropped.
func (b *Buffer) SetAnchor(off int) {
	prev := b.caretState()
	b.anchor = clampInt(off, 0, b.Len())
	b.hasAnchor = true
	b.settle(prev, false)
}

// Select sets the anchor and moves the caret, both in logical offsets.
func (b *Buffer) Select(anchor, caret int) {
	prev := b.caretState()
	s := b.snap.Load()
	b.anchor = clampInt(anchor, 0, s.Len())
	b.hasAnchor = true
	b.setCaretPos(s.PosOf(caret))
	b.settle(prev, false)
}

func (b *Buffer) ClearSelection() {
	prev := b.caretState()
	b.hasAnchor = false
	b.settle(prev, false)
}

// SelectAll anchors at offset 0 and moves the caret to the end of the text.
func (b *Buffer) SelectAll() {
	b.Select(0, b.Len())
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.snap.Load().Slice(r.Start, r.End)
}

// SelectWordAtCaret selects the run of same-rank characters around the caret
// and reports whether a selection was made.
//
// The rank of the character after the caret is used unless it is whitespace
// or missing, in which case the character before decides. When whitespace
// surrounds the caret nothing is selected and the current selection is kept.
func (b *Buffer) SelectWordAtCaret() bool {
	s := b.snap.Load()
	off := s.OffsetOf(b.caret)

	left, hasLeft := s.RuneAt(off - 1)
	right, hasRight := s.RuneAt(off)

	var rank Rank
	switch {
	case hasRight && RankOf(right) != RankWhitespace:
		rank = RankOf(right)
	case hasLeft && RankOf(left) != RankWhitespace:
		rank = RankOf(left)
	default:
		return false
	}

	start, end := off, off
	for start > 0 && RankOf(s.text[start-1]) == rank {
		start--
	}
	for end < len(s.text) && RankOf(s.text[end]) == rank {
		end++
	}
	if start == end {
		return false
	}
	b.Select(start, end)
	return true
}
