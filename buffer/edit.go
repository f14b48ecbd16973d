package buffer

// InsertText inserts s at the caret, replacing the active selection in the
// same edit. Line breaks are normalized and s is truncated to the room left
// under MaxLength. It reports whether the edit was accepted.
func (b *Buffer) InsertText(s string) bool {
	r, ok := b.Selection()
	if !ok {
		off := b.CaretOffset()
		r = Range{Start: off, End: off}
	}
	return b.replaceRange(r, s)
}

func (b *Buffer) InsertRune(r rune) bool {
	return b.InsertText(string(r))
}

// InsertNewline inserts a hard break at the caret. Single-line buffers refuse.
func (b *Buffer) InsertNewline() bool {
	if b.opt.SingleLine {
		return false
	}
	return b.InsertText(string(HardBreak))
}

// ReplaceSelection replaces the active selection with s. It reports false
// without editing when nothing is selected.
func (b *Buffer) ReplaceSelection(s string) bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.replaceRange(r, s)
}

// DeleteSelection removes the selected text and leaves the caret at its start.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.replaceRange(r, "")
}

// DeleteBackward deletes the selection, or else the character (or word, when
// word is set) before the caret. Deleting at offset 0 is a no-op.
func (b *Buffer) DeleteBackward(word bool) bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}
	s := b.snap.Load()
	off := s.OffsetOf(b.caret)
	if off == 0 {
		return false
	}
	start := off - 1
	if word {
		start = wordBoundary(s.text, off, -1, false)
	}
	return b.replaceRange(Range{Start: start, End: off}, "")
}

// DeleteForward mirrors DeleteBackward after the caret. Deleting at the end of
// the text is a no-op.
func (b *Buffer) DeleteForward(word bool) bool {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}
	s := b.snap.Load()
	off := s.OffsetOf(b.caret)
	if off == s.Len() {
		return false
	}
	end := off + 1
	if word {
		end = wordBoundary(s.text, off, 1, true)
	}
	return b.replaceRange(Range{Start: off, End: end}, "")
}

// replaceRange stages text[:r.Start] + ins + text[r.End:] and commits it with
// the caret after the inserted runes.
func (b *Buffer) replaceRange(r Range, ins string) bool {
	s := b.snap.Load()
	r = NormalizeRange(r)
	r.Start = clampInt(r.Start, 0, s.Len())
	r.End = clampInt(r.End, 0, s.Len())

	runes := []rune(normalizeBreaks(ins))
	if room := b.room(s.Len() - r.Len()); len(runes) > room {
		b.log.V(1).Info("insert truncated", "length", len(runes), "room", room, "maxLength", b.opt.MaxLength)
		runes = runes[:room]
	}
	if r.IsEmpty() && len(runes) == 0 {
		return false
	}

	next := make([]rune, 0, s.Len()-r.Len()+len(runes))
	next = append(next, s.text[:r.Start]...)
	next = append(next, runes...)
	next = append(next, s.text[r.End:]...)

	return b.commit(txn{
		text:     next,
		caret:    r.Start + len(runes),
		replaced: r,
		inserted: string(runes),
	})
}
