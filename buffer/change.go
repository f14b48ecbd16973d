package buffer

// SelectionState captures the normalized selection at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// Change describes the most recent accepted text edit.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64

	CaretBefore  Pos
	CaretAfter   Pos
	OffsetBefore int
	OffsetAfter  int

	SelectionBefore SelectionState
	SelectionAfter  SelectionState

	// Replaced is the range of the old text that was replaced, in offsets of
	// the text before the edit.
	Replaced Range
	Deleted  string
	Inserted string
}

// LastChange returns the most recent effective text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func selectionStateOf(st caretState, s *Snapshot) SelectionState {
	if !st.hasAnchor {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: st.anchor, End: s.OffsetOf(st.caret)})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}
