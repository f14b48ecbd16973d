package buffer

// Snapshot is an immutable view of committed buffer content.
//
// A Buffer publishes a new Snapshot on every commit or reflow by swapping a
// pointer, so a Snapshot obtained from Buffer.Snapshot may be read from any
// goroutine while the owner keeps editing.
type Snapshot struct {
	version uint64
	width   int
	text    []rune
	str     string
	lines   []Line
}

func newSnapshot(version uint64, width int, text []rune, lines []Line) *Snapshot {
	return &Snapshot{
		version: version,
		width:   width,
		text:    text,
		str:     string(text),
		lines:   lines,
	}
}

// Version is the text version the snapshot was committed at.
func (s *Snapshot) Version() uint64 { return s.version }

// Width is the wrap width the visual lines were computed for.
func (s *Snapshot) Width() int { return s.width }

// Text returns the logical text.
func (s *Snapshot) Text() string { return s.str }

// Len returns the logical length in runes, hard breaks included.
func (s *Snapshot) Len() int { return len(s.text) }

func (s *Snapshot) LineCount() int { return len(s.lines) }

// Line returns the index entry for visual line i, clamped into range.
func (s *Snapshot) Line(i int) Line {
	return s.lines[clampInt(i, 0, len(s.lines)-1)]
}

// LineText returns visual line i without its trailing hard break.
func (s *Snapshot) LineText(i int) string {
	l := s.Line(i)
	return string(s.text[l.Start : l.Start+l.Len])
}

// Lines returns the visual line strings; hard breaks stay attached to the
// line they end.
func (s *Snapshot) Lines() []string {
	return lineStrings(s.text, s.lines)
}

// MaxCol returns the largest valid caret column on line i.
//
// A soft-wrapped line hands its last boundary to the line that follows, so the
// end of such a line is addressed as column 0 of the next one.
func (s *Snapshot) MaxCol(i int) int {
	i = clampInt(i, 0, len(s.lines)-1)
	l := s.lines[i]
	if l.Break || i == len(s.lines)-1 {
		return l.Len
	}
	return maxInt(l.Len-1, 0)
}

// StartsLogicalLine reports whether visual line i begins a hard line.
func (s *Snapshot) StartsLogicalLine(i int) bool {
	if i <= 0 {
		return true
	}
	if i >= len(s.lines) {
		return false
	}
	return s.lines[i-1].Break
}

// RuneAt returns the rune at logical offset off.
func (s *Snapshot) RuneAt(off int) (rune, bool) {
	if off < 0 || off >= len(s.text) {
		return 0, false
	}
	return s.text[off], true
}

// Slice returns the logical text in [start, end), clamped.
func (s *Snapshot) Slice(start, end int) string {
	r := NormalizeRange(Range{Start: start, End: end})
	r.Start = clampInt(r.Start, 0, len(s.text))
	r.End = clampInt(r.End, 0, len(s.text))
	return string(s.text[r.Start:r.End])
}
