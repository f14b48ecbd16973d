package buffer

// Pos is a caret position in visual-line coordinates.
// Line and Col are 0-based; Col counts runes and never includes the trailing
// hard break of the line.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open span of logical offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange orders the range so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
