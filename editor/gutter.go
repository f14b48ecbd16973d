package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/caret/buffer"
)

// LineNumberWidth returns the line-number gutter width for lineCount logical
// lines: the digits plus one separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func gutterWidthFor(s *buffer.Snapshot) int {
	return LineNumberWidth(strings.Count(s.Text(), string(buffer.HardBreak)) + 1)
}

// logicalLineNumbers returns the 1-based hard line number of every visual
// line.
func logicalLineNumbers(s *buffer.Snapshot) []int {
	out := make([]int, s.LineCount())
	n := 0
	for i := range out {
		if s.StartsLogicalLine(i) {
			n++
		}
		out[i] = n
	}
	return out
}

// renderGutter numbers the first visual line of each hard line; soft-wrapped
// continuation lines get a blank gutter.
func renderGutter(st renderState, digits, number int, first, active bool) string {
	numStyle := st.style.LineNum
	if st.focused && active {
		numStyle = st.style.LineNumActive
	}
	num := strings.Repeat(" ", digits)
	if first {
		num = fmt.Sprintf("%*d", digits, number)
	}
	return numStyle.Render(num) + st.style.Gutter.Render(" ")
}
