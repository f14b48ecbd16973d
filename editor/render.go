package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/caret/buffer"
	graphemeutil "github.com/iw2rmb/caret/internal/grapheme"
	"github.com/iw2rmb/caret/layout"
)

// renderState is everything besides the snapshot that rendering reads. It is
// a plain value so a render can run off the update goroutine.
type renderState struct {
	focused   bool
	caret     buffer.Pos
	selection buffer.SelectionState

	showLineNums bool
	// cut clips each line to [xOffset, xOffset+width) cells.
	cut     bool
	xOffset int
	width   int

	style       Style
	cursor      cursor.Model
	measure     layout.CellMeasurer
	placeholder string
}

// renderSnapshot renders one string per visual line of s.
func renderSnapshot(s *buffer.Snapshot, st renderState) []string {
	numbers := logicalLineNumbers(s)
	digits := gutterDigits(numbers[len(numbers)-1])
	caretLine := clampInt(st.caret.Line, 0, s.LineCount()-1)

	out := make([]string, 0, s.LineCount())
	for i := 0; i < s.LineCount(); i++ {
		var sb strings.Builder
		if st.showLineNums {
			sb.WriteString(renderGutter(st, digits, numbers[i], s.StartsLogicalLine(i), numbers[i] == numbers[caretLine]))
		}

		var text string
		if s.Len() == 0 && st.placeholder != "" {
			text = renderPlaceholder(st)
		} else {
			text = renderLine(s, i, st)
		}
		if st.cut && st.width > 0 {
			text = ansi.Cut(text, st.xOffset, st.xOffset+st.width)
		}
		sb.WriteString(text)
		out = append(out, sb.String())
	}
	return out
}

// renderLine renders visual line i in runs of equally styled clusters. The
// caret takes the cluster it sits on, or one blank cell past the end of the
// line.
func renderLine(s *buffer.Snapshot, i int, st renderState) string {
	l := s.Line(i)
	hasCaret := st.focused && st.caret.Line == i

	var sb, run strings.Builder
	runSelected := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := st.style.Text
		if runSelected {
			style = st.style.Selection
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}

	cells, col := 0, 0
	for _, c := range graphemeutil.Split(s.LineText(i)) {
		n := utf8.RuneCountInString(c)
		w := graphemeutil.CellWidth(c, cells, st.measure.TabWidth)
		disp := c
		if c == "\t" {
			disp = strings.Repeat(" ", w)
		}

		if hasCaret && st.caret.Col >= col && st.caret.Col < col+n {
			flush()
			sb.WriteString(renderCaret(st, disp))
		} else {
			if sel := st.selects(l.Start + col); sel != runSelected {
				flush()
				runSelected = sel
			}
			run.WriteString(disp)
		}
		cells += w
		col += n
	}
	flush()

	switch {
	case hasCaret && st.caret.Col >= col:
		sb.WriteString(renderCaret(st, " "))
	case l.Break && st.selects(l.Start+l.Len):
		sb.WriteString(st.style.Selection.Render(" "))
	}
	return sb.String()
}

func renderPlaceholder(st renderState) string {
	clusters := graphemeutil.Split(st.placeholder)
	if !st.focused {
		return st.style.Placeholder.Render(st.placeholder)
	}
	out := renderCaret(st, clusters[0])
	if rest := strings.Join(clusters[1:], ""); rest != "" {
		out += st.style.Placeholder.Render(rest)
	}
	return out
}

func renderCaret(st renderState, char string) string {
	c := st.cursor
	c.SetChar(char)
	return c.View()
}

func (st renderState) selects(off int) bool {
	r := st.selection.Range
	return st.selection.Active && off >= r.Start && off < r.End
}
