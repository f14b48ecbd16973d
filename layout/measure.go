// Package layout provides terminal-cell implementations of the buffer's
// text measurement and line wrapping collaborators.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/caret/buffer"
	graphemeutil "github.com/iw2rmb/caret/internal/grapheme"
)

// CellMeasurer measures visual lines in terminal cells. Wide characters take
// two cells and tabs advance to the next multiple of TabWidth.
type CellMeasurer struct {
	TabWidth int
}

var _ buffer.Measurer = CellMeasurer{}

// TextWidth returns the cells taken by the first upto runes of line. A rune
// count that ends inside a grapheme cluster measures up to the cluster start.
func (m CellMeasurer) TextWidth(line string, upto int) int {
	cells, runes := 0, 0
	for _, c := range graphemeutil.Split(line) {
		n := utf8.RuneCountInString(c)
		if runes+n > upto {
			break
		}
		cells += graphemeutil.CellWidth(c, cells, m.TabWidth)
		runes += n
	}
	return cells
}

func (CellMeasurer) LineHeight() int { return 1 }

// ColumnAt maps cell x on line to the rune column of the cluster under it.
// Positions past the end map to the end of the line.
func (m CellMeasurer) ColumnAt(line string, x int) int {
	if x <= 0 {
		return 0
	}
	cells, runes := 0, 0
	for _, c := range graphemeutil.Split(line) {
		w := graphemeutil.CellWidth(c, cells, m.TabWidth)
		if x < cells+w {
			// Right half of a wide cluster lands after it.
			if w > 1 && x-cells >= (w+1)/2 {
				return runes + utf8.RuneCountInString(c)
			}
			return runes
		}
		cells += w
		runes += utf8.RuneCountInString(c)
	}
	return runes
}

// ExpandTabs replaces tabs with the spaces they occupy so line renders with
// the widths TextWidth reports.
func (m CellMeasurer) ExpandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	cells := 0
	for _, c := range graphemeutil.Split(line) {
		w := graphemeutil.CellWidth(c, cells, m.TabWidth)
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		cells += w
	}
	return sb.String()
}
