package layout

import (
	"strings"

	"github.com/iw2rmb/caret/buffer"
	graphemeutil "github.com/iw2rmb/caret/internal/grapheme"
)

// Wrapper soft-wraps text into visual lines no wider than the budget in
// terminal cells. Grapheme clusters are never split and hard breaks stay on
// the line they end.
type Wrapper struct {
	TabWidth int
}

var _ buffer.Wrapper = Wrapper{}

type wrapUnit struct {
	text         string
	isWhitespace bool
	isPunct      bool
}

func (w Wrapper) Wrap(text string, width int, policy buffer.WrapPolicy) []string {
	hard := buffer.SplitHardBreaks(text, width, policy)
	if policy == buffer.WrapNone || width <= 0 || width == buffer.Unbounded {
		return hard
	}

	out := make([]string, 0, len(hard))
	for _, line := range hard {
		body := strings.TrimSuffix(line, string(buffer.HardBreak))
		segs := w.wrapLine(unitsFromText(body), policy, width)
		if body != line {
			segs[len(segs)-1] += string(buffer.HardBreak)
		}
		out = append(out, segs...)
	}
	return out
}

func (w Wrapper) wrapLine(units []wrapUnit, policy buffer.WrapPolicy, width int) []string {
	if len(units) == 0 {
		return []string{""}
	}

	segments := make([]string, 0, 2)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			uw := maxInt(graphemeutil.CellWidth(units[overflow].text, used, w.TabWidth), 1)
			if used > 0 && used+uw > width {
				break
			}
			used += uw
			overflow++
		}

		if overflow <= start {
			overflow = minInt(start+1, len(units))
		}

		end := overflow
		if policy == buffer.WrapWord && overflow < len(units) {
			if units[overflow].isWhitespace {
				end = skipWhitespace(units, overflow)
			} else if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = minInt(start+1, len(units))
		}

		segments = append(segments, joinUnits(units[start:end]))
		start = end
	}
	return segments
}

func unitsFromText(text string) []wrapUnit {
	clusters := graphemeutil.Split(text)
	units := make([]wrapUnit, 0, len(clusters))
	for _, c := range clusters {
		ws := graphemeutil.IsSpace(c)
		units = append(units, wrapUnit{
			text:         c,
			isWhitespace: ws,
			isPunct:      !ws && graphemeutil.IsPunct(c),
		})
	}
	return units
}

func joinUnits(units []wrapUnit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.text)
	}
	return sb.String()
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
