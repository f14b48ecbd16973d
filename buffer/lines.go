package buffer

import (
	"strings"
	"unicode/utf8"
)

// HardBreak is the canonical hard line break stored in the logical text.
const HardBreak = '\n'

// Unbounded is the width passed to a Wrapper when wrapping is disabled.
const Unbounded = 1<<31 - 1

// WrapPolicy selects how a Wrapper places soft breaks.
type WrapPolicy uint8

const (
	// WrapNone never inserts soft breaks.
	WrapNone WrapPolicy = iota
	// WrapWord breaks after whitespace runs and falls back to grapheme breaks
	// for words wider than the budget.
	WrapWord
	// WrapGrapheme breaks at any grapheme boundary.
	WrapGrapheme
)

// Wrapper splits a logical text into visual lines.
//
// The returned lines must concatenate back to text exactly: hard breaks stay
// as the trailing character of the line that contains them and soft breaks are
// not materialized.
type Wrapper interface {
	Wrap(text string, width int, policy WrapPolicy) []string
}

// WrapperFunc adapts a function to a Wrapper.
type WrapperFunc func(text string, width int, policy WrapPolicy) []string

func (f WrapperFunc) Wrap(text string, width int, policy WrapPolicy) []string {
	return f(text, width, policy)
}

// SplitHardBreaks is the Wrapper used when none is configured: one visual line
// per hard line, each keeping its trailing break.
func SplitHardBreaks(text string, _ int, _ WrapPolicy) []string {
	if text == "" {
		return []string{""}
	}
	parts := strings.SplitAfter(text, string(HardBreak))
	// SplitAfter yields a trailing "" when text ends with a break, which is the
	// empty line the caret moves to after the final newline.
	return parts
}

// Line is one entry of the derived visual line index.
type Line struct {
	Start int  // logical offset of the first rune
	Len   int  // rune length, excluding the trailing hard break
	Break bool // line ends with a hard break
}

// End returns the logical offset just past the line, including its break.
func (l Line) End() int {
	if l.Break {
		return l.Start + l.Len + 1
	}
	return l.Start + l.Len
}

// indexLines converts wrapper output into a line index over text. ok is false
// when the wrapper output does not flatten back to text or splits inside a
// hard line incorrectly.
func indexLines(raw []string, text []rune) (lines []Line, ok bool) {
	lines = make([]Line, 0, len(raw)+1)
	off := 0
	for i, s := range raw {
		n := utf8.RuneCountInString(s)
		brk := strings.HasSuffix(s, string(HardBreak))
		body := s
		if brk {
			body = s[:len(s)-1]
		}
		if strings.ContainsRune(body, HardBreak) {
			return nil, false
		}
		if off+n > len(text) || string(text[off:off+n]) != s {
			return nil, false
		}
		l := Line{Start: off, Len: n, Break: brk}
		if brk {
			l.Len--
		}
		off += n
		// An empty soft line carries no caret position of its own.
		if l.Len == 0 && !l.Break && i < len(raw)-1 {
			continue
		}
		lines = append(lines, l)
	}
	if off != len(text) {
		return nil, false
	}
	if len(lines) == 0 || lines[len(lines)-1].Break {
		lines = append(lines, Line{Start: len(text)})
	}
	return lines, true
}

// singleLine indexes text as exactly one visual line, embedded breaks included.
func singleLine(text []rune) []Line {
	return []Line{{Start: 0, Len: len(text)}}
}

func lineStrings(text []rune, lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, string(text[l.Start:l.End()]))
	}
	return out
}

// normalizeBreaks folds CRLF and lone CR into the canonical hard break.
func normalizeBreaks(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
