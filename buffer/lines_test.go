package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitHardBreaks(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\nb\n", []string{"a\n", "b\n", ""}},
		{"\n\n", []string{"\n", "\n", ""}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SplitHardBreaks(tc.text, 10, WrapWord)); diff != "" {
			t.Fatalf("SplitHardBreaks(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestIndexLines(t *testing.T) {
	text := []rune("abcdef\ngh")
	lines, ok := indexLines([]string{"abc", "def\n", "gh"}, text)
	if !ok {
		t.Fatalf("expected valid wrapper output")
	}
	want := []Line{
		{Start: 0, Len: 3},
		{Start: 3, Len: 3, Break: true},
		{Start: 7, Len: 2},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexLines_TrailingBreakGetsEmptyLine(t *testing.T) {
	lines, ok := indexLines([]string{"ab\n"}, []rune("ab\n"))
	if !ok {
		t.Fatalf("expected valid wrapper output")
	}
	want := []Line{{Start: 0, Len: 2, Break: true}, {Start: 3}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexLines_DropsInnerEmptySoftLines(t *testing.T) {
	lines, ok := indexLines([]string{"ab", "", "cd"}, []rune("abcd"))
	if !ok {
		t.Fatalf("expected valid wrapper output")
	}
	if got := len(lines); got != 2 {
		t.Fatalf("lines=%d, want 2", got)
	}
}

func TestIndexLines_RejectsBrokenOutput(t *testing.T) {
	text := []rune("ab\ncd")
	cases := [][]string{
		{"ab", "cd"},
		{"ab\ncd"},
		{"ab\n", "c"},
		{"ab\n", "cd", "e"},
		{"xy\n", "cd"},
	}
	for _, raw := range cases {
		if _, ok := indexLines(raw, text); ok {
			t.Fatalf("indexLines(%q) accepted broken output", raw)
		}
	}
}

func TestNormalizeBreaks(t *testing.T) {
	if got := normalizeBreaks("a\r\nb\rc\nd"); got != "a\nb\nc\nd" {
		t.Fatalf("normalizeBreaks=%q", got)
	}
	if got := normalizeBreaks("plain"); got != "plain" {
		t.Fatalf("normalizeBreaks=%q", got)
	}
}
