package layout

import "testing"

func TestCellMeasurer_TextWidth(t *testing.T) {
	m := CellMeasurer{TabWidth: 4}
	cases := []struct {
		line string
		upto int
		want int
	}{
		{"abc", 2, 2},
		{"abc", 99, 3},
		{"日本語", 2, 4},
		{"a\tb", 2, 4},
		{"ab\tc", 3, 4},
		{"e\u0301x", 1, 0},
		{"e\u0301x", 2, 1},
		{"", 3, 0},
	}
	for _, tc := range cases {
		if got := m.TextWidth(tc.line, tc.upto); got != tc.want {
			t.Fatalf("TextWidth(%q, %d)=%d, want %d", tc.line, tc.upto, got, tc.want)
		}
	}
	if m.LineHeight() != 1 {
		t.Fatalf("line height=%d, want 1", m.LineHeight())
	}
}

func TestCellMeasurer_ColumnAt(t *testing.T) {
	m := CellMeasurer{TabWidth: 4}
	cases := []struct {
		line string
		x    int
		want int
	}{
		{"abc", -1, 0},
		{"abc", 1, 1},
		{"abc", 10, 3},
		{"日本語", 2, 1},
		{"日本語", 3, 2},
		{"a\tb", 2, 1},
		{"a\tb", 3, 2},
		{"a\tb", 4, 2},
		{"e\u0301x", 1, 2},
	}
	for _, tc := range cases {
		if got := m.ColumnAt(tc.line, tc.x); got != tc.want {
			t.Fatalf("ColumnAt(%q, %d)=%d, want %d", tc.line, tc.x, got, tc.want)
		}
	}
}

func TestCellMeasurer_ExpandTabs(t *testing.T) {
	m := CellMeasurer{TabWidth: 4}
	if got := m.ExpandTabs("a\tb"); got != "a   b" {
		t.Fatalf("ExpandTabs=%q", got)
	}
	if got := m.ExpandTabs("plain"); got != "plain" {
		t.Fatalf("ExpandTabs=%q", got)
	}
}
