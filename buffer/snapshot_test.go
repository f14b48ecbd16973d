package buffer

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSnapshot_Accessors(t *testing.T) {
	s := New("abcdef\ngh", wrapped(3)).Snapshot()

	if got := s.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
	if got := s.LineText(1); got != "def" {
		t.Fatalf("line text=%q, want %q", got, "def")
	}
	if s.StartsLogicalLine(1) || !s.StartsLogicalLine(2) || !s.StartsLogicalLine(0) {
		t.Fatalf("unexpected logical line starts")
	}
	if r, ok := s.RuneAt(6); !ok || r != '\n' {
		t.Fatalf("RuneAt(6)=%q ok=%v", r, ok)
	}
	if _, ok := s.RuneAt(9); ok {
		t.Fatalf("expected RuneAt past end to fail")
	}
	if got := s.Slice(8, 2); got != "cdef\ng" {
		t.Fatalf("slice=%q", got)
	}
	if got := s.Line(99); got != (Line{Start: 7, Len: 2}) {
		t.Fatalf("line=%v", got)
	}
}

func TestSnapshot_ImmutableAcrossCommits(t *testing.T) {
	b := New("ab", Options{})
	before := b.Snapshot()
	b.SetCaretOffset(2)
	b.InsertText("c")

	if before.Text() != "ab" || before.LineCount() != 1 {
		t.Fatalf("old snapshot changed: %q", before.Text())
	}
	if b.Snapshot().Text() != "abc" {
		t.Fatalf("new snapshot=%q", b.Snapshot().Text())
	}
	if b.Snapshot().Version() != before.Version()+1 {
		t.Fatalf("snapshot version=%d", b.Snapshot().Version())
	}
}

func TestSnapshot_ConcurrentReadersSeeFlattenInvariant(t *testing.T) {
	b := New("", wrapped(4))

	var stop atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				s := b.Snapshot()
				if strings.Join(s.Lines(), "") != s.Text() {
					t.Errorf("snapshot lines do not flatten to its text")
					return
				}
			}
		}()
	}

	for i := 0; i < 500; i++ {
		switch i % 7 {
		case 3:
			b.InsertNewline()
		case 6:
			b.DeleteBackward(false)
		default:
			b.InsertRune(rune('a' + i%26))
		}
	}
	stop.Store(true)
	wg.Wait()

	s := b.Snapshot()
	if strings.Join(s.Lines(), "") != b.Text() {
		t.Fatalf("final lines do not flatten to text")
	}
}
