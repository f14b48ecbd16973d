package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
)

func viewLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestRender_UnsizedViewShowsAllLines(t *testing.T) {
	m := New(Config{Text: "ab\ncd"}).Blur()
	if got, want := m.View(), "ab\ncd"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{Text: sb.String(), ShowLineNums: true})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", 3, i+1)
		if !strings.HasPrefix(ansi.Strip(line), wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_WrappedLinesNumberOnlyHardLines(t *testing.T) {
	m := New(Config{
		Text:         "hello world\nx",
		WrapMode:     WrapWord,
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	want := []string{
		"1 hello",
		"  world",
		"2 x",
	}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.buf.LineCount(), 3; got != want {
		t.Fatalf("visual lines: got %d, want %d", got, want)
	}
}

func TestRender_ResizeRewrapsKeepingCaretOffset(t *testing.T) {
	m := New(Config{Text: "hello world", WrapMode: WrapWord})
	m = pressKey(m, tea.KeyCtrlEnd)
	m = m.SetSize(7, 3)
	if got, want := m.buf.LineCount(), 2; got != want {
		t.Fatalf("visual lines at width 7: got %d, want %d", got, want)
	}
	if got, want := m.buf.CaretOffset(), 11; got != want {
		t.Fatalf("caret offset after resize: got %d, want %d", got, want)
	}

	m = m.SetSize(40, 3)
	if got, want := m.buf.LineCount(), 1; got != want {
		t.Fatalf("visual lines at width 40: got %d, want %d", got, want)
	}
	if got, want := m.buf.CaretOffset(), 11; got != want {
		t.Fatalf("caret offset after widening: got %d, want %d", got, want)
	}
}

func TestRender_CaretAtEndOfLineTakesOneCell(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = pressKey(m, tea.KeyCtrlEnd)
	if got, want := ansi.Strip(m.View()), "ab "; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(Config{
		Text:  "ab",
		Style: Style{Text: r.NewStyle(), Cursor: r.NewStyle()},
	})
	view := m.View()
	if !strings.Contains(view, "\x1b[") {
		t.Fatalf("expected ANSI caret styling, got %q", view)
	}
	if got, want := ansi.Strip(view), "ab"; got != want {
		t.Fatalf("stripped view: got %q, want %q", got, want)
	}

	m = m.Blur()
	if strings.Contains(m.View(), "\x1b[") {
		t.Fatalf("blurred view still draws the caret: %q", m.View())
	}
}

func TestRender_SelectionUsesSelectionStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	sel := r.NewStyle().Background(lipgloss.Color("#ff0000"))

	m := New(Config{
		Text:  "abc",
		Style: Style{Text: r.NewStyle(), Selection: sel},
	})
	m = m.Blur()
	m.buf.Select(0, 2)
	m, _ = m.Update(nil)

	if got, want := m.View(), sel.Render("ab")+"c"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_SelectedHardBreakShowsACell(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	sel := r.NewStyle().Background(lipgloss.Color("#ff0000"))

	m := New(Config{Text: "a\nb", Style: Style{Text: r.NewStyle(), Selection: sel}})
	m = m.Blur()
	m.buf.Select(0, 3)
	m, _ = m.Update(nil)

	want := sel.Render("a") + sel.Render(" ") + "\n" + sel.Render("b")
	if got := m.View(); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_TabsExpandToTabStops(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4}).Blur()
	if got, want := m.View(), "a   b"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_Placeholder(t *testing.T) {
	m := New(Config{Placeholder: "Type here"})
	if got, want := ansi.Strip(m.View()), "Type here"; got != want {
		t.Fatalf("focused placeholder: got %q, want %q", got, want)
	}

	m = m.Blur()
	if got, want := ansi.Strip(m.View()), "Type here"; got != want {
		t.Fatalf("blurred placeholder: got %q, want %q", got, want)
	}

	m = m.Focus()
	m = typeText(m, "x")
	if got, want := ansi.Strip(m.View()), "x "; got != want {
		t.Fatalf("view after typing: got %q, want %q", got, want)
	}
}

func TestRender_HorizontalScrollFollowsCaret(t *testing.T) {
	m := New(Config{Text: "abcdefghij"})
	m = m.SetSize(5, 1)

	if got, want := viewLines(m), []string{"abcde"}; !cmp.Equal(got, want) {
		t.Fatalf("initial view: got %q, want %q", got, want)
	}

	m = pressKey(m, tea.KeyCtrlEnd)
	if got, want := m.ViewportState().LeftCellOffset, 6; got != want {
		t.Fatalf("left offset: got %d, want %d", got, want)
	}
	if got, want := ansi.Strip(m.View()), "ghij "; got != want {
		t.Fatalf("scrolled view: got %q, want %q", got, want)
	}

	m = pressKey(m, tea.KeyHome)
	if got, want := m.ViewportState().LeftCellOffset, 0; got != want {
		t.Fatalf("left offset after home: got %d, want %d", got, want)
	}
}

func TestRenderAsync_DeliversCurrentView(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})

	msg, ok := m.RenderAsync()().(RenderedMsg)
	if !ok {
		t.Fatalf("RenderAsync produced %T", msg)
	}
	m, _ = m.Update(msg)

	got, ok := m.AsyncView()
	if !ok {
		t.Fatalf("async view not accepted")
	}
	if got != m.View() {
		t.Fatalf("async view differs:\n got: %q\nwant: %q", got, m.View())
	}
}

func TestRenderAsync_DropsStaleAndForeignResults(t *testing.T) {
	m := New(Config{Text: "ab"})
	other := New(Config{Text: "zz"})

	cmd := m.RenderAsync()
	m = typeText(m, "x")
	m, _ = m.Update(cmd())
	if _, ok := m.AsyncView(); ok {
		t.Fatalf("stale render was accepted")
	}

	m, _ = m.Update(other.RenderAsync()())
	if _, ok := m.AsyncView(); ok {
		t.Fatalf("render of another editor was accepted")
	}

	m, _ = m.Update(m.RenderAsync()())
	if _, ok := m.AsyncView(); !ok {
		t.Fatalf("current render was dropped")
	}
	m = typeText(m, "y")
	if _, ok := m.AsyncView(); ok {
		t.Fatalf("async view survived a newer edit")
	}
}

func TestModel_SetWrapModeRewraps(t *testing.T) {
	m := New(Config{Text: "hello world"}).Blur()
	m = m.SetSize(8, 3)
	if got, want := m.buf.LineCount(), 1; got != want {
		t.Fatalf("visual lines without wrap: got %d, want %d", got, want)
	}

	m = m.SetWrapMode(WrapWord)
	if got, want := m.WrapMode(), WrapWord; got != want {
		t.Fatalf("wrap mode: got %v, want %v", got, want)
	}
	want := []string{"hello", "world", ""}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}

	m = m.SetWrapMode(WrapNone)
	if got, want := m.buf.LineCount(), 1; got != want {
		t.Fatalf("visual lines after unwrapping: got %d, want %d", got, want)
	}
}
