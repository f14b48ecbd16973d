package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/caret"
	"github.com/iw2rmb/caret/editor"
)

const sampleText = "Hello from caret.\n\nType to edit. Shift+arrows select, alt+arrows jump words.\nDouble-click selects a word. Ctrl+G toggles help, Ctrl+Q quits."

type demoKeys struct {
	Help key.Binding
	Wrap key.Binding
	Quit key.Binding
}

var keys = demoKeys{
	Help: key.NewBinding(key.WithKeys("ctrl+g", "f1"), key.WithHelp("ctrl+g", "help")),
	Wrap: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "cycle wrap")),
	Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
}

// view adapts a rendered string to tea.Model for overlay composition.
type view string

func (v view) Init() tea.Cmd                       { return nil }
func (v view) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v view) View() string                        { return string(v) }

type model struct {
	editor   editor.Model
	help     help.Model
	showHelp bool
	width    int
	height   int
}

func newModel(cfg editor.Config) model {
	return model{editor: editor.New(cfg), help: help.New()}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, keys.Wrap):
			m.editor = m.editor.SetWrapMode((m.editor.WrapMode() + 1) % 3)
			return m, nil
		case m.showHelp && msg.Type == tea.KeyEsc:
			m.showHelp = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	caretPos := m.editor.Buffer().Caret()
	status := fmt.Sprintf("%d:%d  %s", caretPos.Line+1, caretPos.Col+1, m.help.ShortHelpView([]key.Binding{keys.Help, keys.Wrap, keys.Quit}))
	base := lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), status)
	if !m.showHelp {
		return base
	}

	popup := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(m.help.FullHelpView(m.editor.KeyMap().FullHelp()))
	return overlay.New(view(popup), view(base), overlay.Center, overlay.Center, 0, 0).View()
}

func parseWrap(s string) (editor.WrapMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return editor.WrapNone, nil
	case "word":
		return editor.WrapWord, nil
	case "grapheme":
		return editor.WrapGrapheme, nil
	}
	return editor.WrapNone, fmt.Errorf("unknown wrap mode %q", s)
}

// newLogger writes funcr output to path, or discards it when path is empty.
func newLogger(path string, verbosity int) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("open log: %w", err)
	}
	l := log.New(f, "", log.LstdFlags)
	logger := funcr.New(func(prefix, args string) {
		if prefix != "" {
			l.Printf("%s: %s", prefix, args)
			return
		}
		l.Print(args)
	}, funcr.Options{Verbosity: verbosity})
	return logger, f.Close, nil
}

func main() {
	var (
		wrap      = flag.String("wrap", "word", "wrap mode: none, word or grapheme")
		single    = flag.Bool("single", false, "single-line editor")
		maxLen    = flag.Int("maxlen", 0, "maximum text length in characters (0 is unlimited)")
		maxLines  = flag.Int("maxlines", 0, "maximum visual lines (0 is unlimited)")
		readOnly  = flag.Bool("readonly", false, "reject edits")
		logPath   = flag.String("log", "", "write debug logs to this file")
		verbosity = flag.Int("v", 0, "log verbosity")
		version   = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(caret.VersionTag())
		return
	}

	mode, err := parseWrap(*wrap)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, closeLog, err := newLogger(*logPath, *verbosity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	text := sampleText
	if *single {
		text = "Hello from caret."
	}
	cfg := editor.Config{
		Text:         text,
		SingleLine:   *single,
		MaxLength:    *maxLen,
		MaxLines:     *maxLines,
		WrapMode:     mode,
		ReadOnly:     *readOnly,
		Placeholder:  "Start typing...",
		ShowLineNums: !*single,
		Style:        editor.DefaultStyle(),
		Clipboard:    editor.SystemClipboard{},
		Logger:       logger.WithName("caret-demo"),
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logger.Error(err, "program exited")
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
