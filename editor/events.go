package editor

import "github.com/iw2rmb/caret/buffer"

// ChangeEvent is delivered to Config.OnChange once per Update that changed
// text, caret or selection.
type ChangeEvent struct {
	Version   uint64
	Caret     buffer.Pos
	Selection buffer.SelectionState

	// TextChanged is set when the logical text differs from the previous event.
	TextChanged bool
	Text        string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Caret:       b.Caret(),
		TextChanged: textChanged,
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	return ev
}
