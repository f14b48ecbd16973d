package buffer

import "unicode/utf8"

// Measurer converts line content to display units (pixels, terminal cells).
type Measurer interface {
	// TextWidth returns the width of the first upto runes of line.
	TextWidth(line string, upto int) int
	// LineHeight returns the height of one visual line.
	LineHeight() int
}

// runeMeasurer is used when no Measurer is configured: one unit per rune.
type runeMeasurer struct{}

func (runeMeasurer) TextWidth(line string, upto int) int {
	return clampInt(upto, 0, utf8.RuneCountInString(line))
}

func (runeMeasurer) LineHeight() int { return 1 }
