package buffer

import "unicode"

// Rank classifies a character for word-wise navigation and word selection.
type Rank uint8

const (
	RankWord Rank = iota
	RankOther
	RankWhitespace
)

func (r Rank) String() string {
	switch r {
	case RankWord:
		return "word"
	case RankOther:
		return "other"
	case RankWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// RankOf returns the rank of r. Letters, digits and '_' are word characters;
// anything unicode.IsSpace accepts (including '\n' and '\t') is whitespace.
func RankOf(r rune) Rank {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return RankWord
	case unicode.IsSpace(r):
		return RankWhitespace
	default:
		return RankOther
	}
}
