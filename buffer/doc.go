// Package buffer implements the editing core of caret: a logical text with a
// derived visual line index, a caret and selection anchor, and the gate every
// edit passes before it is committed.
//
// Offsets count runes of the logical text; a hard break ('\n') counts as one
// rune and soft wraps are not stored. Positions are 0-based (Line, Col) in
// visual lines. Ranges are half-open offset spans: [Start, End).
package buffer
