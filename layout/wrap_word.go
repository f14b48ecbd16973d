package layout

// findWordWrapBreak returns the unit index just past the last whitespace run
// inside [start, overflow).
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation pulls the break back one unit when the
// next segment would otherwise start with punctuation.
func adjustBreakForLeadingPunctuation(units []wrapUnit, start, overflow int) int {
	if overflow >= len(units) || !units[overflow].isPunct {
		return overflow
	}
	if overflow-1 > start {
		return overflow - 1
	}
	return overflow
}

// skipWhitespace lets a whitespace run hang past the budget instead of
// opening the next line.
func skipWhitespace(units []wrapUnit, i int) int {
	for i < len(units) && units[i].isWhitespace {
		i++
	}
	return i
}
