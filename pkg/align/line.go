package align

// Line is an ordered group of words assigned to one output row. Lines are
// produced by BuildLines and are read-only from then on.
type Line struct {
	// Words holds the line's words in document order. Never empty.
	Words []string

	// Terminal marks the last line of the document. Justify renders
	// terminal lines left-aligned instead of stretching them.
	Terminal bool

	// wordWidth is the sum of the rune lengths of Words.
	wordWidth int
}

// minWidth is the smallest rendered width of the line: all words plus one
// mandatory separating space between each adjacent pair.
func (l Line) minWidth() int {
	return l.wordWidth + len(l.Words) - 1
}

// Slack returns the whitespace still available beyond the mandatory single
// separators, given the maximum width. A single word longer than maxWidth
// yields zero rather than a negative value: such lines render unpadded.
func (l Line) Slack(maxWidth int) int {
	if s := maxWidth - l.minWidth(); s > 0 {
		return s
	}
	return 0
}

// BuildLines groups words into lines whose minimal rendered width does not
// exceed maxWidth, covering every word exactly once in order. The fit is
// greedy: a word that would overflow the current line closes it and opens the
// next. A word longer than maxWidth on its own is placed alone on its own
// line, never truncated or split. The final line is flagged Terminal. An
// empty word sequence yields no lines.
func BuildLines(words []string, maxWidth int) []Line {
	if len(words) == 0 {
		return nil
	}

	var lines []Line
	current := Line{}

	for _, word := range words {
		wlen := runeLen(word)

		if len(current.Words) > 0 && current.minWidth()+1+wlen > maxWidth {
			lines = append(lines, current)
			current = Line{}
		}

		current.Words = append(current.Words, word)
		current.wordWidth += wlen
	}

	current.Terminal = true
	return append(lines, current)
}
