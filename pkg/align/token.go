package align

import (
	"strings"
	"unicode/utf8"
)

// Words splits text into its ordered sequence of words: maximal runs of
// non-whitespace characters. Space, tab, and newline are treated uniformly as
// separators, and the original whitespace structure is discarded. Every
// returned word is non-empty; text with no words yields nil.
func Words(text string) []string {
	return strings.Fields(text)
}

// runeLen measures a word in character units. Width accounting is
// rune-based; grapheme clusters are out of scope.
func runeLen(word string) int {
	return utf8.RuneCountInString(word)
}
