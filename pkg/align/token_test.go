package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/talign/pkg/align"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty input", "", nil},
		{"whitespace only", " \t\n  \r\n ", nil},
		{"single word", "hello", []string{"hello"}},
		{"simple sentence", "the quick brown fox", []string{"the", "quick", "brown", "fox"}},
		{"collapses runs", "a   b\t\tc", []string{"a", "b", "c"}},
		{"newlines as separators", "one\ntwo\nthree", []string{"one", "two", "three"}},
		{"mixed whitespace", "  lead\t mid \n trail  ", []string{"lead", "mid", "trail"}},
		{"punctuation stays attached", "Hi there! Roben Li.", []string{"Hi", "there!", "Roben", "Li."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, align.Words(tt.text))
		})
	}
}

func TestWords_PreservesOrder(t *testing.T) {
	t.Parallel()

	words := align.Words("alpha beta gamma delta epsilon")
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta", "epsilon"}, words)

	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}
