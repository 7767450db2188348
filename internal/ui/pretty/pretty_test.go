package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/talign/pkg/runner"
)

func TestIsColorEnabled_Modes(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))

	// A bytes.Buffer is not a terminal, so auto disables color.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, IsColorEnabled("auto", &buf))

	// An explicit --color always wins over NO_COLOR.
	assert.True(t, IsColorEnabled("always", &buf))
}

func TestNewStyles_PlainWhenDisabled(t *testing.T) {
	s := NewStyles(false)

	// Plain styles must pass text through untouched.
	assert.Equal(t, "hello", s.Success.Render("hello"))
	assert.Equal(t, "hello", s.Failure.Render("hello"))
	assert.Equal(t, "hello", s.Dim.Render("hello"))
}

func TestFormatSummaryOneLine(t *testing.T) {
	s := NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "empty run",
			stats: runner.Stats{},
			want:  "no files to format\n",
		},
		{
			name: "single file",
			stats: runner.Stats{
				FilesDiscovered: 1,
				FilesProcessed:  1,
				LinesEmitted:    3,
				WordsTotal:      5,
			},
			want: "1 file formatted (3 lines, 5 words)\n",
		},
		{
			name: "writes and skips",
			stats: runner.Stats{
				FilesDiscovered: 4,
				FilesProcessed:  3,
				FilesModified:   2,
				FilesUnchanged:  1,
				FilesSkipped:    1,
				LinesEmitted:    40,
				WordsTotal:      200,
			},
			want: "3 files formatted (40 lines, 200 words), 2 rewritten, 1 already formatted, 1 skipped\n",
		},
		{
			name: "failures",
			stats: runner.Stats{
				FilesDiscovered: 2,
				FilesProcessed:  1,
				FilesErrored:    1,
				LinesEmitted:    10,
				WordsTotal:      30,
			},
			want: "1 file formatted (10 lines, 30 words), 1 failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary_Block(t *testing.T) {
	s := NewStyles(false)

	out := s.FormatSummary(runner.Stats{
		FilesDiscovered: 5,
		FilesProcessed:  4,
		FilesErrored:    1,
		FilesModified:   2,
		FilesUnchanged:  2,
		LinesEmitted:    120,
		WordsTotal:      840,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files discovered:  5")
	assert.Contains(t, out, "Files formatted:   4")
	assert.Contains(t, out, "Files rewritten:   2")
	assert.Contains(t, out, "Already formatted: 2")
	assert.Contains(t, out, "Files failed:      1")
	assert.Contains(t, out, "Lines emitted:     120")
	assert.Contains(t, out, "Words:             840")
	assert.NotContains(t, out, "skipped")
	assert.True(t, strings.Contains(out, strings.Repeat("-", summaryDividerWidth)))
}
