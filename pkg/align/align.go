// Package align implements the line-wrapping and alignment engine for talign.
// It splits raw text into words, groups them greedily into lines bounded by a
// maximum width, and renders each line under a left, right, or justified
// alignment policy. The pipeline is a pure transformation: no I/O, no shared
// state, deterministic output for a given input.
package align

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWidth is returned when the configured maximum width is not a
// positive integer. It is the only failure mode of the engine and is raised
// before any processing begins.
var ErrInvalidWidth = errors.New("maximum width must be positive")

// Mode selects the rendering policy applied to each completed line.
// The policy set is closed and fixed at compile time.
type Mode int

const (
	// ModeLeft joins words with single spaces and pads the right edge.
	ModeLeft Mode = iota

	// ModeRight pads the left edge and joins words with single spaces.
	ModeRight

	// ModeJustify distributes slack across interior gaps so every
	// non-terminal line exactly fills the maximum width.
	ModeJustify
)

// Mode tokens accepted by ParseMode.
const (
	tokenLeft    = "left"
	tokenRight   = "right"
	tokenJustify = "justify"
)

// String returns the canonical token for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLeft:
		return tokenLeft
	case ModeRight:
		return tokenRight
	case ModeJustify:
		return tokenJustify
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps an alignment token to a Mode. Matching is case-insensitive.
func ParseMode(token string) (Mode, error) {
	switch strings.ToLower(token) {
	case tokenLeft:
		return ModeLeft, nil
	case tokenRight:
		return ModeRight, nil
	case tokenJustify:
		return ModeJustify, nil
	default:
		return ModeLeft, fmt.Errorf("unknown alignment %q: expected %s, %s, or %s",
			token, tokenLeft, tokenRight, tokenJustify)
	}
}

// Render reformats text into lines of at most maxWidth characters under the
// given mode. It is the single logical operation the engine exposes: words
// are never split, reordered, or dropped, and every rendered line except an
// over-long single word (and the meaning of "except" for terminal lines is
// policy-specific, see RenderLine) has length exactly maxWidth.
//
// Empty text yields an empty result. Render fails with ErrInvalidWidth when
// maxWidth <= 0; no other error conditions exist.
func Render(text string, maxWidth int, mode Mode) ([]string, error) {
	if maxWidth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, maxWidth)
	}

	lines := BuildLines(Words(text), maxWidth)
	if len(lines) == 0 {
		return nil, nil
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = RenderLine(line, maxWidth, mode)
	}
	return out, nil
}
