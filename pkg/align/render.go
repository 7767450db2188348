package align

import "strings"

// RenderLine renders a single line under the given mode and maximum width.
//
// Left pads the right edge with the line's slack; Right pads the left edge.
// Justify distributes the slack across the interior gaps as evenly as
// possible, front-loading the remainder into the leftmost gaps, so the
// rendered width is exactly maxWidth. Terminal and single-word lines under
// Justify fall back to Left, since there is nothing to stretch and a
// stretched final line reads unnaturally.
//
// A line holding one word longer than maxWidth has zero slack under every
// mode and renders as the bare word.
func RenderLine(line Line, maxWidth int, mode Mode) string {
	slack := line.Slack(maxWidth)

	switch mode {
	case ModeRight:
		return strings.Repeat(" ", slack) + strings.Join(line.Words, " ")
	case ModeJustify:
		if !line.Terminal && len(line.Words) > 1 {
			return justify(line.Words, slack)
		}
	case ModeLeft:
	}

	return strings.Join(line.Words, " ") + strings.Repeat(" ", slack)
}

// justify joins words while spreading slack extra spaces over the
// len(words)-1 interior gaps. Each gap receives slack/gaps extra spaces on
// top of the mandatory one, and the first slack%gaps gaps receive one more.
func justify(words []string, slack int) string {
	gaps := len(words) - 1
	base := slack / gaps
	rem := slack % gaps

	var b strings.Builder
	b.WriteString(words[0])

	for i, word := range words[1:] {
		pad := 1 + base
		if i < rem {
			pad++
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(word)
	}

	return b.String()
}
