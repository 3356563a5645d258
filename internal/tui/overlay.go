package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangle of view with the overlay lines,
// anchored at (anchorX, anchorY). Cuts are ANSI-aware so styling on both
// sides of the overlay survives. Lines past the end of the view are
// appended.
func spliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	viewLines := strings.Split(view, "\n")
	for len(viewLines) < anchorY+len(overlayLines) {
		viewLines = append(viewLines, "")
	}

	for i, overlayLine := range overlayLines {
		lineIndex := anchorY + i
		line := viewLines[lineIndex]
		lineWidth := ansi.StringWidth(line)

		var b strings.Builder
		prefix := ansi.Truncate(line, anchorX, "")
		b.WriteString(prefix)
		if pad := anchorX - ansi.StringWidth(prefix); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("\x1b[0m")
		b.WriteString(overlayLine)
		b.WriteString("\x1b[0m")

		suffixStart := anchorX + ansi.StringWidth(overlayLine)
		if suffixStart < lineWidth {
			b.WriteString(ansi.TruncateLeft(line, suffixStart, ""))
		}

		viewLines[lineIndex] = b.String()
	}

	return strings.Join(viewLines, "\n")
}

// padLines right-pads every line to the widest one.
func padLines(lines []string) []string {
	width := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > width {
			width = w
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + strings.Repeat(" ", width-ansi.StringWidth(l))
	}
	return out
}
