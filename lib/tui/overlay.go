// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay paints overlay lines on top of an already-rendered view,
// starting at (anchorX, anchorY). The line under each overlay row is cut
// ANSI-aware at the overlay's edges, so styling in the underlying view
// survives on both sides. Rows that fall outside the view are skipped.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for offset, overlayLine := range overlayLines {
		row := anchorY + offset
		if row < 0 || row >= len(viewLines) {
			continue
		}
		viewLines[row] = spliceLine(viewLines[row], overlayLine, anchorX, anchorX+overlayWidth)
	}

	return strings.Join(viewLines, "\n")
}

// spliceLine rebuilds one screen line as: underlying text up to left,
// the overlay content, then underlying text from right onward. Resets
// bracket the overlay so open escape sequences cannot bleed across the
// seams.
func spliceLine(line, overlay string, left, right int) string {
	var out strings.Builder
	if left > 0 {
		out.WriteString(ansi.Truncate(line, left, ""))
	}
	out.WriteString("\x1b[0m")
	out.WriteString(overlay)
	out.WriteString("\x1b[0m")
	if right < ansi.StringWidth(line) {
		out.WriteString(ansi.TruncateLeft(line, right, ""))
	}
	return out.String()
}

// PadOverlayLine wraps styled content in a one-space gutter on the left
// and background-colored padding out to totalWidth on the right, giving
// modal rows a uniform filled interior.
func PadOverlayLine(styledContent string, innerWidth, totalWidth int, backgroundStyle lipgloss.Style) string {
	rightPad := max(innerWidth-ansi.StringWidth(styledContent), 0)
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// ExtractExcerpt pulls up to maxLines non-blank lines from body for use
// in list rows and summaries. Each line is trimmed and truncated to
// maxWidth with an ellipsis.
func ExtractExcerpt(body string, maxWidth, maxLines int) []string {
	var excerpt []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if ansi.StringWidth(line) > maxWidth {
			line = ansi.Truncate(line, maxWidth-1, "…")
		}
		excerpt = append(excerpt, line)
		if len(excerpt) >= maxLines {
			break
		}
	}
	return excerpt
}
