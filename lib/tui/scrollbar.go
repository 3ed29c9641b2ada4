// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar draws a one-column scrollbar for a list showing
// visibleItems of totalItems rows, scrolled by scrollOffset. The thumb
// picks up the in-progress accent when the list has focus; the track
// stays in the border color either way.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.StatusInProgress
	}
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render("┃")

	top, size := thumbExtent(height, totalItems, visibleItems, scrollOffset)

	var builder strings.Builder
	for row := range height {
		if row > 0 {
			builder.WriteByte('\n')
		}
		if row >= top && row < top+size {
			builder.WriteString(thumb)
		} else {
			builder.WriteString(track)
		}
	}
	return builder.String()
}

// thumbExtent returns the thumb's starting row and height. A list that
// fits on screen gets a full-height thumb, so the bar reads as inert
// rather than vanishing.
func thumbExtent(height, totalItems, visibleItems, scrollOffset int) (int, int) {
	if totalItems <= 0 || totalItems <= visibleItems {
		return 0, height
	}

	size := max(height*visibleItems/totalItems, 1)

	hidden := totalItems - visibleItems
	travel := height - size
	top := 0
	if hidden > 0 && travel > 0 {
		top = scrollOffset * travel / hidden
	}
	if top+size > height {
		top = height - size
	}
	return top, size
}
