// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption pairs the label shown in the menu with the value sent
// to the backend when it is chosen.
type DropdownOption struct {
	Label string
	Value string
}

// DropdownOverlay is a floating pick-one menu spliced over the view.
// While open it owns the keyboard: up/down move the cursor, enter
// selects, escape dismisses. Field and ItemID record what the selection
// applies to, so the model can dispatch the right mutation when the
// menu closes.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int
	AnchorY int
	Field   string // field the selection mutates, e.g. "status" or "assignee"
	ItemID  string // ticket the selection applies to
}

// MoveUp moves the cursor up one option, wrapping at the top.
func (dropdown *DropdownOverlay) MoveUp() {
	if dropdown.Cursor--; dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down one option, wrapping at the bottom.
func (dropdown *DropdownOverlay) MoveDown() {
	if dropdown.Cursor++; dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the option under the cursor.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width is the rendered width in columns: a two-character cursor
// gutter, the widest label, and one column of padding each side.
func (dropdown *DropdownOverlay) Width() int {
	widest := 0
	for _, option := range dropdown.Options {
		widest = max(widest, ansi.StringWidth(option.Label))
	}
	return 3 + widest + 2
}

// Render produces the menu's lines for overlay splicing. Every line is
// padded to the same visible width with a solid background so the menu
// reads as an opaque panel over the list beneath it.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	innerWidth := totalWidth - 2

	normal := lipgloss.NewStyle().Background(theme.TooltipBackground)
	highlighted := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		style := normal
		marker := " "
		if index == dropdown.Cursor {
			style = highlighted
			marker = ">"
		}

		content := marker + " " + option.Label
		if pad := innerWidth - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
		line := style.Render(" " + content + " ")

		// Width can still come up short when a label holds wide runes;
		// top up with background-colored spaces so edges stay aligned.
		if short := totalWidth - ansi.StringWidth(line); short > 0 {
			line += style.Render(strings.Repeat(" ", short))
		}
		lines = append(lines, line)
	}
	return lines
}
