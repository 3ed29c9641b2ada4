// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// NoteModal is a centered multi-line text editor overlay, used for
// ticket descriptions and rating comments. It holds the buffer and
// cursor; the owning model decides when it opens and what Ctrl+D and
// Esc do with the text.
type NoteModal struct {
	// Title is shown in the modal header, e.g. "Describe the issue".
	Title string

	lines   [][]rune
	cursorY int // line containing the cursor
	cursorX int // rune offset within that line
	theme   Theme
}

// NewNoteModal returns an empty editor with the given header title.
func NewNoteModal(title string, theme Theme) NoteModal {
	return NoteModal{
		Title: title,
		lines: [][]rune{{}},
		theme: theme,
	}
}

// SetValue replaces the buffer and moves the cursor to the end, for
// reopening the editor over text entered earlier.
func (modal *NoteModal) SetValue(text string) {
	modal.lines = nil
	for _, line := range strings.Split(text, "\n") {
		modal.lines = append(modal.lines, []rune(line))
	}
	modal.cursorY = len(modal.lines) - 1
	modal.cursorX = len(modal.lines[modal.cursorY])
}

// Value returns the buffer contents as a newline-joined string.
func (modal NoteModal) Value() string {
	parts := make([]string, len(modal.lines))
	for index, line := range modal.lines {
		parts[index] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Update applies one key press to the buffer. Submit and cancel keys
// are not handled here; the caller intercepts those before routing.
func (modal *NoteModal) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			modal.insertRune(character)
		}
	case tea.KeyEnter:
		modal.splitLine()
	case tea.KeyBackspace:
		modal.deleteBackward()
	case tea.KeyDelete:
		modal.deleteForward()
	case tea.KeyLeft:
		modal.moveLeft()
	case tea.KeyRight:
		modal.moveRight()
	case tea.KeyUp:
		modal.moveVertically(-1)
	case tea.KeyDown:
		modal.moveVertically(+1)
	case tea.KeyHome, tea.KeyCtrlA:
		modal.cursorX = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		modal.cursorX = len(modal.lines[modal.cursorY])
	}
}

func (modal *NoteModal) insertRune(character rune) {
	line := modal.lines[modal.cursorY]
	updated := make([]rune, 0, len(line)+1)
	updated = append(updated, line[:modal.cursorX]...)
	updated = append(updated, character)
	updated = append(updated, line[modal.cursorX:]...)
	modal.lines[modal.cursorY] = updated
	modal.cursorX++
}

// splitLine breaks the current line at the cursor, carrying the tail
// onto a new line below.
func (modal *NoteModal) splitLine() {
	line := modal.lines[modal.cursorY]
	tail := append([]rune{}, line[modal.cursorX:]...)
	modal.lines[modal.cursorY] = line[:modal.cursorX:modal.cursorX]

	modal.lines = append(modal.lines, nil)
	copy(modal.lines[modal.cursorY+2:], modal.lines[modal.cursorY+1:])
	modal.lines[modal.cursorY+1] = tail

	modal.cursorY++
	modal.cursorX = 0
}

// deleteBackward removes the rune before the cursor, joining with the
// previous line at a line start.
func (modal *NoteModal) deleteBackward() {
	if modal.cursorX > 0 {
		line := modal.lines[modal.cursorY]
		modal.lines[modal.cursorY] = append(line[:modal.cursorX-1], line[modal.cursorX:]...)
		modal.cursorX--
		return
	}
	if modal.cursorY == 0 {
		return
	}
	previous := modal.lines[modal.cursorY-1]
	modal.cursorX = len(previous)
	modal.lines[modal.cursorY-1] = append(previous, modal.lines[modal.cursorY]...)
	modal.lines = append(modal.lines[:modal.cursorY], modal.lines[modal.cursorY+1:]...)
	modal.cursorY--
}

// deleteForward removes the rune under the cursor, joining with the
// next line at a line end.
func (modal *NoteModal) deleteForward() {
	line := modal.lines[modal.cursorY]
	if modal.cursorX < len(line) {
		modal.lines[modal.cursorY] = append(line[:modal.cursorX], line[modal.cursorX+1:]...)
		return
	}
	if modal.cursorY >= len(modal.lines)-1 {
		return
	}
	modal.lines[modal.cursorY] = append(line, modal.lines[modal.cursorY+1]...)
	modal.lines = append(modal.lines[:modal.cursorY+1], modal.lines[modal.cursorY+2:]...)
}

func (modal *NoteModal) moveLeft() {
	if modal.cursorX > 0 {
		modal.cursorX--
	} else if modal.cursorY > 0 {
		modal.cursorY--
		modal.cursorX = len(modal.lines[modal.cursorY])
	}
}

func (modal *NoteModal) moveRight() {
	if modal.cursorX < len(modal.lines[modal.cursorY]) {
		modal.cursorX++
	} else if modal.cursorY < len(modal.lines)-1 {
		modal.cursorY++
		modal.cursorX = 0
	}
}

func (modal *NoteModal) moveVertically(delta int) {
	target := modal.cursorY + delta
	if target < 0 || target >= len(modal.lines) {
		return
	}
	modal.cursorY = target
	if modal.cursorX > len(modal.lines[target]) {
		modal.cursorX = len(modal.lines[target])
	}
}

// Chrome around the text area: border and padding cost 4 columns, and
// border plus title plus footer cost 4 lines. The margin keeps a sliver
// of the underlying view visible so the modal reads as an overlay, and
// collapses before the editor does on small terminals.
const (
	noteModalChromeWidth    = 4
	noteModalChromeHeight   = 4
	noteModalMinInnerWidth  = 30
	noteModalMinInnerHeight = 5
	noteModalMargin         = 2
)

// Render draws the modal for the given screen size and returns its
// lines plus the top-left anchor for splicing, centered on screen.
func (modal NoteModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	modalWidth := clampBetween(screenWidth-noteModalMargin*2,
		noteModalMinInnerWidth+noteModalChromeWidth, screenWidth)
	modalHeight := clampBetween(screenHeight-noteModalMargin*2,
		noteModalMinInnerHeight+noteModalChromeHeight, screenHeight)

	innerWidth := modalWidth - noteModalChromeWidth
	innerHeight := modalHeight - noteModalChromeHeight

	background := lipgloss.NewStyle().Background(modal.theme.TooltipBackground)
	text := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.TooltipBackground)
	cursor := lipgloss.NewStyle().Reverse(true)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.TooltipBackground).
		Render(modal.Title)
	footer := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.TooltipBackground).
		Render("Ctrl+D submit  Esc cancel")

	rows := []string{padToWidth(header, innerWidth, background)}

	// Scroll so the cursor line stays visible.
	scroll := 0
	if modal.cursorY >= innerHeight {
		scroll = modal.cursorY - innerHeight + 1
	}
	for row := scroll; row < scroll+innerHeight; row++ {
		var rendered string
		switch {
		case row >= len(modal.lines):
			// Past the buffer: background only.
		case row == modal.cursorY:
			line := modal.lines[row]
			if modal.cursorX >= len(line) {
				rendered = text.Render(string(line)) + cursor.Render(" ")
			} else {
				rendered = text.Render(string(line[:modal.cursorX])) +
					cursor.Render(string(line[modal.cursorX:modal.cursorX+1])) +
					text.Render(string(line[modal.cursorX+1:]))
			}
		default:
			rendered = text.Render(string(modal.lines[row]))
		}
		rows = append(rows, padToWidth(rendered, innerWidth, background))
	}
	rows = append(rows, padToWidth(footer, innerWidth, background))

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.TooltipBackground).
		Render(strings.Join(rows, "\n"))

	overlayLines := strings.Split(boxed, "\n")
	overlayWidth := 0
	if len(overlayLines) > 0 {
		overlayWidth = ansi.StringWidth(overlayLines[0])
	}

	anchorX := max((screenWidth-overlayWidth)/2, 0)
	anchorY := max((screenHeight-len(overlayLines))/2, 0)
	return overlayLines, anchorX, anchorY
}

// padToWidth extends styled content to width columns with
// background-colored spaces.
func padToWidth(content string, width int, background lipgloss.Style) string {
	if pad := width - ansi.StringWidth(content); pad > 0 {
		content += background.Render(strings.Repeat(" ", pad))
	}
	return content
}

// clampBetween bounds value to [low, high]; high wins when the bounds
// cross, keeping the modal inside the terminal.
func clampBetween(value, low, high int) int {
	if value < low {
		value = low
	}
	if value > high {
		value = high
	}
	return value
}
