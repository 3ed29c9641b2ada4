// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// RatingLabels names each star count, indexed by rating-1.
var RatingLabels = [5]string{"Poor", "Fair", "Good", "Very Good", "Excellent"}

// RatingModal collects a 1-5 star rating and an optional comment for
// a resolved ticket. Moving across the stars previews a rating
// (Hover); pressing select commits it (Selected). Submission is gated
// on a committed rating; a preview alone is not enough.
type RatingModal struct {
	TicketID int
	Hover    int // Previewed rating, 0 when none.
	Selected int // Committed rating, 0 when none.

	comment     tui.NoteModal
	editingNote bool
}

// NewRatingModal opens a rating modal for the given ticket.
func NewRatingModal(ticketID int, theme tui.Theme) RatingModal {
	return RatingModal{
		TicketID: ticketID,
		comment:  tui.NewNoteModal("Add a comment (optional)", theme),
	}
}

// HoverLeft moves the preview one star left, stopping at 1.
func (m *RatingModal) HoverLeft() {
	if m.Hover == 0 {
		m.Hover = 1
		return
	}
	if m.Hover > 1 {
		m.Hover--
	}
}

// HoverRight moves the preview one star right, stopping at 5.
func (m *RatingModal) HoverRight() {
	if m.Hover == 0 {
		m.Hover = 1
		return
	}
	if m.Hover < len(RatingLabels) {
		m.Hover++
	}
}

// Commit turns the current preview into the committed rating.
func (m *RatingModal) Commit() {
	if m.Hover >= 1 {
		m.Selected = m.Hover
	}
}

// CanSubmit reports whether a rating has been committed. The comment
// is optional and never gates submission.
func (m *RatingModal) CanSubmit() bool {
	return m.Selected >= 1
}

// Comment returns the entered comment text.
func (m *RatingModal) Comment() string {
	return m.comment.Value()
}

// EditingComment reports whether the comment editor is open; while it
// is, key input goes to UpdateComment instead of the star row.
func (m *RatingModal) EditingComment() bool {
	return m.editingNote
}

// StartComment opens the comment editor.
func (m *RatingModal) StartComment() {
	m.editingNote = true
}

// StopComment closes the comment editor, keeping whatever was typed.
func (m *RatingModal) StopComment() {
	m.editingNote = false
}

// UpdateComment forwards a key to the comment editor.
func (m *RatingModal) UpdateComment(message tea.KeyMsg) {
	m.comment.Update(message)
}

// RenderComment renders the comment editor overlay lines with the
// overlay's top-left position, for splicing over the base view.
func (m *RatingModal) RenderComment(screenWidth, screenHeight int) ([]string, int, int) {
	return m.comment.Render(screenWidth, screenHeight)
}

// Label returns the text for the rating currently shown: the preview
// when hovering, else the committed rating, else "".
func (m *RatingModal) Label() string {
	shown := m.Hover
	if shown == 0 {
		shown = m.Selected
	}
	if shown < 1 || shown > len(RatingLabels) {
		return ""
	}
	return RatingLabels[shown-1]
}

// Render draws the star row, the rating label, and the comment
// excerpt.
func (m *RatingModal) Render(theme tui.Theme) string {
	var b strings.Builder

	shown := m.Hover
	if shown == 0 {
		shown = m.Selected
	}

	filled := lipgloss.NewStyle().Foreground(theme.StarFilled)
	empty := lipgloss.NewStyle().Foreground(theme.StarEmpty)
	for star := 1; star <= len(RatingLabels); star++ {
		if star <= shown {
			b.WriteString(filled.Render("★"))
		} else {
			b.WriteString(empty.Render("☆"))
		}
		b.WriteString(" ")
	}

	label := m.Label()
	if label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.NormalText).Render(label))
	}
	b.WriteString("\n")

	if comment := m.Comment(); comment != "" {
		faint := lipgloss.NewStyle().Foreground(theme.FaintText)
		for _, line := range tui.ExtractExcerpt(comment, 60, 2) {
			b.WriteString(faint.Render(line))
			b.WriteString("\n")
		}
	}

	help := "←/→ preview  Enter commit  c comment  S submit  Esc cancel"
	if !m.CanSubmit() {
		help = "←/→ preview  Enter commit  Esc cancel"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(help))
	return b.String()
}
