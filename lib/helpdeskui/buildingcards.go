// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// CardFlipDuration is how long a building card stays face-down after
// selection before flipping back to show its front.
const CardFlipDuration = 600 * time.Millisecond

// BuildingCard is one selectable card in the building picker.
type BuildingCard struct {
	ID    string
	Name  string
	Abbr  string // Short code shown on the flipped (back) face.
}

// DefaultBuildingCards returns the built-in campus buildings shown
// when the server's building list has not loaded.
func DefaultBuildingCards() []BuildingCard {
	return []BuildingCard{
		{ID: "main-building", Name: "Main Building", Abbr: "MB"},
		{ID: "science-wing", Name: "Science Wing", Abbr: "SW"},
		{ID: "library", Name: "Library", Abbr: "LB"},
		{ID: "student-center", Name: "Student Center", Abbr: "SC"},
	}
}

// cardFlipRevertMsg flips a card back to its front face after the
// flip animation interval.
type cardFlipRevertMsg struct {
	id string
}

// BuildingCards is the card-grid building selector. Selecting a card
// flips it to its back face for CardFlipDuration, then it reverts;
// the selection itself is permanent until changed.
type BuildingCards struct {
	Cards      []BuildingCard
	Cursor     int
	SelectedID string

	flippedID string
}

// NewBuildingCards creates the selector over the given cards. An
// empty slice falls back to the default campus set.
func NewBuildingCards(cards []BuildingCard) BuildingCards {
	if len(cards) == 0 {
		cards = DefaultBuildingCards()
	}
	return BuildingCards{Cards: cards}
}

// SetCards replaces the card set, clamping the cursor and dropping a
// selection that no longer exists.
func (c *BuildingCards) SetCards(cards []BuildingCard) {
	if len(cards) == 0 {
		cards = DefaultBuildingCards()
	}
	c.Cards = cards
	if c.Cursor >= len(cards) {
		c.Cursor = len(cards) - 1
	}
	if c.SelectedID != "" && c.indexOf(c.SelectedID) < 0 {
		c.SelectedID = ""
	}
}

func (c *BuildingCards) indexOf(id string) int {
	for index, card := range c.Cards {
		if card.ID == id {
			return index
		}
	}
	return -1
}

// CursorLeft moves the cursor one card left, stopping at the first.
func (c *BuildingCards) CursorLeft() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

// CursorRight moves the cursor one card right, stopping at the last.
func (c *BuildingCards) CursorRight() {
	if c.Cursor < len(c.Cards)-1 {
		c.Cursor++
	}
}

// Select commits the card under the cursor, flips it, and returns the
// timer command that flips it back.
func (c *BuildingCards) Select() tea.Cmd {
	if len(c.Cards) == 0 {
		return nil
	}
	card := c.Cards[c.Cursor]
	c.SelectedID = card.ID
	c.flippedID = card.ID
	id := card.ID
	return tea.Tick(CardFlipDuration, func(time.Time) tea.Msg {
		return cardFlipRevertMsg{id: id}
	})
}

// Update reverts an expired flip. The selection is untouched; only
// the face shown changes.
func (c *BuildingCards) Update(msg tea.Msg) {
	revert, ok := msg.(cardFlipRevertMsg)
	if !ok {
		return
	}
	if c.flippedID == revert.id {
		c.flippedID = ""
	}
}

// Selected returns the committed card, or nil when none is selected.
func (c *BuildingCards) Selected() *BuildingCard {
	index := c.indexOf(c.SelectedID)
	if index < 0 {
		return nil
	}
	return &c.Cards[index]
}

// Reset clears the selection and cursor.
func (c *BuildingCards) Reset() {
	c.Cursor = 0
	c.SelectedID = ""
	c.flippedID = ""
}

// Render draws the cards in a row. The flipped card shows its
// abbreviation; selected and cursor cards get distinct borders.
func (c *BuildingCards) Render(theme tui.Theme, focused bool) string {
	rendered := make([]string, 0, len(c.Cards))
	for index, card := range c.Cards {
		face := card.Name
		if c.flippedID == card.ID {
			face = card.Abbr
		}

		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(0, 1)
		if card.ID == c.SelectedID {
			style = style.BorderForeground(theme.SelectedForeground)
		}
		if focused && index == c.Cursor {
			style = style.Bold(true).BorderForeground(theme.HeaderForeground)
		}
		rendered = append(rendered, style.Render(face))
	}
	return strings.Join(rendered, " ")
}
