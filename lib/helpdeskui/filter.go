// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// FilterModel implements fzf-style substring matching across ticket
// fields: ID, description, issue type, building, department, status,
// priority, contact, and assignee. The filter narrows the loaded
// ticket list client-side without round-tripping to the server.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// MatchesTicket returns true if the ticket matches the current
// filter. An empty filter matches everything. Matching is
// case-insensitive substring against each searchable field — if any
// field contains the query, the ticket matches.
func (filter *FilterModel) MatchesTicket(ticket api.Ticket) bool {
	if filter.Input == "" {
		return true
	}

	query := strings.ToLower(filter.Input)

	fields := []string{
		strconv.Itoa(ticket.ID),
		ticket.Description,
		ticket.IssueType,
		ticket.Building,
		ticket.BuildingName,
		ticket.Department,
		ticket.DepartmentName,
		ticket.Status,
		ticket.Priority,
		ticket.ContactPerson,
		ticket.AssignedTo,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Apply filters a slice of tickets, returning only those that match
// the current filter text.
func (filter *FilterModel) Apply(tickets []api.Ticket) []api.Ticket {
	if filter.Input == "" {
		return tickets
	}

	var result []api.Ticket
	for _, ticket := range tickets {
		if filter.MatchesTicket(ticket) {
			result = append(result, ticket)
		}
	}
	return result
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return style.Render(" / " + filter.Input + cursor)
	}

	dimStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width)
	return dimStyle.Render(" filter: " + filter.Input)
}
