// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// EmergencyActionKind says what activating an emergency action does.
// Contact actions just display their details; the redirect actions
// switch sections with a prefilled message or urgency.
type EmergencyActionKind int

const (
	EmergencyContact EmergencyActionKind = iota
	EmergencyOpenChat
	EmergencyFileTicket
)

// EmergencyAction is one entry in the emergency contacts screen.
type EmergencyAction struct {
	Kind   EmergencyActionKind
	Label  string
	Detail string
}

// EmergencyActions is the static emergency contact sheet. Nothing
// here touches the network; the hotline and mailbox are manned around
// the clock.
func EmergencyActions() []EmergencyAction {
	return []EmergencyAction{
		{Kind: EmergencyContact, Label: "IT Emergency Hotline", Detail: "Call ext. 5555 (24/7)"},
		{Kind: EmergencyContact, Label: "Emergency Email", Detail: "it-emergency@msp.ac"},
		{Kind: EmergencyOpenChat, Label: "Ask the AI Assistant", Detail: "Describe the outage and get immediate steps"},
		{Kind: EmergencyFileTicket, Label: "File an Urgent Ticket", Detail: "Opens the ticket form with urgent priority preset"},
	}
}

// EmergencyChatPrefill seeds the chat input when the emergency screen
// redirects to the assistant.
const EmergencyChatPrefill = "I have an urgent IT emergency: "

// EmergencyModal is the emergency contacts list.
type EmergencyModal struct {
	Actions []EmergencyAction
	Cursor  int
}

// NewEmergencyModal returns the modal with the built-in action sheet.
func NewEmergencyModal() EmergencyModal {
	return EmergencyModal{Actions: EmergencyActions()}
}

// CursorUp moves the cursor up, stopping at the first action.
func (m *EmergencyModal) CursorUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// CursorDown moves the cursor down, stopping at the last action.
func (m *EmergencyModal) CursorDown() {
	if m.Cursor < len(m.Actions)-1 {
		m.Cursor++
	}
}

// Selected returns the action under the cursor.
func (m *EmergencyModal) Selected() EmergencyAction {
	return m.Actions[m.Cursor]
}

// Render draws the action sheet.
func (m *EmergencyModal) Render(theme tui.Theme) string {
	heading := lipgloss.NewStyle().Foreground(theme.PriorityUrgent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	selectedLabel := label.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	detail := lipgloss.NewStyle().Foreground(theme.FaintText)

	var b strings.Builder
	b.WriteString(heading.Render("⚠ Emergency IT Support"))
	b.WriteString("\n\n")
	for index, action := range m.Actions {
		style := label
		marker := "  "
		if index == m.Cursor {
			style = selectedLabel
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(style.Render(action.Label))
		b.WriteString("\n  ")
		b.WriteString(detail.Render(action.Detail))
		b.WriteString("\n")
	}
	return b.String()
}
