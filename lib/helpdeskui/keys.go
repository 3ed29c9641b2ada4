// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the portal and admin console.
type KeyMap struct {
	// Navigation (context-sensitive: list movement, dial rotation, or
	// star selection depending on the focused widget).
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Section switching (number row; the set shown depends on surface).
	Section1 key.Binding
	Section2 key.Binding
	Section3 key.Binding
	Section4 key.Binding
	Section5 key.Binding
	Section6 key.Binding

	// Form and focus movement.
	NextField key.Binding
	PrevField key.Binding

	Select  key.Binding // Activate the focused item or commit a choice.
	Back    key.Binding // Dismiss modal / cancel / return to list.
	Refresh key.Binding

	// Filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Mutations (admin ticket list).
	Status key.Binding // Open the status dropdown.
	Assign key.Binding // Open the assignee dropdown.
	Delete key.Binding // Delete the selected ticket (with confirm).

	// Portal ticket list.
	Rate key.Binding // Open the rating modal for a resolved ticket.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("C-f", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Section1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "section 1"),
	),
	Section2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "section 2"),
	),
	Section3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "section 3"),
	),
	Section4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "section 4"),
	),
	Section5: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "section 5"),
	),
	Section6: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "section 6"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filter"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	Assign: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "assign"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Rate: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
