// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// IssueTypes lists the categories a ticket can be filed under.
func IssueTypes() []string {
	return []string{
		"Hardware",
		"Software",
		"Network",
		"Printer",
		"Email",
		"Account Access",
		"Other",
	}
}

// formField identifies the focused control on the ticket form.
type formField int

const (
	fieldBuilding formField = iota
	fieldFloor
	fieldDepartment
	fieldIssueType
	fieldDescription
	fieldContact
	fieldPhone
	fieldUrgency
	fieldSubmit

	formFieldCount
)

var formFieldNames = [formFieldCount]string{
	"Building", "Floor", "Department", "Issue type", "Description",
	"Contact person", "Phone", "Urgency", "Submit",
}

// cycler is a left/right selector over a string list, used for the
// department and issue type fields.
type cycler struct {
	options []string
	index   int
	empty   string // Placeholder shown when no options are loaded.
}

func (c *cycler) setOptions(options []string) {
	c.options = options
	if c.index >= len(options) {
		c.index = 0
	}
}

func (c *cycler) prev() {
	if c.index > 0 {
		c.index--
	}
}

func (c *cycler) next() {
	if c.index < len(c.options)-1 {
		c.index++
	}
}

func (c *cycler) value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.index]
}

func (c *cycler) render(theme tui.Theme, focused bool) string {
	if len(c.options) == 0 {
		return lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true).Render(c.empty)
	}
	style := lipgloss.NewStyle().Foreground(theme.NormalText)
	if focused {
		style = style.Bold(true).Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	}
	position := lipgloss.NewStyle().Foreground(theme.FaintText).Render(
		fmt.Sprintf(" (%d/%d)", c.index+1, len(c.options)))
	return style.Render("< "+c.value()+" >") + position
}

// TicketForm is the create-ticket form shared by the portal and the
// admin console. Building, department, issue type, and description
// are required; contact details are optional. Submitting does not
// reset the form — the caller resets it only after the server accepts
// the ticket, so a failed create keeps the user's input.
type TicketForm struct {
	theme tui.Theme
	focus formField

	buildings BuildingCards
	// buildingsByCard maps a card ID back to the server's building
	// record, for the floor fetch (row ID) and the create payload
	// (name). Empty while the default card set is showing.
	buildingsByCard map[string]api.Building

	dial        FloorDial
	departments cycler
	issueType   cycler
	urgency     UrgencySelector

	description        tui.NoteModal
	editingDescription bool

	contact textinput.Model
	phone   textinput.Model
}

// NewTicketForm returns an empty form with the default building cards
// and the urgency preset.
func NewTicketForm(theme tui.Theme) TicketForm {
	contact := textinput.New()
	contact.Placeholder = "Your name"
	contact.CharLimit = 80
	contact.Width = 32

	phone := textinput.New()
	phone.Placeholder = "Extension or mobile"
	phone.CharLimit = 24
	phone.Width = 32

	issueType := cycler{empty: "no issue types"}
	issueType.setOptions(IssueTypes())

	form := TicketForm{
		theme:       theme,
		buildings:   NewBuildingCards(nil),
		dial:        NewFloorDial(),
		departments: cycler{empty: "select a building first"},
		issueType:   issueType,
		urgency:     NewUrgencySelector(),
		description: tui.NewNoteModal("Describe the issue", theme),
		contact:     contact,
		phone:       phone,
	}
	return form
}

// SetBuildings replaces the building cards with the server's list.
func (f *TicketForm) SetBuildings(buildings []api.Building) {
	if len(buildings) == 0 {
		return
	}
	cards := make([]BuildingCard, 0, len(buildings))
	byCard := make(map[string]api.Building, len(buildings))
	for _, building := range buildings {
		cardID := strconv.Itoa(building.ID)
		cards = append(cards, BuildingCard{
			ID:   cardID,
			Name: building.Name,
			Abbr: abbreviate(building.Name),
		})
		byCard[cardID] = building
	}
	f.buildings.SetCards(cards)
	f.buildingsByCard = byCard
}

// abbreviate derives a card-back code from a building name: the
// initials of its first two words.
func abbreviate(name string) string {
	words := strings.Fields(name)
	var b strings.Builder
	for index, word := range words {
		if index >= 2 {
			break
		}
		b.WriteString(strings.ToUpper(word[:1]))
	}
	if b.Len() == 0 {
		return "??"
	}
	return b.String()
}

// SetDepartments replaces the department options. Called when the
// selected building's department list loads. Tickets are filed
// against department names, so the names are the values.
func (f *TicketForm) SetDepartments(departments []api.Department) {
	names := make([]string, 0, len(departments))
	for _, department := range departments {
		names = append(names, department.Name)
	}
	f.departments.setOptions(names)
}

// SetFloors replaces the floor dial's positions with the loaded
// floors, which the caller has already put in display order.
func (f *TicketForm) SetFloors(floors []api.Floor) {
	labels := make([]string, 0, len(floors))
	for _, floor := range floors {
		labels = append(labels, floor.Label)
	}
	f.dial.SetLabels(labels)
}

// SelectedBuilding returns the committed building card ID, or "".
func (f *TicketForm) SelectedBuilding() string {
	return f.buildings.SelectedID
}

// SelectedBuildingID returns the committed building's server row ID.
// It reports false while no building is selected or while the default
// card set (which has no server records) is showing.
func (f *TicketForm) SelectedBuildingID() (int, bool) {
	building, ok := f.buildingsByCard[f.buildings.SelectedID]
	if !ok {
		return 0, false
	}
	return building.ID, true
}

// SelectedBuildingName returns the committed building's name, or "".
// Default cards carry their display name directly.
func (f *TicketForm) SelectedBuildingName() string {
	if building, ok := f.buildingsByCard[f.buildings.SelectedID]; ok {
		return building.Name
	}
	if card := f.buildings.Selected(); card != nil {
		return card.Name
	}
	return ""
}

// EditingDescription reports whether the description editor overlay
// is open; key input goes to the editor while it is.
func (f *TicketForm) EditingDescription() bool {
	return f.editingDescription
}

// CloseDescription closes the description editor, keeping the text.
func (f *TicketForm) CloseDescription() {
	f.editingDescription = false
}

// RenderDescription renders the description editor overlay.
func (f *TicketForm) RenderDescription(screenWidth, screenHeight int) ([]string, int, int) {
	return f.description.Render(screenWidth, screenHeight)
}

// UpdateDescription forwards a key to the description editor.
func (f *TicketForm) UpdateDescription(message tea.KeyMsg) {
	f.description.Update(message)
}

// formAction is what the form asks its owner to do after a key.
type formAction int

const (
	formNone formAction = iota
	formSubmit           // Submit was activated; owner validates and sends.
	formBuildingSelected // Building changed; owner fetches its floors and departments.
)

// Update routes a key to the focused control. The returned command
// carries widget timers (the card flip revert).
func (f *TicketForm) Update(msg tea.KeyMsg, keys KeyMap) (formAction, tea.Cmd) {
	// Text inputs swallow printable keys, so field movement keys are
	// checked first.
	switch {
	case key.Matches(msg, keys.NextField):
		f.focusField((f.focus + 1) % formFieldCount)
		return formNone, nil
	case key.Matches(msg, keys.PrevField):
		f.focusField((f.focus + formFieldCount - 1) % formFieldCount)
		return formNone, nil
	}

	switch f.focus {
	case fieldBuilding:
		switch {
		case key.Matches(msg, keys.Left):
			f.buildings.CursorLeft()
		case key.Matches(msg, keys.Right):
			f.buildings.CursorRight()
		case key.Matches(msg, keys.Select):
			cmd := f.buildings.Select()
			return formBuildingSelected, cmd
		}

	case fieldFloor:
		switch {
		case key.Matches(msg, keys.Left):
			f.dial.RotateLeft()
		case key.Matches(msg, keys.Right):
			f.dial.RotateRight()
		}

	case fieldDepartment:
		switch {
		case key.Matches(msg, keys.Left):
			f.departments.prev()
		case key.Matches(msg, keys.Right):
			f.departments.next()
		}

	case fieldIssueType:
		switch {
		case key.Matches(msg, keys.Left):
			f.issueType.prev()
		case key.Matches(msg, keys.Right):
			f.issueType.next()
		}

	case fieldDescription:
		if key.Matches(msg, keys.Select) {
			f.editingDescription = true
		}

	case fieldContact:
		var cmd tea.Cmd
		f.contact, cmd = f.contact.Update(msg)
		return formNone, cmd

	case fieldPhone:
		var cmd tea.Cmd
		f.phone, cmd = f.phone.Update(msg)
		return formNone, cmd

	case fieldUrgency:
		switch {
		case key.Matches(msg, keys.Left):
			f.urgency.Prev()
		case key.Matches(msg, keys.Right):
			f.urgency.Next()
		}

	case fieldSubmit:
		if key.Matches(msg, keys.Select) {
			return formSubmit, nil
		}
	}
	return formNone, nil
}

// HandleWidgetMsg forwards timer messages (card flip reverts) to the
// widgets that own them.
func (f *TicketForm) HandleWidgetMsg(msg tea.Msg) {
	f.buildings.Update(msg)
}

func (f *TicketForm) focusField(field formField) {
	f.focus = field
	if field == fieldContact {
		f.contact.Focus()
	} else {
		f.contact.Blur()
	}
	if field == fieldPhone {
		f.phone.Focus()
	} else {
		f.phone.Blur()
	}
}

// Validate returns the names of required fields that are still
// missing. An empty slice means the form can be submitted.
func (f *TicketForm) Validate() []string {
	var missing []string
	if f.buildings.SelectedID == "" {
		missing = append(missing, "building")
	}
	if f.departments.value() == "" {
		missing = append(missing, "department")
	}
	if f.issueType.value() == "" {
		missing = append(missing, "issue type")
	}
	if strings.TrimSpace(f.description.Value()) == "" {
		missing = append(missing, "description")
	}
	return missing
}

// Request builds the create payload from the form's current state.
// The server stores tickets by building name, floor label, and
// department name.
func (f *TicketForm) Request() api.CreateTicketRequest {
	return api.CreateTicketRequest{
		Building:      f.SelectedBuildingName(),
		Floor:         f.dial.Label(),
		Department:    f.departments.value(),
		IssueType:     f.issueType.value(),
		Description:   strings.TrimSpace(f.description.Value()),
		ContactPerson: strings.TrimSpace(f.contact.Value()),
		PhoneNumber:   strings.TrimSpace(f.phone.Value()),
		Priority:      f.urgency.Value(),
	}
}

// Reset clears the form back to its initial state. The loaded
// building list is server data, not user input, and survives.
func (f *TicketForm) Reset() {
	theme := f.theme
	cards := f.buildings.Cards
	byCard := f.buildingsByCard
	*f = NewTicketForm(theme)
	f.buildings.SetCards(cards)
	f.buildingsByCard = byCard
}

// SetUrgency presets the urgency level, used by the emergency screen
// when it redirects to the form.
func (f *TicketForm) SetUrgency(priority string) {
	f.urgency.Set(priority)
}

// Render draws the full form.
func (f *TicketForm) Render(width int) string {
	theme := f.theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(16)
	focusedLabel := labelStyle.Foreground(theme.HeaderForeground).Bold(true)

	label := func(field formField) string {
		if field == f.focus {
			return focusedLabel.Render(formFieldNames[field])
		}
		return labelStyle.Render(formFieldNames[field])
	}

	var b strings.Builder
	b.WriteString(label(fieldBuilding))
	b.WriteString("\n")
	b.WriteString(f.buildings.Render(theme, f.focus == fieldBuilding))
	b.WriteString("\n\n")

	b.WriteString(label(fieldFloor))
	b.WriteString("\n")
	b.WriteString(f.dial.Render(theme, f.focus == fieldFloor))
	b.WriteString("\n\n")

	b.WriteString(label(fieldDepartment))
	b.WriteString(f.departments.render(theme, f.focus == fieldDepartment))
	b.WriteString("\n")

	b.WriteString(label(fieldIssueType))
	b.WriteString(f.issueType.render(theme, f.focus == fieldIssueType))
	b.WriteString("\n")

	b.WriteString(label(fieldDescription))
	description := strings.TrimSpace(f.description.Value())
	if description == "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true).
			Render("press Enter to write"))
	} else {
		excerpt := description
		if lines := tui.ExtractExcerpt(description, width-18, 1); len(lines) > 0 {
			excerpt = lines[0]
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.NormalText).Render(excerpt))
	}
	b.WriteString("\n")

	b.WriteString(label(fieldContact))
	b.WriteString(f.contact.View())
	b.WriteString("\n")

	b.WriteString(label(fieldPhone))
	b.WriteString(f.phone.View())
	b.WriteString("\n")

	b.WriteString(label(fieldUrgency))
	b.WriteString(f.urgency.Render(theme, f.focus == fieldUrgency))
	b.WriteString("\n\n")

	submitStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 2)
	if f.focus == fieldSubmit {
		submitStyle = submitStyle.
			BorderForeground(theme.SelectedForeground).
			Foreground(theme.SelectedForeground).
			Bold(true)
	}
	b.WriteString(submitStyle.Render("Submit Ticket"))
	return b.String()
}
