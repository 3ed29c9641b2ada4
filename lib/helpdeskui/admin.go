// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// AdminConfig configures the admin console model.
type AdminConfig struct {
	Service  Service
	Username string
	Role     string
	Theme    tui.Theme
	Keys     KeyMap
	Logger   *slog.Logger
}

// AdminModel is the administrator console: the full ticket queue with
// status, assignment, and delete operations, plus the department,
// building, and user registries.
type AdminModel struct {
	ctx     context.Context
	service Service
	theme   tui.Theme
	keys    KeyMap
	logger  *slog.Logger

	username string
	role     string

	width  int
	height int

	section Section
	toast   Toast

	list TicketList
	form TicketForm

	departments collection[api.Department]
	buildings   collection[api.Building]
	users       collection[api.User]

	dropdown        *tui.DropdownOverlay
	confirmDeleteID int

	// pendingMutationID is the ticket a status/assign mutation is in
	// flight for, so the row can be ignited when the result lands.
	pendingMutationID int
}

// NewAdminModel creates the admin console over the given service.
func NewAdminModel(ctx context.Context, config AdminConfig) *AdminModel {
	return &AdminModel{
		ctx:      ctx,
		service:  config.Service,
		theme:    config.Theme,
		keys:     config.Keys,
		logger:   config.Logger,
		username: config.Username,
		role:     config.Role,
		section:  SectionAdminTickets,
		toast:    NewToast(ToastAdminDuration),
		list:     NewTicketList("Create a ticket with 2"),
		form:     NewTicketForm(config.Theme),
	}
}

// Init loads the ticket queue and the registries the ticket
// operations need (buildings for the form, users for assignment).
func (m *AdminModel) Init() tea.Cmd {
	m.list.BeginLoad()
	m.users.beginLoad()
	return tea.Batch(
		loadAdminTickets(m.ctx, m.service, api.TicketFilter{}),
		loadAdminBuildings(m.ctx, m.service),
		loadUsers(m.ctx, m.service),
	)
}

func (m *AdminModel) showSection(target Section) tea.Cmd {
	resolved := resolveSection(target, adminSections, SectionAdminTickets)
	if resolved != target {
		m.logger.Warn("unknown admin section, showing tickets", "requested", target.String())
	}
	m.section = resolved

	switch resolved {
	case SectionAdminTickets:
		m.list.BeginLoad()
		return loadAdminTickets(m.ctx, m.service, api.TicketFilter{})
	case SectionAdminCreateTicket:
		return loadAdminBuildings(m.ctx, m.service)
	case SectionAdminDepartments:
		m.departments.beginLoad()
		return loadAdminDepartments(m.ctx, m.service)
	case SectionAdminBuildings:
		m.buildings.beginLoad()
		return loadAdminBuildings(m.ctx, m.service)
	case SectionAdminUsers:
		m.users.beginLoad()
		return loadUsers(m.ctx, m.service)
	default:
		return nil
	}
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ticketsLoadedMsg:
		m.list.FinishLoad(msg.tickets, msg.err)
		return m, nil

	case buildingsLoadedMsg:
		m.buildings.finishLoad(msg.buildings, msg.err)
		if msg.err == nil {
			m.form.SetBuildings(msg.buildings)
		}
		return m, nil

	case buildingDepartmentsLoadedMsg:
		if msg.err == nil && msg.building == m.form.SelectedBuildingName() {
			m.form.SetDepartments(msg.departments)
		}
		return m, nil

	case floorsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("floor list load failed", "error", msg.err)
			return m, nil
		}
		if selected, ok := m.form.SelectedBuildingID(); ok && selected == msg.buildingID {
			m.form.SetFloors(msg.floors)
		}
		return m, nil

	case departmentsLoadedMsg:
		m.departments.finishLoad(msg.departments, msg.err)
		return m, nil

	case usersLoadedMsg:
		m.users.finishLoad(msg.users, msg.err)
		return m, nil

	case mutationResultMsg:
		return m, m.handleMutationResult(msg)

	case toastFadeMsg:
		m.toast.Update(msg)
		return m, nil

	case cardFlipRevertMsg:
		m.form.HandleWidgetMsg(msg)
		return m, nil

	case heatTickMsg:
		if m.list.HasHot(time.Now()) {
			return m, heatTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *AdminModel) handleMutationResult(msg mutationResultMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error("mutation failed", "action", msg.action, "error", msg.err)
		m.pendingMutationID = 0
		return m.toast.Show(userErrorText(msg.err), ToastError)
	}

	var cmds []tea.Cmd

	text := msg.notification
	kind := tui.HeatPut
	switch msg.action {
	case "create":
		if text == "" {
			text = "Ticket created"
		}
		m.form.Reset()
		cmds = append(cmds, m.showSection(SectionAdminTickets))
	case "status":
		if text == "" {
			text = "Status updated"
		}
	case "assign":
		if text == "" {
			text = "Ticket assigned"
		}
	case "delete":
		if text == "" {
			text = "Ticket deleted"
		}
		kind = tui.HeatRemove
	}

	if m.pendingMutationID != 0 {
		m.list.Ignite(m.pendingMutationID, kind, time.Now())
		m.pendingMutationID = 0
		cmds = append(cmds, heatTick())
	}

	if msg.action != "create" {
		m.list.BeginLoad()
		cmds = append(cmds, loadAdminTickets(m.ctx, m.service, api.TicketFilter{}))
	}
	cmds = append(cmds, m.toast.Show(text, ToastSuccess))
	return tea.Batch(cmds...)
}

func (m *AdminModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.EditingDescription() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlD:
			m.form.CloseDescription()
		default:
			m.form.UpdateDescription(msg)
		}
		return m, nil
	}

	// An open dropdown captures all keys.
	if m.dropdown != nil {
		return m.handleDropdownKey(msg)
	}

	if m.section == SectionAdminTickets && m.list.Filter.Active {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Section1):
		return m, m.showSection(SectionAdminTickets)
	case key.Matches(msg, m.keys.Section2):
		return m, m.showSection(SectionAdminCreateTicket)
	case key.Matches(msg, m.keys.Section3):
		return m, m.showSection(SectionAdminDepartments)
	case key.Matches(msg, m.keys.Section4):
		return m, m.showSection(SectionAdminBuildings)
	case key.Matches(msg, m.keys.Section5):
		return m, m.showSection(SectionAdminUsers)
	case key.Matches(msg, m.keys.Section6):
		return m, m.showSection(SectionAdminSettings)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.showSection(m.section)
	}

	switch m.section {
	case SectionAdminTickets:
		return m.handleTicketKey(msg)
	case SectionAdminCreateTicket:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m *AdminModel) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dropdown := m.dropdown
	switch {
	case key.Matches(msg, m.keys.Back):
		m.dropdown = nil
	case key.Matches(msg, m.keys.Up):
		dropdown.MoveUp()
	case key.Matches(msg, m.keys.Down):
		dropdown.MoveDown()
	case key.Matches(msg, m.keys.Select):
		option := dropdown.Selected()
		field := dropdown.Field
		id, err := strconv.Atoi(dropdown.ItemID)
		m.dropdown = nil
		if err != nil {
			return m, nil
		}
		m.pendingMutationID = id
		switch field {
		case "status":
			return m, updateTicketStatus(m.ctx, m.service, id, option.Value)
		case "assignee":
			return m, assignTicket(m.ctx, m.service, id, option.Value)
		}
	}
	return m, nil
}

func (m *AdminModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.list.Filter.Clear()
	case tea.KeyEnter:
		m.list.Filter.Active = false
	case tea.KeyBackspace:
		m.list.Filter.HandleBackspace()
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range msg.Runes {
			m.list.Filter.HandleRune(character)
		}
	}
	m.list.clampCursor()
	return m, nil
}

func (m *AdminModel) handleTicketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	height := m.listHeight()

	if m.confirmDeleteID != 0 {
		id := m.confirmDeleteID
		m.confirmDeleteID = 0
		if key.Matches(msg, m.keys.Delete) {
			m.pendingMutationID = id
			return m, deleteTicket(m.ctx, m.service, id)
		}
		return m, m.toast.Show("Delete cancelled", ToastInfo)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown(height)
	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp(height)
	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown(height)
	case key.Matches(msg, m.keys.Home):
		m.list.Home()
	case key.Matches(msg, m.keys.End):
		m.list.End(height)
	case key.Matches(msg, m.keys.FilterActivate):
		m.list.Filter.Active = true
	case key.Matches(msg, m.keys.Status):
		if ticket := m.list.Selected(); ticket != nil {
			m.dropdown = m.statusDropdown(ticket)
		}
	case key.Matches(msg, m.keys.Assign):
		if ticket := m.list.Selected(); ticket != nil {
			m.dropdown = m.assigneeDropdown(ticket)
		}
	case key.Matches(msg, m.keys.Delete):
		if ticket := m.list.Selected(); ticket != nil {
			m.confirmDeleteID = ticket.ID
			return m, m.toast.Show("Press d again to delete the ticket", ToastWarning)
		}
	}
	return m, nil
}

func (m *AdminModel) statusDropdown(ticket *api.Ticket) *tui.DropdownOverlay {
	options := make([]tui.DropdownOption, 0, len(api.Statuses()))
	cursor := 0
	for index, status := range api.Statuses() {
		options = append(options, tui.DropdownOption{Label: status, Value: status})
		if status == ticket.Status {
			cursor = index
		}
	}
	return &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: 4,
		AnchorY: 4,
		Field:   "status",
		ItemID:  strconv.Itoa(ticket.ID),
	}
}

func (m *AdminModel) assigneeDropdown(ticket *api.Ticket) *tui.DropdownOverlay {
	options := []tui.DropdownOption{{Label: "(unassigned)", Value: ""}}
	cursor := 0
	for index, user := range m.users.items {
		options = append(options, tui.DropdownOption{Label: user.Username, Value: user.Username})
		if user.Username == ticket.AssignedTo {
			cursor = index + 1
		}
	}
	return &tui.DropdownOverlay{
		Options: options,
		Cursor:  cursor,
		AnchorX: 4,
		AnchorY: 4,
		Field:   "assignee",
		ItemID:  strconv.Itoa(ticket.ID),
	}
}

func (m *AdminModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.Update(msg, m.keys)
	switch action {
	case formBuildingSelected:
		cmds := []tea.Cmd{cmd}
		if id, ok := m.form.SelectedBuildingID(); ok {
			cmds = append(cmds, loadFloors(m.ctx, m.service, id))
		}
		if name := m.form.SelectedBuildingName(); name != "" {
			cmds = append(cmds, loadBuildingDepartments(m.ctx, m.service, name))
		}
		return m, tea.Batch(cmds...)
	case formSubmit:
		if missing := m.form.Validate(); len(missing) > 0 {
			return m, m.toast.Show("Missing required fields: "+strings.Join(missing, ", "), ToastWarning)
		}
		return m, createTicket(m.ctx, m.service, m.form.Request())
	}
	return m, cmd
}

func (m *AdminModel) listHeight() int {
	height := m.height - 6
	if height < 3 {
		height = 3
	}
	return height
}

func (m *AdminModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	width := m.width
	if width < 40 {
		width = 80
	}

	switch m.section {
	case SectionAdminTickets:
		if filterBar := m.list.Filter.View(m.theme, width); filterBar != "" {
			b.WriteString(filterBar)
			b.WriteString("\n")
		}
		b.WriteString(m.list.Render(m.theme, width, m.listHeight(), true, time.Now()))
		b.WriteString("\n")
		help := lipgloss.NewStyle().Foreground(m.theme.HelpText)
		b.WriteString(help.Render("s status  a assign  d delete  / filter  r refresh"))
	case SectionAdminCreateTicket:
		b.WriteString(m.form.Render(width))
	case SectionAdminDepartments:
		b.WriteString(m.renderDepartments())
	case SectionAdminBuildings:
		b.WriteString(m.renderBuildings())
	case SectionAdminUsers:
		b.WriteString(m.renderUsers())
	case SectionAdminSettings:
		b.WriteString(m.renderSettings())
	}

	if toast := m.toast.Render(m.theme); toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toast)
	}

	view := b.String()

	if m.form.EditingDescription() {
		lines, x, y := m.form.RenderDescription(m.safeWidth(), m.safeHeight())
		view = tui.SpliceOverlay(view, lines, x, y)
	} else if m.dropdown != nil {
		lines := m.dropdown.Render(m.theme)
		view = tui.SpliceOverlay(view, lines, m.dropdown.AnchorX, m.dropdown.AnchorY)
	}
	return view
}

func (m *AdminModel) safeWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}

func (m *AdminModel) safeHeight() int {
	if m.height < 10 {
		return 24
	}
	return m.height
}

func (m *AdminModel) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	active := lipgloss.NewStyle().Foreground(m.theme.SelectedForeground).Bold(true)

	var tabs []string
	for index, section := range adminSections {
		label := section.Title()
		entry := faint.Render(label)
		if section == m.section {
			entry = active.Render(label)
		}
		tabs = append(tabs, faint.Render(fmt.Sprintf("%d", index+1))+" "+entry)
	}

	who := m.username
	if m.role != "" {
		who += " (" + m.role + ")"
	}
	return title.Render("ICT Support Admin") + "  " + faint.Render(who) + "\n" +
		strings.Join(tabs, faint.Render("  |  "))
}

// renderRegistry draws a simple name/detail listing with the shared
// loading and stale-data treatment.
func renderRegistry[T any](c *collection[T], theme tui.Theme, noun string, line func(T) string) string {
	var b strings.Builder
	if c.loadErr != nil {
		errorStyle := lipgloss.NewStyle().Foreground(theme.ToastError).Bold(true)
		b.WriteString(errorStyle.Render("Failed to load " + noun + "."))
		if len(c.items) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).
				Render(" Showing last known data."))
		}
		b.WriteString("\n")
	}
	if c.loading {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("Loading..."))
		b.WriteString("\n")
	}
	for _, item := range c.items {
		b.WriteString(line(item))
		b.WriteString("\n")
	}
	if c.loaded && len(c.items) == 0 && c.loadErr == nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("No " + noun + "."))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *AdminModel) renderDepartments() string {
	name := lipgloss.NewStyle().Foreground(m.theme.NormalText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	return renderRegistry(&m.departments, m.theme, "departments", func(d api.Department) string {
		line := "  " + name.Render(d.Name)
		if d.Building != "" {
			line += faint.Render("  " + d.Building)
		}
		if d.Description != "" {
			line += faint.Render("  " + d.Description)
		}
		return line
	})
}

func (m *AdminModel) renderBuildings() string {
	name := lipgloss.NewStyle().Foreground(m.theme.NormalText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	return renderRegistry(&m.buildings, m.theme, "buildings", func(b api.Building) string {
		line := "  " + name.Render(b.Name)
		if b.FloorsCount > 0 {
			line += faint.Render(fmt.Sprintf("  %d floors", b.FloorsCount))
		}
		return line
	})
}

func (m *AdminModel) renderUsers() string {
	name := lipgloss.NewStyle().Foreground(m.theme.NormalText).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	inactive := lipgloss.NewStyle().Foreground(m.theme.ToastWarning)
	return renderRegistry(&m.users, m.theme, "users", func(u api.User) string {
		line := "  " + name.Render(u.Username) + faint.Render("  "+u.Role)
		if u.DepartmentName != "" {
			line += faint.Render("  " + u.DepartmentName)
		}
		if !u.Active {
			line += inactive.Render("  inactive")
		}
		return line
	})
}

func (m *AdminModel) renderSettings() string {
	normal := lipgloss.NewStyle().Foreground(m.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	return normal.Render("Signed in as "+m.username) + "\n\n" +
		faint.Render("Change your password with: ictsupport login --change-password\n"+
			"Sign out with: ictsupport logout")
}
