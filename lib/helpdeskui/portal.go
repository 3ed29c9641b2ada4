// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// heatTickMsg drives the heat decay animation re-render loop.
type heatTickMsg struct{}

func heatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// PortalConfig configures the public portal model.
type PortalConfig struct {
	Service  Service
	UserName string // Display name of the anonymous session.
	Theme    tui.Theme
	Keys     KeyMap
	Logger   *slog.Logger
}

// PortalModel is the public helpdesk portal: dashboard, the user's
// tickets, the ticket form, the AI assistant, and emergency contacts.
// No login is required; the anonymous session identifies the user to
// the server.
type PortalModel struct {
	ctx     context.Context
	service Service
	theme   tui.Theme
	keys    KeyMap
	logger  *slog.Logger

	userName string

	width  int
	height int

	section Section
	toast   Toast

	list TicketList
	form TicketForm

	chat      ChatPanel
	chatInput textinput.Model
	chatFocus bool
	health    HealthIndicator

	emergency EmergencyModal

	dashboard        *api.Dashboard
	dashboardErr     error
	dashboardLoading bool

	rating          *RatingModal
	confirmDeleteID int // Ticket pending delete confirmation; 0 when none.
}

// NewPortalModel creates the portal over the given service.
func NewPortalModel(ctx context.Context, config PortalConfig) *PortalModel {
	chatInput := textinput.New()
	chatInput.Placeholder = "Type a message and press Enter"
	chatInput.CharLimit = 500
	chatInput.Width = 60

	return &PortalModel{
		ctx:       ctx,
		service:   config.Service,
		theme:     config.Theme,
		keys:      config.Keys,
		logger:    config.Logger,
		userName:  config.UserName,
		section:   SectionHome,
		toast:     NewToast(ToastPortalDuration),
		list:      NewTicketList("Create New Ticket (press 4)"),
		form:      NewTicketForm(config.Theme),
		emergency: NewEmergencyModal(),
		chatInput: chatInput,
	}
}

// Init loads the building list for the ticket form and probes the
// assistant so the chat badge is warm by the time the user gets
// there.
func (m *PortalModel) Init() tea.Cmd {
	return tea.Batch(
		loadBuildings(m.ctx, m.service),
		loadAIHealth(m.ctx, m.service),
	)
}

// showSection switches to the requested section, falling back to the
// dashboard for sections the portal does not have, and always
// redispatches the section's load so the data on screen is fresh.
func (m *PortalModel) showSection(target Section) tea.Cmd {
	resolved := resolveSection(target, portalSections, SectionDashboard)
	if resolved != target {
		m.logger.Warn("unknown portal section, showing dashboard", "requested", target.String())
	}
	m.section = resolved

	switch resolved {
	case SectionDashboard:
		m.dashboardLoading = true
		return loadDashboard(m.ctx, m.service)
	case SectionTickets:
		m.list.BeginLoad()
		return loadTickets(m.ctx, m.service, api.TicketFilter{})
	case SectionCreateTicket:
		return loadBuildings(m.ctx, m.service)
	case SectionChat:
		m.chatFocus = true
		m.chatInput.Focus()
		return loadAIHealth(m.ctx, m.service)
	default:
		return nil
	}
}

func (m *PortalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ticketsLoadedMsg:
		m.list.FinishLoad(msg.tickets, msg.err)
		return m, nil

	case buildingsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("building list load failed", "error", msg.err)
			return m, nil
		}
		m.form.SetBuildings(msg.buildings)
		return m, nil

	case buildingDepartmentsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("department list load failed", "error", msg.err)
			return m, nil
		}
		if msg.building == m.form.SelectedBuildingName() {
			m.form.SetDepartments(msg.departments)
		}
		return m, nil

	case floorsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("floor list load failed", "error", msg.err)
			return m, nil
		}
		// Drop a late response for a building no longer selected.
		if selected, ok := m.form.SelectedBuildingID(); ok && selected == msg.buildingID {
			m.form.SetFloors(msg.floors)
		}
		return m, nil

	case dashboardLoadedMsg:
		m.dashboardLoading = false
		if msg.err != nil {
			m.dashboardErr = msg.err
			return m, nil
		}
		m.dashboardErr = nil
		m.dashboard = msg.dashboard
		return m, nil

	case healthLoadedMsg:
		m.health.Apply(msg.health, msg.err)
		return m, nil

	case chatReplyMsg:
		m.chat.Resolve(msg.reply, msg.err)
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

func (m *PortalModel) handleMutationResult(msg mutationResultMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error("mutation failed", "action", msg.action, "error", msg.err)
		return m.toast.Show(userErrorText(msg.err), ToastError)
	}

	text := msg.notification
	switch msg.action {
	case "create":
		if text == "" {
			text = "Ticket created successfully"
		}
		m.form.Reset()
		return tea.Batch(m.toast.Show(text, ToastSuccess), m.showSection(SectionTickets))
	case "delete":
		if text == "" {
			text = "Ticket deleted"
		}
		m.list.BeginLoad()
		return tea.Batch(
			m.toast.Show(text, ToastSuccess),
			loadTickets(m.ctx, m.service, api.TicketFilter{}),
		)
	case "rate":
		if text == "" {
			text = "Thank you for your feedback"
		}
		m.list.BeginLoad()
		return tea.Batch(
			m.toast.Show(text, ToastSuccess),
			loadTickets(m.ctx, m.service, api.TicketFilter{}),
		)
	default:
		if text == "" {
			text = "Done"
		}
		return m.toast.Show(text, ToastSuccess)
	}
}

// userErrorText turns a client error into the line shown in an error
// toast.
func userErrorText(err error) string {
	switch {
	case api.IsTimeout(err):
		return "The server took too long to respond"
	case api.IsNetwork(err):
		return "Could not reach the helpdesk server"
	default:
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return apiErr.Message
		}
		return "Something went wrong. Please try again."
	}
}

func (m *PortalModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay layers take input first: description editor, then the
	// rating modal, then the chat input, then the filter.
	if m.form.EditingDescription() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlD:
			m.form.CloseDescription()
		default:
			m.form.UpdateDescription(msg)
		}
		return m, nil
	}

	if m.rating != nil {
		return m.handleRatingKey(msg)
	}

	if m.section == SectionChat && m.chatFocus {
		return m.handleChatKey(msg)
	}

	if m.section == SectionTickets && m.list.Filter.Active {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Section1):
		return m, m.showSection(SectionHome)
	case key.Matches(msg, m.keys.Section2):
		return m, m.showSection(SectionDashboard)
	case key.Matches(msg, m.keys.Section3):
		return m, m.showSection(SectionTickets)
	case key.Matches(msg, m.keys.Section4):
		return m, m.showSection(SectionCreateTicket)
	case key.Matches(msg, m.keys.Section5):
		return m, m.showSection(SectionChat)
	case key.Matches(msg, m.keys.Section6):
		return m, m.showSection(SectionEmergency)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.showSection(m.section)
	}

	switch m.section {
	case SectionTickets:
		return m.handleTicketListKey(msg)
	case SectionCreateTicket:
		return m.handleFormKey(msg)
	case SectionEmergency:
		return m.handleEmergencyKey(msg)
	}
	return m, nil
}

func (m *PortalModel) handleRatingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rating := m.rating
	if rating.EditingComment() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlD:
			rating.StopComment()
		default:
			rating.UpdateComment(msg)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.rating = nil
	case key.Matches(msg, m.keys.Left):
		rating.HoverLeft()
	case key.Matches(msg, m.keys.Right):
		rating.HoverRight()
	case key.Matches(msg, m.keys.Select):
		rating.Commit()
	case msg.String() == "c":
		rating.StartComment()
	case msg.String() == "S":
		if !rating.CanSubmit() {
			return m, nil
		}
		request := api.RateTicketRequest{
			Rating:  rating.Selected,
			Comment: rating.Comment(),
		}
		ticketID := rating.TicketID
		m.rating = nil
		return m, rateTicket(m.ctx, m.service, ticketID, request)
	}
	return m, nil
}

func (m *PortalModel) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.chatFocus = false
		m.chatInput.Blur()
		return m, nil
	case tea.KeyEnter:
		message := strings.TrimSpace(m.chatInput.Value())
		if message == "" || m.chat.Waiting() {
			return m, nil
		}
		m.chat.Send(message)
		m.chatInput.SetValue("")
		return m, sendChat(m.ctx, m.service, message)
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *PortalModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (m *PortalModel) handleTicketListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	height := m.listHeight()

	// A pending delete confirmation consumes the next key: the delete
	// key again confirms, anything else cancels.
	if m.confirmDeleteID != 0 {
		id := m.confirmDeleteID
		m.confirmDeleteID = 0
		if key.Matches(msg, m.keys.Delete) {
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
	case key.Matches(msg, m.keys.Delete):
		if ticket := m.list.Selected(); ticket != nil {
			m.confirmDeleteID = ticket.ID
			return m, m.toast.Show("Press d again to delete the ticket", ToastWarning)
		}
	case key.Matches(msg, m.keys.Rate):
		ticket := m.list.Selected()
		if ticket == nil {
			return m, nil
		}
		if ticket.Status != api.StatusResolved && ticket.Status != api.StatusClosed {
			return m, m.toast.Show("Only resolved tickets can be rated", ToastInfo)
		}
		rating := NewRatingModal(ticket.ID, m.theme)
		m.rating = &rating
	case key.Matches(msg, m.keys.Select):
		// Selecting a ticket ignites its row so the eye lands on it.
		if ticket := m.list.Selected(); ticket != nil {
			m.list.Ignite(ticket.ID, tui.HeatPut, time.Now())
			return m, heatTick()
		}
	}
	return m, nil
}

func (m *PortalModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.Update(msg, m.keys)
	switch action {
	case formBuildingSelected:
		return m, tea.Batch(append([]tea.Cmd{cmd}, m.buildingLoads()...)...)
	case formSubmit:
		if missing := m.form.Validate(); len(missing) > 0 {
			return m, m.toast.Show("Missing required fields: "+strings.Join(missing, ", "), ToastWarning)
		}
		return m, createTicket(m.ctx, m.service, m.form.Request())
	}
	return m, cmd
}

// buildingLoads returns the fetches a committed building selection
// triggers: its floors (for the dial) and its departments (for the
// selector).
func (m *PortalModel) buildingLoads() []tea.Cmd {
	var cmds []tea.Cmd
	if id, ok := m.form.SelectedBuildingID(); ok {
		cmds = append(cmds, loadFloors(m.ctx, m.service, id))
	}
	if name := m.form.SelectedBuildingName(); name != "" {
		cmds = append(cmds, loadBuildingDepartments(m.ctx, m.service, name))
	}
	return cmds
}

func (m *PortalModel) handleEmergencyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.emergency.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.emergency.CursorDown()
	case key.Matches(msg, m.keys.Select):
		action := m.emergency.Selected()
		switch action.Kind {
		case EmergencyOpenChat:
			cmd := m.showSection(SectionChat)
			m.chatInput.SetValue(EmergencyChatPrefill)
			m.chatInput.CursorEnd()
			return m, cmd
		case EmergencyFileTicket:
			cmd := m.showSection(SectionCreateTicket)
			m.form.SetUrgency(api.PriorityUrgent)
			return m, cmd
		}
	}
	return m, nil
}

// listHeight is the number of ticket rows that fit in the content
// area.
func (m *PortalModel) listHeight() int {
	height := m.height - 6 // Header, tabs, toast, position line.
	if height < 3 {
		height = 3
	}
	return height
}

func (m *PortalModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	width := m.width
	if width < 40 {
		width = 80
	}

	switch m.section {
	case SectionHome:
		b.WriteString(m.renderHome())
	case SectionDashboard:
		b.WriteString(m.renderDashboardSection(width))
	case SectionTickets:
		if filterBar := m.list.Filter.View(m.theme, width); filterBar != "" {
			b.WriteString(filterBar)
			b.WriteString("\n")
		}
		b.WriteString(m.list.Render(m.theme, width, m.listHeight(), true, time.Now()))
	case SectionCreateTicket:
		b.WriteString(m.form.Render(width))
	case SectionChat:
		b.WriteString(m.health.Render(m.theme))
		b.WriteString("\n\n")
		b.WriteString(m.chat.Render(m.theme, width))
		b.WriteString("\n\n")
		b.WriteString(m.chatInput.View())
	case SectionEmergency:
		b.WriteString(m.emergency.Render(m.theme))
	}

	if toast := m.toast.Render(m.theme); toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toast)
	}

	view := b.String()

	// Overlays splice over the base view.
	if m.form.EditingDescription() {
		lines, x, y := m.form.RenderDescription(m.safeWidth(), m.safeHeight())
		view = tui.SpliceOverlay(view, lines, x, y)
	} else if m.rating != nil {
		if m.rating.EditingComment() {
			lines, x, y := m.rating.RenderComment(m.safeWidth(), m.safeHeight())
			view = tui.SpliceOverlay(view, lines, x, y)
		} else {
			view += "\n\n" + m.rating.Render(m.theme)
		}
	}
	return view
}

func (m *PortalModel) safeWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}

func (m *PortalModel) safeHeight() int {
	if m.height < 10 {
		return 24
	}
	return m.height
}

func (m *PortalModel) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	active := lipgloss.NewStyle().Foreground(m.theme.SelectedForeground).Bold(true)

	var tabs []string
	for index, section := range portalSections {
		label := section.Title()
		entry := faint.Render(label)
		if section == m.section {
			entry = active.Render(label)
		}
		tabs = append(tabs, faint.Render(fmt.Sprintf("%d", index+1))+" "+entry)
	}

	return title.Render("ICT Support") + "  " +
		faint.Render(m.userName) + "\n" +
		strings.Join(tabs, faint.Render("  |  "))
}

func (m *PortalModel) renderHome() string {
	normal := lipgloss.NewStyle().Foreground(m.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	return normal.Render("Welcome to the ICT support portal.") + "\n\n" +
		faint.Render("2 Dashboard   3 My Tickets   4 Create New Ticket\n"+
			"5 AI Assistant   6 Emergency Contacts\n\n"+
			"q quits. Pick a section with its number key.")
}

func (m *PortalModel) renderDashboardSection(width int) string {
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	if m.dashboardErr != nil {
		errorStyle := lipgloss.NewStyle().Foreground(m.theme.ToastError).Bold(true)
		view := errorStyle.Render("Failed to load the dashboard.")
		if m.dashboard != nil {
			view += "\n" + faint.Render("Showing last known data.") + "\n\n" +
				renderDashboard(m.dashboard, m.theme, width)
		}
		return view
	}
	if m.dashboard == nil {
		return faint.Render("Loading...")
	}
	view := renderDashboard(m.dashboard, m.theme, width)
	if m.dashboardLoading {
		view = faint.Render("Refreshing...") + "\n\n" + view
	}
	return view
}
