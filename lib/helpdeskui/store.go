// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deon62/MSP-ictSupport/lib/api"
)

// Service is the slice of the helpdesk API that the TUI consumes.
// *api.Client satisfies it; tests substitute fakes.
type Service interface {
	Tickets(ctx context.Context, filter api.TicketFilter) ([]api.Ticket, error)
	AdminTickets(ctx context.Context, filter api.TicketFilter) ([]api.Ticket, error)
	CreateTicket(ctx context.Context, request api.CreateTicketRequest) (*api.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id int, status string) (*api.Ticket, error)
	AssignTicket(ctx context.Context, id int, assignee string) (*api.Ticket, error)
	DeleteTicket(ctx context.Context, id int) error
	RateTicket(ctx context.Context, id int, request api.RateTicketRequest) error

	Buildings(ctx context.Context) ([]api.Building, error)
	AdminBuildings(ctx context.Context) ([]api.Building, error)
	Floors(ctx context.Context, buildingID int) ([]api.Floor, error)
	AdminDepartments(ctx context.Context) ([]api.Department, error)
	DepartmentsByBuilding(ctx context.Context, building string) ([]api.Department, error)
	AdminUsers(ctx context.Context) ([]api.User, error)

	Dashboard(ctx context.Context) (*api.Dashboard, error)
	AIHealth(ctx context.Context) (*api.AIHealth, error)
	AIChat(ctx context.Context, message string) (*api.ChatResponse, error)
}

// collection holds one loadable slice of API data together with its
// load state. On a failed reload the previously loaded items are kept,
// so the screen can show stale data alongside the error notice instead
// of going blank.
type collection[T any] struct {
	items   []T
	loaded  bool
	loading bool
	loadErr error
}

func (c *collection[T]) beginLoad() {
	c.loading = true
}

// finishLoad records the outcome of a load. On success the items are
// replaced; on failure the existing items survive and only the error
// is recorded.
func (c *collection[T]) finishLoad(items []T, err error) {
	c.loading = false
	c.loadErr = err
	if err != nil {
		return
	}
	c.items = items
	c.loaded = true
}

// Load result messages. Each carries the fetched data and the error,
// exactly one of which is meaningful.

type ticketsLoadedMsg struct {
	tickets []api.Ticket
	err     error
}

type buildingsLoadedMsg struct {
	buildings []api.Building
	err       error
}

type floorsLoadedMsg struct {
	buildingID int
	floors     []api.Floor
	err        error
}

type departmentsLoadedMsg struct {
	departments []api.Department
	err         error
}

// buildingDepartmentsLoadedMsg carries the building-scoped department
// list, keyed by the building name the fetch was issued for.
type buildingDepartmentsLoadedMsg struct {
	building    string
	departments []api.Department
	err         error
}

type usersLoadedMsg struct {
	users []api.User
	err   error
}

type dashboardLoadedMsg struct {
	dashboard *api.Dashboard
	err       error
}

type healthLoadedMsg struct {
	health *api.AIHealth
	err    error
}

// mutationResultMsg reports the outcome of a background mutation
// (create, status change, assign, delete, rate). action names the
// mutation for the toast; notification carries a server-provided
// message when the API returned one.
type mutationResultMsg struct {
	action       string
	notification string
	err          error
}

// chatReplyMsg delivers the AI assistant's answer, or the error the
// chat panel turns into a fallback message.
type chatReplyMsg struct {
	reply string
	err   error
}

// Load commands. Each wraps one Service call in a tea.Cmd so fetches
// run off the update loop.

func loadTickets(ctx context.Context, service Service, filter api.TicketFilter) tea.Cmd {
	return func() tea.Msg {
		tickets, err := service.Tickets(ctx, filter)
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

func loadAdminTickets(ctx context.Context, service Service, filter api.TicketFilter) tea.Cmd {
	return func() tea.Msg {
		tickets, err := service.AdminTickets(ctx, filter)
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

func loadBuildings(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		buildings, err := service.Buildings(ctx)
		return buildingsLoadedMsg{buildings: buildings, err: err}
	}
}

func loadAdminBuildings(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		buildings, err := service.AdminBuildings(ctx)
		return buildingsLoadedMsg{buildings: buildings, err: err}
	}
}

func loadFloors(ctx context.Context, service Service, buildingID int) tea.Cmd {
	return func() tea.Msg {
		floors, err := service.Floors(ctx, buildingID)
		if err == nil {
			api.SortFloors(floors)
		}
		return floorsLoadedMsg{buildingID: buildingID, floors: floors, err: err}
	}
}

func loadAdminDepartments(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		departments, err := service.AdminDepartments(ctx)
		return departmentsLoadedMsg{departments: departments, err: err}
	}
}

func loadBuildingDepartments(ctx context.Context, service Service, building string) tea.Cmd {
	return func() tea.Msg {
		departments, err := service.DepartmentsByBuilding(ctx, building)
		return buildingDepartmentsLoadedMsg{building: building, departments: departments, err: err}
	}
}

func loadUsers(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		users, err := service.AdminUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func loadDashboard(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		dashboard, err := service.Dashboard(ctx)
		return dashboardLoadedMsg{dashboard: dashboard, err: err}
	}
}

func loadAIHealth(ctx context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		health, err := service.AIHealth(ctx)
		return healthLoadedMsg{health: health, err: err}
	}
}

func sendChat(ctx context.Context, service Service, message string) tea.Cmd {
	return func() tea.Msg {
		response, err := service.AIChat(ctx, message)
		if err != nil {
			return chatReplyMsg{err: err}
		}
		return chatReplyMsg{reply: response.Response}
	}
}

func createTicket(ctx context.Context, service Service, request api.CreateTicketRequest) tea.Cmd {
	return func() tea.Msg {
		ticket, err := service.CreateTicket(ctx, request)
		msg := mutationResultMsg{action: "create", err: err}
		if ticket != nil {
			msg.notification = ticket.Notification
		}
		return msg
	}
}

func updateTicketStatus(ctx context.Context, service Service, id int, status string) tea.Cmd {
	return func() tea.Msg {
		ticket, err := service.UpdateTicketStatus(ctx, id, status)
		msg := mutationResultMsg{action: "status", err: err}
		if ticket != nil {
			msg.notification = ticket.Notification
		}
		return msg
	}
}

func assignTicket(ctx context.Context, service Service, id int, assignee string) tea.Cmd {
	return func() tea.Msg {
		_, err := service.AssignTicket(ctx, id, assignee)
		return mutationResultMsg{action: "assign", err: err}
	}
}

func deleteTicket(ctx context.Context, service Service, id int) tea.Cmd {
	return func() tea.Msg {
		err := service.DeleteTicket(ctx, id)
		return mutationResultMsg{action: "delete", err: err}
	}
}

func rateTicket(ctx context.Context, service Service, id int, request api.RateTicketRequest) tea.Cmd {
	return func() tea.Msg {
		err := service.RateTicket(ctx, id, request)
		return mutationResultMsg{action: "rate", err: err}
	}
}
