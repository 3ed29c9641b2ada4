// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

func newTestAdmin(service Service) *AdminModel {
	return NewAdminModel(context.Background(), AdminConfig{
		Service:  service,
		Username: "admin",
		Role:     "superuser",
		Theme:    tui.DefaultTheme,
		Keys:     DefaultKeyMap,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAdminInitLoadsQueueAndRegistries(t *testing.T) {
	service := &fakeService{
		tickets:   sampleTickets(3),
		buildings: []api.Building{{ID: 3, Name: "Library"}},
		users:     []api.User{{ID: 1, Username: "tech.kip", Role: "technician", Active: true}},
	}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	if len(admin.list.Visible()) != 3 {
		t.Fatalf("tickets loaded = %d, want 3", len(admin.list.Visible()))
	}
	if len(admin.users.items) != 1 {
		t.Fatalf("users loaded = %d, want 1", len(admin.users.items))
	}
}

func TestAdminStatusDropdownPreselectsCurrent(t *testing.T) {
	tickets := sampleTickets(1)
	tickets[0].Status = api.StatusInProgress
	admin := newTestAdmin(&fakeService{tickets: tickets})
	drain(t, admin, admin.Init())

	dropdown := admin.statusDropdown(admin.list.Selected())
	if dropdown.Selected().Value != api.StatusInProgress {
		t.Fatalf("dropdown preselected %q", dropdown.Selected().Value)
	}
	if dropdown.Field != "status" || dropdown.ItemID != "1" {
		t.Fatalf("dropdown target = %q/%q", dropdown.Field, dropdown.ItemID)
	}
}

func TestAdminStatusChangeThroughDropdown(t *testing.T) {
	service := &fakeService{tickets: sampleTickets(1)}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	model, _ := admin.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	admin = model.(*AdminModel)
	if admin.dropdown == nil {
		t.Fatal("status key did not open the dropdown")
	}

	admin.dropdown.MoveDown()
	selected := admin.dropdown.Selected().Value
	model, cmd := admin.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	admin = model.(*AdminModel)
	drain(t, admin, cmd)

	if admin.dropdown != nil {
		t.Fatal("dropdown still open after selection")
	}
	if len(service.statusCalls) != 1 || service.statusCalls[0] != selected {
		t.Fatalf("status calls = %v, want [%s]", service.statusCalls, selected)
	}
}

func TestAdminDropdownEscapeCancels(t *testing.T) {
	service := &fakeService{tickets: sampleTickets(1)}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	model, _ := admin.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	admin = model.(*AdminModel)
	model, _ = admin.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	admin = model.(*AdminModel)

	if admin.dropdown != nil {
		t.Fatal("escape did not close the dropdown")
	}
	if len(service.statusCalls) != 0 {
		t.Fatalf("cancelled dropdown issued calls: %v", service.statusCalls)
	}
}

func TestAdminAssigneeDropdownIncludesUnassigned(t *testing.T) {
	service := &fakeService{
		tickets: sampleTickets(1),
		users: []api.User{
			{ID: 1, Username: "tech.kip"},
			{ID: 2, Username: "tech.achieng"},
		},
	}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	ticket := admin.list.Selected()
	ticket.AssignedTo = "tech.achieng"
	dropdown := admin.assigneeDropdown(ticket)

	if dropdown.Options[0].Label != "(unassigned)" || dropdown.Options[0].Value != "" {
		t.Fatalf("first option = %+v", dropdown.Options[0])
	}
	if dropdown.Selected().Value != "tech.achieng" {
		t.Fatalf("preselected assignee = %q", dropdown.Selected().Value)
	}
}

func TestAdminBuildingDepartmentsStayOutOfRegistry(t *testing.T) {
	service := &fakeService{
		departments: []api.Department{
			{ID: 1, Name: "Circulation"},
			{ID: 2, Name: "Media Services"},
		},
	}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())
	drain(t, admin, admin.showSection(SectionAdminDepartments))

	registrySize := len(admin.departments.items)
	if registrySize == 0 {
		t.Fatal("department registry did not load")
	}

	// A building-scoped load feeds the create form's selector only.
	drain(t, admin, func() tea.Msg {
		return buildingDepartmentsLoadedMsg{
			building:    "Library",
			departments: []api.Department{{ID: 1, Name: "Circulation"}},
		}
	})
	if len(admin.departments.items) != registrySize {
		t.Fatalf("registry size changed to %d after scoped load", len(admin.departments.items))
	}
}

func TestAdminRegistriesLoadThroughAdminEndpoints(t *testing.T) {
	service := &fakeService{
		buildings:        []api.Building{{ID: 1, Name: "Public Only"}},
		departments:      []api.Department{{ID: 1, Name: "Public Only"}},
		adminBuildings:   []api.Building{{ID: 3, Name: "Library"}, {ID: 4, Name: "Science Wing"}},
		adminDepartments: []api.Department{{ID: 7, Name: "Circulation"}},
	}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	drain(t, admin, admin.showSection(SectionAdminBuildings))
	if len(admin.buildings.items) != 2 || admin.buildings.items[0].Name != "Library" {
		t.Fatalf("building registry = %+v, want the admin list", admin.buildings.items)
	}

	drain(t, admin, admin.showSection(SectionAdminDepartments))
	if len(admin.departments.items) != 1 || admin.departments.items[0].Name != "Circulation" {
		t.Fatalf("department registry = %+v, want the admin list", admin.departments.items)
	}
}

func TestAdminSectionFallback(t *testing.T) {
	admin := newTestAdmin(&fakeService{})
	drain(t, admin, admin.showSection(SectionChat))
	if admin.section != SectionAdminTickets {
		t.Fatalf("section = %v, want admin tickets", admin.section)
	}
}

func TestAdminMutationIgnitesRow(t *testing.T) {
	service := &fakeService{tickets: sampleTickets(2)}
	admin := newTestAdmin(service)
	drain(t, admin, admin.Init())

	admin.pendingMutationID = 2
	drain(t, admin, func() tea.Msg {
		return mutationResultMsg{action: "status"}
	})

	if admin.pendingMutationID != 0 {
		t.Fatal("pending mutation id not cleared")
	}
	if !admin.list.HasHot(time.Now()) {
		t.Fatal("mutated row not ignited")
	}
}
