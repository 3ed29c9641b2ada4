// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"context"
	"errors"
	"testing"

	"github.com/Deon62/MSP-ictSupport/lib/api"
)

// fakeService implements Service in-memory for tests. Each method
// returns the configured data or the configured error. The admin
// registry variants fall back to the public lists unless configured
// separately.
type fakeService struct {
	err error

	tickets          []api.Ticket
	buildings        []api.Building
	adminBuildings   []api.Building
	floors           []api.Floor
	departments      []api.Department
	adminDepartments []api.Department
	users            []api.User
	dashboard        *api.Dashboard
	health           *api.AIHealth
	chatReply        string

	createCalls    []api.CreateTicketRequest
	statusCalls    []string
	deleteCalls    []int
	rateCalls      []api.RateTicketRequest
	floorCalls     []int
	scopedDeptArgs []string
}

func (s *fakeService) Tickets(ctx context.Context, filter api.TicketFilter) ([]api.Ticket, error) {
	return s.tickets, s.err
}

func (s *fakeService) AdminTickets(ctx context.Context, filter api.TicketFilter) ([]api.Ticket, error) {
	return s.tickets, s.err
}

func (s *fakeService) CreateTicket(ctx context.Context, request api.CreateTicketRequest) (*api.Ticket, error) {
	s.createCalls = append(s.createCalls, request)
	if s.err != nil {
		return nil, s.err
	}
	return &api.Ticket{ID: 1, Notification: "Ticket #1 created successfully"}, nil
}

func (s *fakeService) UpdateTicketStatus(ctx context.Context, id int, status string) (*api.Ticket, error) {
	s.statusCalls = append(s.statusCalls, status)
	if s.err != nil {
		return nil, s.err
	}
	return &api.Ticket{ID: id, Status: status}, nil
}

func (s *fakeService) AssignTicket(ctx context.Context, id int, assignee string) (*api.Ticket, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &api.Ticket{ID: id, AssignedTo: assignee}, nil
}

func (s *fakeService) DeleteTicket(ctx context.Context, id int) error {
	s.deleteCalls = append(s.deleteCalls, id)
	return s.err
}

func (s *fakeService) RateTicket(ctx context.Context, id int, request api.RateTicketRequest) error {
	s.rateCalls = append(s.rateCalls, request)
	return s.err
}

func (s *fakeService) Buildings(ctx context.Context) ([]api.Building, error) {
	return s.buildings, s.err
}

func (s *fakeService) AdminBuildings(ctx context.Context) ([]api.Building, error) {
	if s.adminBuildings != nil {
		return s.adminBuildings, s.err
	}
	return s.buildings, s.err
}

func (s *fakeService) Floors(ctx context.Context, buildingID int) ([]api.Floor, error) {
	s.floorCalls = append(s.floorCalls, buildingID)
	return s.floors, s.err
}

func (s *fakeService) AdminDepartments(ctx context.Context) ([]api.Department, error) {
	if s.adminDepartments != nil {
		return s.adminDepartments, s.err
	}
	return s.departments, s.err
}

func (s *fakeService) DepartmentsByBuilding(ctx context.Context, building string) ([]api.Department, error) {
	s.scopedDeptArgs = append(s.scopedDeptArgs, building)
	return s.departments, s.err
}

func (s *fakeService) AdminUsers(ctx context.Context) ([]api.User, error) {
	return s.users, s.err
}

func (s *fakeService) Dashboard(ctx context.Context) (*api.Dashboard, error) {
	return s.dashboard, s.err
}

func (s *fakeService) AIHealth(ctx context.Context) (*api.AIHealth, error) {
	return s.health, s.err
}

func (s *fakeService) AIChat(ctx context.Context, message string) (*api.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &api.ChatResponse{Response: s.chatReply}, nil
}

func TestCollectionKeepsStaleItemsOnError(t *testing.T) {
	var c collection[api.Ticket]
	c.beginLoad()
	c.finishLoad([]api.Ticket{{ID: 1}, {ID: 2}}, nil)
	if len(c.items) != 2 || c.loadErr != nil {
		t.Fatalf("initial load: items=%d err=%v", len(c.items), c.loadErr)
	}

	c.beginLoad()
	loadErr := errors.New("connection refused")
	c.finishLoad(nil, loadErr)
	if len(c.items) != 2 {
		t.Fatalf("stale items dropped on failed reload: %d", len(c.items))
	}
	if c.loadErr != loadErr {
		t.Fatalf("load error not recorded: %v", c.loadErr)
	}

	c.beginLoad()
	c.finishLoad([]api.Ticket{{ID: 3}}, nil)
	if len(c.items) != 1 || c.loadErr != nil {
		t.Fatalf("recovery load: items=%d err=%v", len(c.items), c.loadErr)
	}
}

func TestLoadFloorsSortsList(t *testing.T) {
	service := &fakeService{floors: []api.Floor{
		{Label: "3"},
		{Label: "Background Floor"},
		{Label: "Ground Floor"},
		{Label: "10"},
	}}
	msg := loadFloors(context.Background(), service, 3)()
	loaded, ok := msg.(floorsLoadedMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if loaded.err != nil {
		t.Fatalf("load failed: %v", loaded.err)
	}
	got := make([]string, 0, len(loaded.floors))
	for _, floor := range loaded.floors {
		got = append(got, floor.Label)
	}
	want := []string{"Ground Floor", "3", "10", "Background Floor"}
	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("floor order %v, want %v", got, want)
		}
	}
}

func TestCreateTicketCommandCarriesNotification(t *testing.T) {
	service := &fakeService{}
	msg := createTicket(context.Background(), service, api.CreateTicketRequest{})()
	result, ok := msg.(mutationResultMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if result.err != nil {
		t.Fatalf("create failed: %v", result.err)
	}
	if result.action != "create" {
		t.Fatalf("action = %q", result.action)
	}
	if result.notification != "Ticket #1 created successfully" {
		t.Fatalf("notification = %q", result.notification)
	}
}

func TestChatCommandReportsErrors(t *testing.T) {
	service := &fakeService{err: errors.New("boom")}
	msg := sendChat(context.Background(), service, "help")()
	reply, ok := msg.(chatReplyMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if reply.err == nil {
		t.Fatal("expected error")
	}
}
