// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

func sampleTickets(count int) []api.Ticket {
	tickets := make([]api.Ticket, 0, count)
	for index := 0; index < count; index++ {
		tickets = append(tickets, api.Ticket{
			ID:          index + 1,
			Status:      api.StatusPending,
			Priority:    api.PriorityMedium,
			Description: "sample issue",
		})
	}
	return tickets
}

func TestTicketListEmptyStateShowsCTA(t *testing.T) {
	list := NewTicketList("Create New Ticket (press 4)")
	list.BeginLoad()
	list.FinishLoad(nil, nil)

	view := list.Render(tui.DefaultTheme, 80, 10, true, time.Now())
	if !strings.Contains(view, "No tickets yet") {
		t.Fatalf("empty state missing: %q", view)
	}
	if !strings.Contains(view, "Create New Ticket") {
		t.Fatalf("call to action missing: %q", view)
	}
}

func TestTicketListErrorKeepsStaleRows(t *testing.T) {
	list := NewTicketList("cta")
	list.BeginLoad()
	list.FinishLoad(sampleTickets(3), nil)

	list.BeginLoad()
	list.FinishLoad(nil, errors.New("gateway timeout"))

	view := list.Render(tui.DefaultTheme, 80, 10, true, time.Now())
	if !strings.Contains(view, "Failed to load tickets") {
		t.Fatal("load failure notice missing")
	}
	if !strings.Contains(view, "#1") {
		t.Fatal("stale rows not rendered under the failure notice")
	}
}

func TestTicketListCursorAndScroll(t *testing.T) {
	list := NewTicketList("cta")
	list.FinishLoad(sampleTickets(20), nil)

	const height = 5
	for step := 0; step < 7; step++ {
		list.CursorDown(height)
	}
	if list.cursor != 7 {
		t.Fatalf("cursor = %d, want 7", list.cursor)
	}
	if list.scroll != 3 {
		t.Fatalf("scroll = %d, want 3", list.scroll)
	}

	list.End(height)
	if selected := list.Selected(); selected == nil || selected.ID != 20 {
		t.Fatalf("end selection = %+v", selected)
	}

	list.Home()
	if list.cursor != 0 || list.scroll != 0 {
		t.Fatalf("home left cursor=%d scroll=%d", list.cursor, list.scroll)
	}
}

func TestTicketListFilterNarrowsSelection(t *testing.T) {
	list := NewTicketList("cta")
	tickets := sampleTickets(3)
	tickets[1].Description = "projector flickering"
	list.FinishLoad(tickets, nil)

	list.Filter.Input = "projector"
	visible := list.Visible()
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("filtered view = %+v", visible)
	}
	if selected := list.Selected(); selected == nil || selected.ID != 2 {
		t.Fatalf("selection after filter = %+v", selected)
	}
}

func TestTicketListHeatDecays(t *testing.T) {
	list := NewTicketList("cta")
	list.FinishLoad(sampleTickets(1), nil)

	start := time.Now()
	list.Ignite(1, tui.HeatPut, start)
	if !list.HasHot(start) {
		t.Fatal("row not hot after ignite")
	}
	if list.HasHot(start.Add(tui.HeatDecayDuration + time.Second)) {
		t.Fatal("heat survived past the decay window")
	}
}
