// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// TicketList is the scrolling ticket browser shared by the portal and
// the admin console. It owns the loaded tickets, the client-side
// filter, cursor and scroll state, and the heat tracker that fades
// recently mutated rows.
type TicketList struct {
	data   collection[api.Ticket]
	Filter FilterModel

	cursor int
	scroll int

	heat *tui.HeatTracker

	// EmptyCTA is the call-to-action line shown when the list is
	// loaded but empty.
	EmptyCTA string
}

// NewTicketList returns an empty list.
func NewTicketList(emptyCTA string) TicketList {
	return TicketList{
		heat:     tui.NewHeatTracker(),
		EmptyCTA: emptyCTA,
	}
}

// BeginLoad marks a reload in progress without discarding what is on
// screen.
func (l *TicketList) BeginLoad() {
	l.data.beginLoad()
}

// FinishLoad records a load result. On error the previous tickets
// stay visible.
func (l *TicketList) FinishLoad(tickets []api.Ticket, err error) {
	l.data.finishLoad(tickets, err)
	l.clampCursor()
}

// Loading reports whether a reload is in flight.
func (l *TicketList) Loading() bool {
	return l.data.loading
}

// LoadErr returns the last load error, nil after a successful load.
func (l *TicketList) LoadErr() error {
	return l.data.loadErr
}

// Ignite marks a ticket row as recently mutated so it renders hot and
// fades over the next few seconds.
func (l *TicketList) Ignite(ticketID int, kind tui.HeatKind, now time.Time) {
	l.heat.Ignite(strconv.Itoa(ticketID), kind, now)
}

// HasHot reports whether any row still has visible heat; the owner
// keeps a tick loop running while it does.
func (l *TicketList) HasHot(now time.Time) bool {
	return l.heat.HasHot(now)
}

// Visible returns the tickets after applying the filter.
func (l *TicketList) Visible() []api.Ticket {
	return l.Filter.Apply(l.data.items)
}

func (l *TicketList) clampCursor() {
	visible := len(l.Visible())
	if visible == 0 {
		l.cursor = 0
		l.scroll = 0
		return
	}
	if l.cursor >= visible {
		l.cursor = visible - 1
	}
	if l.scroll > l.cursor {
		l.scroll = l.cursor
	}
}

// Selected returns the ticket under the cursor, or nil when the
// filtered list is empty.
func (l *TicketList) Selected() *api.Ticket {
	visible := l.Visible()
	if len(visible) == 0 || l.cursor >= len(visible) {
		return nil
	}
	return &visible[l.cursor]
}

// CursorUp moves the cursor up one row.
func (l *TicketList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	if l.cursor < l.scroll {
		l.scroll = l.cursor
	}
}

// CursorDown moves the cursor down one row. height is the number of
// visible rows, used to keep the cursor on screen.
func (l *TicketList) CursorDown(height int) {
	if l.cursor < len(l.Visible())-1 {
		l.cursor++
	}
	if l.cursor >= l.scroll+height {
		l.scroll = l.cursor - height + 1
	}
}

// PageUp moves up one screenful.
func (l *TicketList) PageUp(height int) {
	l.cursor -= height
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor < l.scroll {
		l.scroll = l.cursor
	}
}

// PageDown moves down one screenful.
func (l *TicketList) PageDown(height int) {
	visible := len(l.Visible())
	l.cursor += height
	if l.cursor >= visible {
		l.cursor = visible - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= l.scroll+height {
		l.scroll = l.cursor - height + 1
	}
}

// Home jumps to the first row.
func (l *TicketList) Home() {
	l.cursor = 0
	l.scroll = 0
}

// End jumps to the last row.
func (l *TicketList) End(height int) {
	visible := len(l.Visible())
	if visible == 0 {
		return
	}
	l.cursor = visible - 1
	if l.cursor >= l.scroll+height {
		l.scroll = l.cursor - height + 1
	}
}

// Render draws the list with a scrollbar. The load error, when set,
// renders above whatever stale rows are still cached.
func (l *TicketList) Render(theme tui.Theme, width, height int, focused bool, now time.Time) string {
	var b strings.Builder

	if l.data.loadErr != nil {
		errorStyle := lipgloss.NewStyle().Foreground(theme.ToastError).Bold(true)
		b.WriteString(errorStyle.Render("Failed to load tickets. Showing last known data."))
		b.WriteString("\n")
		height--
	}
	if l.data.loading {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("Loading..."))
		b.WriteString("\n")
		height--
	}

	visible := l.Visible()
	if len(visible) == 0 {
		if l.data.loaded && l.data.loadErr == nil && !l.data.loading {
			empty := lipgloss.NewStyle().Foreground(theme.FaintText)
			cta := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
			if l.Filter.Input != "" {
				b.WriteString(empty.Render("No tickets match the filter."))
			} else {
				b.WriteString(empty.Render("No tickets yet."))
				b.WriteString("\n")
				b.WriteString(cta.Render(l.EmptyCTA))
			}
		}
		return b.String()
	}

	if height < 1 {
		height = 1
	}
	end := l.scroll + height
	if end > len(visible) {
		end = len(visible)
	}

	scrollbar := tui.RenderScrollbar(theme, height, len(visible), height, l.scroll, focused)
	scrollbarLines := strings.Split(scrollbar, "\n")

	for row, index := 0, l.scroll; index < end; index, row = index+1, row+1 {
		ticket := visible[index]
		line := renderTicketLine(ticket, theme, width-4)

		marker := "  "
		if focused && index == l.cursor {
			marker = lipgloss.NewStyle().Foreground(theme.SelectedForeground).Render("> ")
		}

		// Recently mutated rows carry a heat highlight that decays.
		if l.heat.Heat(strconv.Itoa(ticket.ID), now) > 0 {
			heatColor := theme.HotAccentPut
			if l.heat.Kind(strconv.Itoa(ticket.ID)) == tui.HeatRemove {
				heatColor = theme.HotAccentRemove
			}
			marker = lipgloss.NewStyle().Foreground(heatColor).Render("▎ ")
		}

		b.WriteString(marker)
		b.WriteString(line)
		if row < len(scrollbarLines) {
			b.WriteString(" ")
			b.WriteString(scrollbarLines[row])
		}
		b.WriteString("\n")
	}

	position := fmt.Sprintf("%d/%d", l.cursor+1, len(visible))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render(position))
	return b.String()
}
