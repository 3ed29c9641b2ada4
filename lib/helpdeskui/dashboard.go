// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// renderDashboard draws the aggregate summary: totals, counts by
// status and priority, busiest buildings, and the most recent
// tickets. Pure rendering; the caller handles loading and errors.
func renderDashboard(dashboard *api.Dashboard, theme tui.Theme, width int) string {
	header := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.FaintText)
	value := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)

	var b strings.Builder

	b.WriteString(value.Render(fmt.Sprintf("%d", dashboard.TotalTickets)))
	b.WriteString(label.Render(" total tickets"))
	if dashboard.AvgResolutionTime != "" {
		b.WriteString(label.Render("   avg resolution "))
		b.WriteString(value.Render(dashboard.AvgResolutionTime))
	}
	b.WriteString("\n\n")

	b.WriteString(header.Render("By status"))
	b.WriteString("\n")
	for _, status := range api.Statuses() {
		count := dashboard.StatusCounts[status]
		statusStyle := lipgloss.NewStyle().Foreground(theme.StatusColor(status))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			statusStyle.Render(fmt.Sprintf("%-12s", status)),
			value.Render(fmt.Sprintf("%d", count))))
	}
	b.WriteString("\n")

	b.WriteString(header.Render("By priority"))
	b.WriteString("\n")
	for _, priority := range api.Priorities() {
		count := dashboard.PriorityCounts[priority]
		priorityStyle := lipgloss.NewStyle().Foreground(theme.PriorityColor(priority))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			priorityStyle.Render(fmt.Sprintf("%-12s", priority)),
			value.Render(fmt.Sprintf("%d", count))))
	}
	b.WriteString("\n")

	if len(dashboard.BuildingCounts) > 0 {
		b.WriteString(header.Render("By building"))
		b.WriteString("\n")
		// Maps iterate in random order; sort building names so the
		// dashboard is stable between reloads.
		names := make([]string, 0, len(dashboard.BuildingCounts))
		for name := range dashboard.BuildingCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				label.Render(fmt.Sprintf("%-20s", name)),
				value.Render(fmt.Sprintf("%d", dashboard.BuildingCounts[name]))))
		}
		b.WriteString("\n")
	}

	if len(dashboard.RecentTickets) > 0 {
		b.WriteString(header.Render("Recent tickets"))
		b.WriteString("\n")
		for _, ticket := range dashboard.RecentTickets {
			b.WriteString("  ")
			b.WriteString(renderTicketLine(ticket, theme, width-2))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderTicketLine draws one ticket as a single list row: ID, status,
// priority, location, and a description excerpt.
func renderTicketLine(ticket api.Ticket, theme tui.Theme, width int) string {
	idStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	statusStyle := lipgloss.NewStyle().Foreground(theme.StatusColor(ticket.Status))
	priorityStyle := lipgloss.NewStyle().Foreground(theme.PriorityColor(ticket.Priority))
	textStyle := lipgloss.NewStyle().Foreground(theme.NormalText)

	location := ticket.BuildingName
	if location == "" {
		location = ticket.Building
	}

	prefix := fmt.Sprintf("#%-4d ", ticket.ID)
	meta := fmt.Sprintf("%-12s %-7s %-16s ", ticket.Status, ticket.Priority, location)
	remaining := width - len(prefix) - len(meta)
	if remaining < 10 {
		remaining = 10
	}
	excerpt := ""
	if lines := tui.ExtractExcerpt(ticket.Description, remaining, 1); len(lines) > 0 {
		excerpt = lines[0]
	}

	return idStyle.Render(prefix) +
		statusStyle.Render(fmt.Sprintf("%-12s ", ticket.Status)) +
		priorityStyle.Render(fmt.Sprintf("%-7s ", ticket.Priority)) +
		textStyle.Render(fmt.Sprintf("%-16s ", location)) +
		textStyle.Render(excerpt)
}
