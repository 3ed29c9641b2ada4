// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and visual properties for the
// ictsupport terminal UIs. All colors use lipgloss ANSI 256-color
// codes for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic categories of the helpdesk domain: ticket
// priorities, lifecycle statuses, satisfaction ratings, and the AI
// assistant's health.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Priority colors by wire value.
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color
	PriorityUrgent lipgloss.Color

	// Status colors by wire value.
	StatusPending    lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusResolved   lipgloss.Color
	StatusClosed     lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Animation accents: background tint for recently-changed rows.
	// HotAccentPut is used for created/updated tickets; HotAccentRemove
	// for tickets that left the view.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Rating stars.
	StarFilled lipgloss.Color
	StarEmpty  lipgloss.Color

	// AI assistant health indicator.
	HealthOnline  lipgloss.Color
	HealthOffline lipgloss.Color
	HealthError   lipgloss.Color

	// Toast notices.
	ToastSuccess lipgloss.Color
	ToastError   lipgloss.Color
	ToastWarning lipgloss.Color
	ToastInfo    lipgloss.Color

	// Hover tooltips and modal surfaces.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// PriorityColor returns the color for a priority wire value.
// Unknown values return NormalText.
func (theme Theme) PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case "low":
		return theme.PriorityLow
	case "medium":
		return theme.PriorityMedium
	case "high":
		return theme.PriorityHigh
	case "urgent":
		return theme.PriorityUrgent
	default:
		return theme.NormalText
	}
}

// StatusColor returns the color for a status wire value. Recognizes
// the four lifecycle statuses and returns FaintText for unknown
// values.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "pending":
		return theme.StatusPending
	case "in_progress":
		return theme.StatusInProgress
	case "resolved":
		return theme.StatusResolved
	case "closed":
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	PriorityLow:    lipgloss.Color("245"), // gray
	PriorityMedium: lipgloss.Color("75"),  // blue
	PriorityHigh:   lipgloss.Color("208"), // orange
	PriorityUrgent: lipgloss.Color("196"), // bright red

	StatusPending:    lipgloss.Color("220"), // yellow/amber
	StatusInProgress: lipgloss.Color("75"),  // blue
	StatusResolved:   lipgloss.Color("114"), // green
	StatusClosed:     lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	StarFilled: lipgloss.Color("220"), // amber
	StarEmpty:  lipgloss.Color("240"), // dim gray

	HealthOnline:  lipgloss.Color("114"), // green
	HealthOffline: lipgloss.Color("245"), // gray
	HealthError:   lipgloss.Color("196"), // red

	ToastSuccess: lipgloss.Color("114"),
	ToastError:   lipgloss.Color("196"),
	ToastWarning: lipgloss.Color("220"),
	ToastInfo:    lipgloss.Color("75"),

	TooltipForeground: lipgloss.Color("252"), // same as NormalText
	TooltipBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
