// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// HealthState is the AI assistant's reachability as shown in the chat
// header.
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthOnline
	HealthOffline
	HealthError
)

// HealthIndicator tracks the assistant health probe. Online requires
// the probe to report status "ok"; a reachable-but-degraded assistant
// shows Offline with the server's detail, and a transport failure
// shows Error.
type HealthIndicator struct {
	State  HealthState
	Detail string
	Model  string
}

// Apply records a probe result.
func (h *HealthIndicator) Apply(health *api.AIHealth, err error) {
	if err != nil {
		h.State = HealthError
		h.Detail = err.Error()
		h.Model = ""
		return
	}
	if health.Status == "ok" {
		h.State = HealthOnline
		h.Detail = ""
		h.Model = health.Model
		return
	}
	h.State = HealthOffline
	h.Detail = health.Error
	h.Model = ""
}

// Render returns the status badge for the chat header.
func (h *HealthIndicator) Render(theme tui.Theme) string {
	switch h.State {
	case HealthOnline:
		badge := lipgloss.NewStyle().Foreground(theme.HealthOnline).Render("● Online")
		if h.Model != "" {
			badge += lipgloss.NewStyle().Foreground(theme.FaintText).Render(" (" + h.Model + ")")
		}
		return badge
	case HealthOffline:
		badge := lipgloss.NewStyle().Foreground(theme.HealthOffline).Render("● Offline")
		if h.Detail != "" {
			badge += lipgloss.NewStyle().Foreground(theme.FaintText).Render(" — " + h.Detail)
		}
		return badge
	case HealthError:
		return lipgloss.NewStyle().Foreground(theme.HealthError).Render("● Unreachable")
	default:
		return lipgloss.NewStyle().Foreground(theme.FaintText).Render("● Checking...")
	}
}
