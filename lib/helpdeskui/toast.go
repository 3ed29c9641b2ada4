// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// Toast display durations. The portal lingers longer than the admin
// console, where operators fire mutations in quick succession.
const (
	ToastPortalDuration = 5 * time.Second
	ToastAdminDuration  = 3 * time.Second
)

// ToastKind selects the toast's color.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastWarning
	ToastInfo
)

// toastFadeMsg expires a toast. The generation guard makes stale fade
// timers harmless: showing a new toast bumps the generation, so the
// old toast's timer no longer matches and is ignored.
type toastFadeMsg struct {
	generation int
}

// Toast is a single-slot transient notification. Showing a new toast
// replaces any toast currently visible; there is no queue.
type Toast struct {
	text       string
	kind       ToastKind
	visible    bool
	generation int
	duration   time.Duration
}

// NewToast creates a toast slot with the given display duration.
func NewToast(duration time.Duration) Toast {
	return Toast{duration: duration}
}

// Show displays text in the toast slot, replacing any current toast,
// and returns the fade timer command for the new toast.
func (t *Toast) Show(text string, kind ToastKind) tea.Cmd {
	t.text = text
	t.kind = kind
	t.visible = true
	t.generation++
	generation := t.generation
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastFadeMsg{generation: generation}
	})
}

// Update handles fade messages. Fades from superseded toasts are
// ignored.
func (t *Toast) Update(msg tea.Msg) {
	fade, ok := msg.(toastFadeMsg)
	if !ok {
		return
	}
	if fade.generation == t.generation {
		t.visible = false
	}
}

// Visible reports whether a toast is currently on screen.
func (t *Toast) Visible() bool {
	return t.visible
}

// Render returns the styled toast line, or "" when no toast is
// visible.
func (t *Toast) Render(theme tui.Theme) string {
	if !t.visible {
		return ""
	}
	var color lipgloss.Color
	switch t.kind {
	case ToastSuccess:
		color = theme.ToastSuccess
	case ToastError:
		color = theme.ToastError
	case ToastWarning:
		color = theme.ToastWarning
	default:
		color = theme.ToastInfo
	}
	style := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Padding(0, 1)
	return style.Render(t.text)
}
