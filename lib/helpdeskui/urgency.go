// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// UrgencySelector picks a ticket priority. New forms default to
// medium rather than the lowest level; most walk-up issues are
// neither trivial nor urgent.
type UrgencySelector struct {
	levels []string
	index  int
}

// NewUrgencySelector returns a selector over the API priority levels,
// positioned on medium.
func NewUrgencySelector() UrgencySelector {
	s := UrgencySelector{levels: api.Priorities()}
	s.Reset()
	return s
}

// Reset returns the selector to the medium default.
func (s *UrgencySelector) Reset() {
	s.index = 0
	for i, level := range s.levels {
		if level == api.PriorityMedium {
			s.index = i
			break
		}
	}
}

// Prev moves to the next-lower urgency, stopping at the lowest.
func (s *UrgencySelector) Prev() {
	if s.index > 0 {
		s.index--
	}
}

// Next moves to the next-higher urgency, stopping at the highest.
func (s *UrgencySelector) Next() {
	if s.index < len(s.levels)-1 {
		s.index++
	}
}

// Set jumps the selector to the given level. Unknown levels leave the
// selection unchanged.
func (s *UrgencySelector) Set(level string) {
	for i, candidate := range s.levels {
		if candidate == level {
			s.index = i
			return
		}
	}
}

// Value returns the selected priority level.
func (s *UrgencySelector) Value() string {
	return s.levels[s.index]
}

// Render draws the levels in a row with the selection highlighted in
// its priority color.
func (s *UrgencySelector) Render(theme tui.Theme, focused bool) string {
	parts := make([]string, 0, len(s.levels))
	for i, level := range s.levels {
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == s.index {
			style = style.Foreground(theme.PriorityColor(level)).Bold(true)
			if focused {
				style = style.Background(theme.SelectedBackground)
			}
		} else {
			style = style.Foreground(theme.FaintText)
		}
		parts = append(parts, style.Render(level))
	}
	return strings.Join(parts, " ")
}
