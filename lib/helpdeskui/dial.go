// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// DialTotalFloors is the number of dial positions before a building's
// floor list loads.
const DialTotalFloors = 10

// FloorDial is the rotary floor selector on the ticket form. Until a
// building is selected it offers numbered positions 1..10; once the
// building's floors load, the dial carries their labels ("Ground
// Floor", "3", "Background Floor") in display order. Rotation wraps
// at both ends.
type FloorDial struct {
	Current int      // 1-based position, 1..Total().
	Labels  []string // Floor labels in display order; empty before a building loads.
}

// NewFloorDial returns a dial pointing at the first position.
func NewFloorDial() FloorDial {
	return FloorDial{Current: 1}
}

// Total returns the number of positions on the dial.
func (d *FloorDial) Total() int {
	if len(d.Labels) > 0 {
		return len(d.Labels)
	}
	return DialTotalFloors
}

// Label returns the display label of the current position.
func (d *FloorDial) Label() string {
	if len(d.Labels) > 0 {
		return d.Labels[d.Current-1]
	}
	return strconv.Itoa(d.Current)
}

// SetLabels replaces the dial positions with the given floor labels
// and returns to the first position. An empty list restores the
// numbered default.
func (d *FloorDial) SetLabels(labels []string) {
	d.Labels = labels
	d.Current = 1
}

// RotateLeft steps to the previous position, wrapping from the first
// to the last.
func (d *FloorDial) RotateLeft() {
	d.Current--
	if d.Current < 1 {
		d.Current = d.Total()
	}
}

// RotateRight steps to the next position, wrapping from the last back
// to the first.
func (d *FloorDial) RotateRight() {
	d.Current++
	if d.Current > d.Total() {
		d.Current = 1
	}
}

// Reset returns the dial to the first position.
func (d *FloorDial) Reset() {
	d.Current = 1
}

// Angle returns the pointer rotation in degrees for the current
// position. The first position sits at zero; each step rotates the
// pointer one notch clockwise, expressed as a negative angle.
func (d *FloorDial) Angle() float64 {
	return -float64(d.Current-1) * (360.0 / float64(d.Total()))
}

// dialPointers holds the eight compass glyphs the pointer angle
// quantizes onto.
var dialPointers = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

func (d *FloorDial) pointer() string {
	total := d.Total()
	if total <= 0 {
		return "•"
	}
	notch := (d.Current - 1) * len(dialPointers) / total
	return dialPointers[notch%len(dialPointers)]
}

// Render draws the dial: positions around the pointer, with the
// current one highlighted.
func (d *FloorDial) Render(theme tui.Theme, focused bool) string {
	var b strings.Builder

	numberStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	currentStyle := lipgloss.NewStyle().Foreground(theme.SelectedForeground).Bold(true)
	if focused {
		currentStyle = currentStyle.Background(theme.SelectedBackground)
	}

	total := d.Total()
	for position := 1; position <= total; position++ {
		label := fmt.Sprintf("%2d", position)
		if position == d.Current {
			b.WriteString(currentStyle.Render(label))
		} else {
			b.WriteString(numberStyle.Render(label))
		}
		if position < total {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.NormalText).Render(
		fmt.Sprintf("  %s Floor %s", d.pointer(), d.Label())))
	return b.String()
}
