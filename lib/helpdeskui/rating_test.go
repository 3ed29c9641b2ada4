// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"testing"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

func TestRatingHoverDoesNotCommit(t *testing.T) {
	modal := NewRatingModal(7, tui.DefaultTheme)

	modal.HoverRight()
	modal.HoverRight()
	modal.HoverRight()
	if modal.Hover != 3 {
		t.Fatalf("hover = %d, want 3", modal.Hover)
	}
	if modal.Selected != 0 {
		t.Fatalf("hover committed a rating: %d", modal.Selected)
	}
	if modal.CanSubmit() {
		t.Fatal("submit allowed with only a preview")
	}

	modal.Commit()
	if modal.Selected != 3 {
		t.Fatalf("selected = %d, want 3", modal.Selected)
	}
	if !modal.CanSubmit() {
		t.Fatal("submit blocked after commit")
	}
}

func TestRatingHoverBounds(t *testing.T) {
	modal := NewRatingModal(7, tui.DefaultTheme)

	// First movement lands on one star from the empty state.
	modal.HoverLeft()
	if modal.Hover != 1 {
		t.Fatalf("hover from empty = %d, want 1", modal.Hover)
	}
	modal.HoverLeft()
	if modal.Hover != 1 {
		t.Fatalf("hover below 1: %d", modal.Hover)
	}

	for step := 0; step < 10; step++ {
		modal.HoverRight()
	}
	if modal.Hover != 5 {
		t.Fatalf("hover above 5: %d", modal.Hover)
	}
}

func TestRatingLabels(t *testing.T) {
	modal := NewRatingModal(7, tui.DefaultTheme)
	want := []string{"Poor", "Fair", "Good", "Very Good", "Excellent"}
	for rating := 1; rating <= 5; rating++ {
		modal.Hover = rating
		if got := modal.Label(); got != want[rating-1] {
			t.Fatalf("label for %d stars = %q, want %q", rating, got, want[rating-1])
		}
	}
}

func TestRatingCommentIsOptional(t *testing.T) {
	modal := NewRatingModal(7, tui.DefaultTheme)
	modal.HoverRight()
	modal.Commit()
	if !modal.CanSubmit() {
		t.Fatal("empty comment blocked submission")
	}
	if modal.Comment() != "" {
		t.Fatalf("unexpected comment %q", modal.Comment())
	}
}
