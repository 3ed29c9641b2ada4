// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import "testing"

func TestBuildingCardsSelectFlipsAndKeepsSelection(t *testing.T) {
	cards := NewBuildingCards(nil)
	cards.CursorRight()

	cmd := cards.Select()
	if cmd == nil {
		t.Fatal("select returned no flip timer")
	}
	if cards.SelectedID != "science-wing" {
		t.Fatalf("selected %q, want science-wing", cards.SelectedID)
	}
	if cards.flippedID != "science-wing" {
		t.Fatalf("flipped %q, want science-wing", cards.flippedID)
	}

	// The flip reverts after the animation; the selection survives.
	cards.Update(cardFlipRevertMsg{id: "science-wing"})
	if cards.flippedID != "" {
		t.Fatalf("flip not reverted: %q", cards.flippedID)
	}
	if cards.SelectedID != "science-wing" {
		t.Fatalf("selection lost on revert: %q", cards.SelectedID)
	}
}

func TestBuildingCardsStaleRevertIgnored(t *testing.T) {
	cards := NewBuildingCards(nil)
	cards.Select()
	cards.CursorRight()
	cards.Select()

	// The first card's revert timer fires after a second selection;
	// it must not unflip the newly selected card.
	cards.Update(cardFlipRevertMsg{id: "main-building"})
	if cards.flippedID != "science-wing" {
		t.Fatalf("stale revert cleared active flip: %q", cards.flippedID)
	}
}

func TestBuildingCardsDefaultSet(t *testing.T) {
	cards := DefaultBuildingCards()
	if len(cards) != 4 {
		t.Fatalf("default set has %d cards, want 4", len(cards))
	}
	if cards[0].ID != "main-building" || cards[0].Abbr != "MB" {
		t.Fatalf("first card = %+v", cards[0])
	}
}

func TestBuildingCardsSetCardsDropsStaleSelection(t *testing.T) {
	cards := NewBuildingCards(nil)
	cards.Select()
	cards.SetCards([]BuildingCard{{ID: "annex", Name: "Annex", Abbr: "AX"}})
	if cards.SelectedID != "" {
		t.Fatalf("selection survived card replacement: %q", cards.SelectedID)
	}
	if cards.Cursor != 0 {
		t.Fatalf("cursor not clamped: %d", cards.Cursor)
	}
}
