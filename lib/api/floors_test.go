// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "testing"

func labels(floors []Floor) []string {
	out := make([]string, len(floors))
	for i, floor := range floors {
		out[i] = floor.Label
	}
	return out
}

func TestSortFloorsSpecialLabels(t *testing.T) {
	t.Parallel()

	floors := []Floor{
		{Label: "3"},
		{Label: BackgroundFloorLabel},
		{Label: "1"},
		{Label: GroundFloorLabel},
		{Label: "2"},
	}

	SortFloors(floors)

	want := []string{GroundFloorLabel, "1", "2", "3", BackgroundFloorLabel}
	got := labels(floors)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortFloorsNumericBeforeLexicographic(t *testing.T) {
	t.Parallel()

	// "10" must sort after "2" numerically, not before it as a string.
	floors := []Floor{{Label: "10"}, {Label: "2"}}
	SortFloors(floors)
	if floors[0].Label != "2" {
		t.Errorf("order = %v, want numeric ascending", labels(floors))
	}

	// Non-numeric labels fall back to lexicographic order.
	floors = []Floor{{Label: "Mezzanine"}, {Label: "Basement"}}
	SortFloors(floors)
	if floors[0].Label != "Basement" {
		t.Errorf("order = %v, want lexicographic", labels(floors))
	}

	// Mixed numeric and non-numeric compare as strings.
	floors = []Floor{{Label: "Mezzanine"}, {Label: "2"}}
	SortFloors(floors)
	if floors[0].Label != "2" {
		t.Errorf("order = %v, want %q first", labels(floors), "2")
	}
}

func TestSortFloorsStable(t *testing.T) {
	t.Parallel()

	floors := []Floor{
		{ID: 1, Label: "2"},
		{ID: 2, Label: "2"},
		{ID: 3, Label: GroundFloorLabel},
	}

	SortFloors(floors)

	if floors[0].Label != GroundFloorLabel {
		t.Fatalf("order = %v, want ground floor first", labels(floors))
	}
	if floors[1].ID != 1 || floors[2].ID != 2 {
		t.Errorf("equal labels reordered: IDs %d, %d", floors[1].ID, floors[2].ID)
	}
}

func TestSortFloorsEmpty(t *testing.T) {
	t.Parallel()

	SortFloors(nil)
	SortFloors([]Floor{})
}
