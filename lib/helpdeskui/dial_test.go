// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"math"
	"testing"
)

func TestFloorDialWrapsBothDirections(t *testing.T) {
	dial := NewFloorDial()
	if dial.Current != 1 {
		t.Fatalf("new dial starts at %d, want 1", dial.Current)
	}

	dial.RotateLeft()
	if dial.Current != DialTotalFloors {
		t.Fatalf("left from 1 = %d, want %d", dial.Current, DialTotalFloors)
	}

	dial.RotateRight()
	if dial.Current != 1 {
		t.Fatalf("right from %d = %d, want 1", DialTotalFloors, dial.Current)
	}
}

func TestFloorDialFullRotationReturnsHome(t *testing.T) {
	dial := NewFloorDial()
	for step := 0; step < DialTotalFloors; step++ {
		dial.RotateRight()
	}
	if dial.Current != 1 {
		t.Fatalf("full rotation ends at %d, want 1", dial.Current)
	}
}

func TestFloorDialLabelsDrivePositions(t *testing.T) {
	dial := NewFloorDial()
	dial.Current = 5
	dial.SetLabels([]string{"Ground Floor", "1", "2", "3"})

	if dial.Total() != 4 {
		t.Fatalf("total = %d, want 4", dial.Total())
	}
	if dial.Current != 1 || dial.Label() != "Ground Floor" {
		t.Fatalf("after SetLabels at %d %q, want 1 %q", dial.Current, dial.Label(), "Ground Floor")
	}

	dial.RotateLeft()
	if dial.Label() != "3" {
		t.Fatalf("left from first label = %q, want wrap to last", dial.Label())
	}
	dial.RotateRight()
	dial.RotateRight()
	if dial.Label() != "1" {
		t.Fatalf("label = %q, want %q", dial.Label(), "1")
	}

	dial.Current = 3
	want := -2 * (360.0 / 4)
	if angle := dial.Angle(); math.Abs(angle-want) > 1e-9 {
		t.Fatalf("labeled angle = %v, want %v", angle, want)
	}
}

func TestFloorDialDefaultLabelsAreNumbers(t *testing.T) {
	dial := NewFloorDial()
	dial.Current = 4
	if dial.Label() != "4" {
		t.Fatalf("default label = %q, want %q", dial.Label(), "4")
	}
}

func TestFloorDialAngle(t *testing.T) {
	dial := NewFloorDial()
	if angle := dial.Angle(); angle != 0 {
		t.Fatalf("floor 1 angle = %v, want 0", angle)
	}

	dial.Current = 4
	want := -3 * (360.0 / DialTotalFloors)
	if angle := dial.Angle(); math.Abs(angle-want) > 1e-9 {
		t.Fatalf("floor 4 angle = %v, want %v", angle, want)
	}

	dial.Current = DialTotalFloors
	want = -float64(DialTotalFloors-1) * (360.0 / DialTotalFloors)
	if angle := dial.Angle(); math.Abs(angle-want) > 1e-9 {
		t.Fatalf("top floor angle = %v, want %v", angle, want)
	}
}
