// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"sort"
	"strconv"
)

// Floor labels with fixed positions in the display order.
const (
	GroundFloorLabel     = "Ground Floor"
	BackgroundFloorLabel = "Background Floor"
)

// SortFloors orders floors for display: "Ground Floor" first,
// "Background Floor" last, and everything between ascending
// numerically when both labels parse as integers, lexicographically
// otherwise. The sort is stable, so equal labels keep their server
// order.
func SortFloors(floors []Floor) {
	sort.SliceStable(floors, func(i, j int) bool {
		return floorLess(floors[i].Label, floors[j].Label)
	})
}

func floorLess(a, b string) bool {
	if a == b {
		return false
	}
	switch {
	case a == GroundFloorLabel:
		return true
	case b == GroundFloorLabel:
		return false
	case a == BackgroundFloorLabel:
		return false
	case b == BackgroundFloorLabel:
		return true
	}

	numberA, errA := strconv.Atoi(a)
	numberB, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return numberA < numberB
	}
	return a < b
}
