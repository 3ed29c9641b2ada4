// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row stays highlighted after a change.
// Intensity falls linearly from 1.0 to 0.0 over this window.
const HeatDecayDuration = 5 * time.Second

// HeatTickInterval is how often the view re-renders while anything is
// still hot. 100ms keeps the fade smooth without burning CPU.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind selects the highlight color for a change.
type HeatKind int

const (
	// HeatPut marks a created or updated row.
	HeatPut HeatKind = iota
	// HeatRemove marks a deleted row.
	HeatRemove
)

// HeatTracker remembers which rows recently changed so a list can flash
// them. Igniting a row starts (or restarts) its fade; callers poll Heat
// each frame for the current intensity.
type HeatTracker struct {
	entries map[string]heatEntry
}

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

func NewHeatTracker() *HeatTracker {
	return &HeatTracker{entries: make(map[string]heatEntry)}
}

// Ignite starts the fade for a row. Re-igniting a hot row resets its
// timer to full intensity.
func (tracker *HeatTracker) Ignite(itemID string, kind HeatKind, now time.Time) {
	tracker.entries[itemID] = heatEntry{ignition: now, kind: kind}
}

// Heat reports the row's current intensity in [0, 1]. Rows that were
// never ignited, or whose fade has finished, read as 0.
func (tracker *HeatTracker) Heat(itemID string, now time.Time) float64 {
	entry, exists := tracker.entries[itemID]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind reports how the row changed. Only meaningful while Heat is
// above zero.
func (tracker *HeatTracker) Kind(itemID string) HeatKind {
	return tracker.entries[itemID].kind
}

// HasHot reports whether any row is still fading, which is the signal
// to schedule another animation tick. Fully decayed entries are dropped
// as a side effect so the map does not grow with ticket churn.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for itemID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, itemID)
	}
	return hot
}
