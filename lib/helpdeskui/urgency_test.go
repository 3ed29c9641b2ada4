// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"testing"

	"github.com/Deon62/MSP-ictSupport/lib/api"
)

func TestUrgencyDefaultsToMedium(t *testing.T) {
	selector := NewUrgencySelector()
	if selector.Value() != api.PriorityMedium {
		t.Fatalf("default urgency = %q, want %q", selector.Value(), api.PriorityMedium)
	}
}

func TestUrgencyBounds(t *testing.T) {
	selector := NewUrgencySelector()
	for step := 0; step < 10; step++ {
		selector.Next()
	}
	if selector.Value() != api.PriorityUrgent {
		t.Fatalf("top urgency = %q, want %q", selector.Value(), api.PriorityUrgent)
	}
	for step := 0; step < 10; step++ {
		selector.Prev()
	}
	if selector.Value() != api.PriorityLow {
		t.Fatalf("bottom urgency = %q, want %q", selector.Value(), api.PriorityLow)
	}
}

func TestUrgencyResetAndSet(t *testing.T) {
	selector := NewUrgencySelector()
	selector.Next()
	selector.Reset()
	if selector.Value() != api.PriorityMedium {
		t.Fatalf("reset urgency = %q, want %q", selector.Value(), api.PriorityMedium)
	}

	selector.Set(api.PriorityUrgent)
	if selector.Value() != api.PriorityUrgent {
		t.Fatalf("set urgency = %q, want %q", selector.Value(), api.PriorityUrgent)
	}

	// Unknown levels leave the selection untouched.
	selector.Set("catastrophic")
	if selector.Value() != api.PriorityUrgent {
		t.Fatalf("unknown level changed selection to %q", selector.Value())
	}
}
