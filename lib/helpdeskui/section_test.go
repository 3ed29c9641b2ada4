// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import "testing"

func TestResolveSectionPassesValidTargets(t *testing.T) {
	for _, section := range portalSections {
		if got := resolveSection(section, portalSections, SectionHome); got != section {
			t.Errorf("resolveSection(%v) = %v", section, got)
		}
	}
}

func TestResolveSectionFallsBack(t *testing.T) {
	// Admin sections are not part of the portal surface; requests for
	// them land on the portal's home screen.
	got := resolveSection(SectionAdminUsers, portalSections, SectionHome)
	if got != SectionHome {
		t.Fatalf("out-of-surface request resolved to %v, want home", got)
	}

	got = resolveSection(Section(99), adminSections, SectionAdminTickets)
	if got != SectionAdminTickets {
		t.Fatalf("unknown request resolved to %v, want admin tickets", got)
	}
}

func TestSectionNamesAreUnique(t *testing.T) {
	seen := make(map[string]Section)
	all := append(append([]Section{}, portalSections...), adminSections...)
	for _, section := range all {
		name := section.String()
		if name == "unknown" {
			t.Errorf("section %d has no name", section)
		}
		if other, dup := seen[name]; dup {
			t.Errorf("sections %v and %v share the name %q", other, section, name)
		}
		seen[name] = section
	}
}
