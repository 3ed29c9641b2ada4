// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

// Section identifies one screen of the portal or admin console. The
// portal and admin console each use their own subset; the zero value
// of the respective subset is that surface's landing screen.
type Section int

const (
	// Portal sections.
	SectionHome Section = iota
	SectionDashboard
	SectionTickets
	SectionCreateTicket
	SectionChat
	SectionEmergency

	// Admin sections.
	SectionAdminTickets
	SectionAdminCreateTicket
	SectionAdminDepartments
	SectionAdminBuildings
	SectionAdminUsers
	SectionAdminSettings
)

// String returns the section's display name, used in navigation bars
// and log records.
func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionDashboard:
		return "dashboard"
	case SectionTickets:
		return "tickets"
	case SectionCreateTicket:
		return "create-ticket"
	case SectionChat:
		return "chat"
	case SectionEmergency:
		return "emergency"
	case SectionAdminTickets:
		return "admin-tickets"
	case SectionAdminCreateTicket:
		return "admin-create-ticket"
	case SectionAdminDepartments:
		return "admin-departments"
	case SectionAdminBuildings:
		return "admin-buildings"
	case SectionAdminUsers:
		return "admin-users"
	case SectionAdminSettings:
		return "admin-settings"
	default:
		return "unknown"
	}
}

// Title returns the human-facing heading for the section.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "ICT Support Portal"
	case SectionDashboard:
		return "Dashboard"
	case SectionTickets:
		return "My Tickets"
	case SectionCreateTicket:
		return "Create New Ticket"
	case SectionChat:
		return "AI Assistant"
	case SectionEmergency:
		return "Emergency Contacts"
	case SectionAdminTickets:
		return "Ticket Management"
	case SectionAdminCreateTicket:
		return "Create Ticket"
	case SectionAdminDepartments:
		return "Departments"
	case SectionAdminBuildings:
		return "Buildings"
	case SectionAdminUsers:
		return "Users"
	case SectionAdminSettings:
		return "Settings"
	default:
		return "ICT Support"
	}
}

// portalSections is the portal navigation order.
var portalSections = []Section{
	SectionHome,
	SectionDashboard,
	SectionTickets,
	SectionCreateTicket,
	SectionChat,
	SectionEmergency,
}

// adminSections is the admin console navigation order.
var adminSections = []Section{
	SectionAdminTickets,
	SectionAdminCreateTicket,
	SectionAdminDepartments,
	SectionAdminBuildings,
	SectionAdminUsers,
	SectionAdminSettings,
}

// validSection reports whether target is a member of allowed.
func validSection(target Section, allowed []Section) bool {
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// resolveSection maps a requested section to one the surface can show.
// Unknown or out-of-surface requests resolve to the surface's fallback
// screen rather than failing; callers log the substitution. Navigation
// always refreshes the target section's data, even when navigating to
// the section already on screen, so resolveSection is called on every
// switch, not just on changes.
func resolveSection(target Section, allowed []Section, fallback Section) Section {
	if validSection(target, allowed) {
		return target
	}
	return fallback
}
