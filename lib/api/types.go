// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Ticket statuses. The server owns the lifecycle; the client only
// selects among these when an administrator changes a ticket's state.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Ticket priorities, in escalation order.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Statuses lists all ticket statuses in lifecycle order.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusResolved, StatusClosed}
}

// Priorities lists all ticket priorities in escalation order.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ValidStatus reports whether s is a known ticket status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known ticket priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Ticket is a support ticket as returned by the backend. Building and
// Department carry names, and Floor carries the display label
// ("Ground Floor", "3"); the server stores tickets denormalized that
// way. The *_name fields are only present on responses that join in
// registry detail.
type Ticket struct {
	ID             int    `json:"id"`
	Building       string `json:"building"`
	BuildingName   string `json:"building_name,omitempty"`
	Floor          string `json:"floor"`
	FloorLabel     string `json:"floor_label,omitempty"`
	Department     string `json:"department"`
	DepartmentName string `json:"department_name,omitempty"`
	IssueType      string `json:"issue_type"`
	Description    string `json:"description"`
	ContactPerson  string `json:"contact_person,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	AssignedTo     string `json:"assigned_to,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	ResolvedAt     string `json:"resolved_at,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Rating         int    `json:"rating,omitempty"`
	RatingComment  string `json:"rating_comment,omitempty"`

	// Notification is a human-readable confirmation the server attaches
	// to mutation responses (e.g., "Ticket #12 created successfully").
	Notification string `json:"notification,omitempty"`
}

// TicketSummary is the per-status rollup the server attaches to
// ticket listings.
type TicketSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// CreateTicketRequest is the payload for creating a ticket. Building
// and Department are names and Floor is the floor's display label,
// matching how the server stores tickets. Building, Department,
// IssueType, and Description are required; the client validates them
// before issuing the request.
type CreateTicketRequest struct {
	Building      string `json:"building"`
	Floor         string `json:"floor"`
	Department    string `json:"department"`
	IssueType     string `json:"issue_type"`
	Description   string `json:"description"`
	ContactPerson string `json:"contact_person,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// TicketFilter selects a subset of tickets server-side via query
// parameters. Zero-valued fields are omitted from the query.
type TicketFilter struct {
	Status     string
	Building   string
	Department string
	Priority   string
	Search     string
}

// RateTicketRequest is the payload for rating a resolved ticket.
type RateTicketRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Building is a campus building. The server assigns integer row IDs.
type Building struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	FloorsCount int    `json:"floors,omitempty"`
}

// Floor is a single floor of a building. Label is the display form
// ("Ground Floor", "1", "Background Floor").
type Floor struct {
	ID           int    `json:"id"`
	Label        string `json:"label"`
	BuildingID   int    `json:"building_id,omitempty"`
	BuildingName string `json:"building_name,omitempty"`
}

// Department is an organizational unit that tickets are filed
// against. Building is the name of the building it sits in, empty for
// campus-wide departments.
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Building    string `json:"building,omitempty"`
}

// User is an administrative account as listed in the admin dashboard.
type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	DepartmentName string `json:"department_name,omitempty"`
	Active         bool   `json:"active"`
	LastLogin      string `json:"last_login,omitempty"`
}

// LoginRequest is the payload for administrator authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the result of a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser is the administrator record embedded in a login response.
type LoginUser struct {
	ID                 int    `json:"id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}

// ChangePasswordRequest is the payload for the mandatory password
// change flow. The new-password confirmation is checked client-side
// and never sent.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Dashboard is the aggregate summary for the dashboard view.
type Dashboard struct {
	TotalTickets      int            `json:"total_tickets"`
	StatusCounts      map[string]int `json:"status_counts"`
	PriorityCounts    map[string]int `json:"priority_counts"`
	BuildingCounts    map[string]int `json:"building_counts"`
	RecentTickets     []Ticket       `json:"recent_tickets"`
	AvgResolutionTime string         `json:"avg_resolution_time,omitempty"`
}

// AIHealth is the AI assistant health probe result. Status "ok" means
// the assistant is reachable; anything else, or a non-empty Error,
// means it is degraded.
type AIHealth struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ChatRequest is a message to the AI assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// Collection endpoints never return a bare array: each wraps its
// payload in an envelope keyed by the collection name. The envelope
// types below mirror those wire shapes; the client unwraps them and
// hands callers the slices.

type ticketsEnvelope struct {
	Tickets []Ticket      `json:"tickets"`
	Summary TicketSummary `json:"summary"`
}

type buildingsEnvelope struct {
	Buildings []Building `json:"buildings"`
}

type floorsEnvelope struct {
	Floors []Floor `json:"floors"`
}

type departmentsEnvelope struct {
	Departments []Department `json:"departments"`
	Building    string       `json:"building,omitempty"`
}

type usersEnvelope struct {
	Users []User `json:"users"`
}
