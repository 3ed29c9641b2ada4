// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Deon62/MSP-ictSupport/lib/netutil"
)

// AIChatTimeout is the client-imposed deadline on AI chat requests.
// The assistant can take several seconds to respond; past this point
// the request is abandoned and the caller shows a timeout fallback.
// No other endpoint carries a client-imposed deadline.
const AIChatTimeout = 15 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the base URL of the ticketing backend, up to and
	// including the /api prefix (e.g., "http://localhost:5000/api").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
	// Token is the admin bearer token, sent as "Authorization: Bearer"
	// on every request when non-empty.
	Token string
	// UserID is the anonymous portal identity, sent as "X-User-ID" on
	// every request when non-empty.
	UserID string
}

// Client is a typed JSON client for the ticketing backend. It carries
// whichever identity the caller has (admin token, anonymous user ID,
// or neither) and applies it to every request. Requests are never
// retried; failures surface as *APIError, *NetworkError, or
// *TimeoutError for the caller to classify.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
	userID     string
}

// NewClient creates a client for the ticketing backend.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	// Validate the URL structure. We store the string form (with
	// trailing slash stripped) and build request URLs by direct
	// concatenation.
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		token:      config.Token,
		userID:     config.UserID,
	}, nil
}

// Login authenticates an administrator. The returned token is not
// installed on the client; callers persist it and construct a fresh
// client with Config.Token set.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/login", LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var response LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: parsing login response: %w", err)
	}
	if response.Token == "" {
		return nil, fmt.Errorf("api: login response has no token")
	}
	return &response, nil
}

// ChangePassword changes the authenticated administrator's password.
// Used by the mandatory first-login flow; requires an admin token.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	_, err := c.do(ctx, http.MethodPost, "/change-password", ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     updated,
	}, nil)
	return err
}

// CreateTicket files a new ticket. Required fields are validated
// locally; a validation failure returns before any request is issued.
func (c *Client) CreateTicket(ctx context.Context, request CreateTicketRequest) (*Ticket, error) {
	if err := validateCreateTicket(request); err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/tickets", request, nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := json.Unmarshal(body, &ticket); err != nil {
		return nil, fmt.Errorf("api: parsing create ticket response: %w", err)
	}
	return &ticket, nil
}

// validateCreateTicket enforces the required-field rules shared by the
// TUI form and the scripting surface: building, department, issue
// type, and description must all be present.
func validateCreateTicket(request CreateTicketRequest) error {
	var missing []string
	if strings.TrimSpace(request.Building) == "" {
		missing = append(missing, "building")
	}
	if strings.TrimSpace(request.Department) == "" {
		missing = append(missing, "department")
	}
	if strings.TrimSpace(request.IssueType) == "" {
		missing = append(missing, "issue_type")
	}
	if strings.TrimSpace(request.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if request.Priority != "" && !ValidPriority(request.Priority) {
		return &ValidationError{Fields: []string{"priority"}}
	}
	return nil
}

// Tickets lists the caller's tickets, optionally narrowed server-side
// by the filter.
func (c *Client) Tickets(ctx context.Context, filter TicketFilter) ([]Ticket, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Building != "" {
		query.Set("building", filter.Building)
	}
	if filter.Department != "" {
		query.Set("department", filter.Department)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var envelope ticketsEnvelope
	if err := c.getJSON(ctx, "/tickets", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tickets, nil
}

// Ticket fetches a single ticket by ID.
func (c *Client) Ticket(ctx context.Context, id int) (*Ticket, error) {
	var ticket Ticket
	if err := c.getJSON(ctx, "/tickets/"+strconv.Itoa(id), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// AdminTickets lists all tickets across users. Requires an admin token.
func (c *Client) AdminTickets(ctx context.Context, filter TicketFilter) ([]Ticket, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Building != "" {
		query.Set("building", filter.Building)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var envelope ticketsEnvelope
	if err := c.getJSON(ctx, "/admin/tickets", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tickets, nil
}

// UpdateTicketStatus moves a ticket to a new status. Requires an admin
// token; the route lives under /admin, the public status route only
// accepts PUT from the ticket owner. The status must be one of the
// four lifecycle states; anything else fails locally.
func (c *Client) UpdateTicketStatus(ctx context.Context, id int, status string) (*Ticket, error) {
	if !ValidStatus(status) {
		return nil, &ValidationError{Fields: []string{"status"}}
	}

	body, err := c.do(ctx, http.MethodPatch, "/admin/tickets/"+strconv.Itoa(id)+"/status",
		map[string]string{"status": status}, nil)
	if err != nil {
		return nil, err
	}

	// The updated ticket comes back wrapped alongside the confirmation
	// message.
	var response struct {
		Message string `json:"message"`
		Ticket  Ticket `json:"ticket"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: parsing status response: %w", err)
	}
	if response.Ticket.Notification == "" {
		response.Ticket.Notification = response.Message
	}
	return &response.Ticket, nil
}

// AssignTicket assigns a ticket to a named technician. Requires an
// admin token.
func (c *Client) AssignTicket(ctx context.Context, id int, assignee string) (*Ticket, error) {
	if strings.TrimSpace(assignee) == "" {
		return nil, &ValidationError{Fields: []string{"assigned_to"}}
	}

	body, err := c.do(ctx, http.MethodPut, "/tickets/"+strconv.Itoa(id)+"/assign",
		map[string]string{"assigned_to": assignee}, nil)
	if err != nil {
		return nil, err
	}

	var ticket Ticket
	if err := json.Unmarshal(body, &ticket); err != nil {
		return nil, fmt.Errorf("api: parsing assign response: %w", err)
	}
	return &ticket, nil
}

// DeleteTicket removes a ticket. Requires an admin token. Confirmation
// is the caller's responsibility.
func (c *Client) DeleteTicket(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/tickets/"+strconv.Itoa(id), nil, nil)
	return err
}

// RateTicket submits a 1-5 satisfaction rating for a resolved ticket.
// The rating bound is enforced locally; whether the ticket is in a
// ratable state is the server's call.
func (c *Client) RateTicket(ctx context.Context, id int, request RateTicketRequest) error {
	if request.Rating < 1 || request.Rating > 5 {
		return &ValidationError{Fields: []string{"rating"}}
	}
	_, err := c.do(ctx, http.MethodPost, "/tickets/"+strconv.Itoa(id)+"/rate", request, nil)
	return err
}

// Buildings lists the campus buildings.
func (c *Client) Buildings(ctx context.Context) ([]Building, error) {
	var envelope buildingsEnvelope
	if err := c.getJSON(ctx, "/buildings", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Buildings, nil
}

// AdminBuildings lists buildings with administrative detail. Requires
// an admin token.
func (c *Client) AdminBuildings(ctx context.Context) ([]Building, error) {
	var envelope buildingsEnvelope
	if err := c.getJSON(ctx, "/admin/buildings", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Buildings, nil
}

// Floors lists the floors of a building by its row ID, in the
// server's order. Use SortFloors for display order.
func (c *Client) Floors(ctx context.Context, buildingID int) ([]Floor, error) {
	if buildingID <= 0 {
		return nil, &ValidationError{Fields: []string{"building"}}
	}
	var envelope floorsEnvelope
	if err := c.getJSON(ctx, "/floors/"+strconv.Itoa(buildingID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Floors, nil
}

// Departments lists all departments.
func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	var envelope departmentsEnvelope
	if err := c.getJSON(ctx, "/departments", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Departments, nil
}

// DepartmentsByBuilding lists the departments housed in one building,
// addressed by building name. The result is independent of the global
// Departments list; callers cache the two separately.
func (c *Client) DepartmentsByBuilding(ctx context.Context, building string) ([]Department, error) {
	if building == "" {
		return nil, &ValidationError{Fields: []string{"building"}}
	}
	var envelope departmentsEnvelope
	if err := c.getJSON(ctx, "/departments/"+url.PathEscape(building), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Departments, nil
}

// AdminDepartments lists departments with administrative detail.
// Requires an admin token.
func (c *Client) AdminDepartments(ctx context.Context) ([]Department, error) {
	var envelope departmentsEnvelope
	if err := c.getJSON(ctx, "/admin/departments", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Departments, nil
}

// AdminUsers lists administrative accounts. Requires an admin token.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var envelope usersEnvelope
	if err := c.getJSON(ctx, "/admin/users", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// Dashboard fetches the aggregate summary for the dashboard view.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.getJSON(ctx, "/dashboard", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// AIHealth probes the AI assistant. A transport failure is returned as
// an error; a degraded assistant is a successful probe with a non-"ok"
// status.
func (c *Client) AIHealth(ctx context.Context) (*AIHealth, error) {
	var health AIHealth
	if err := c.getJSON(ctx, "/health/ai", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// AIChat sends a message to the AI assistant and waits for the reply,
// up to AIChatTimeout. The deadline applies here and nowhere else:
// chat is the one endpoint where the server legitimately takes long
// enough that the client must bound the wait.
func (c *Client) AIChat(ctx context.Context, message string) (*ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Fields: []string{"message"}}
	}

	ctx, cancel := context.WithTimeout(ctx, AIChatTimeout)
	defer cancel()

	body, err := c.do(ctx, http.MethodPost, "/ai/chat", ChatRequest{Message: message}, nil)
	if err != nil {
		return nil, err
	}

	var response ChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("api: parsing chat response: %w", err)
	}
	return &response, nil
}

// getJSON issues a GET and decodes the response body into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("api: parsing response from %s: %w", path, err)
	}
	return nil
}

// do performs one HTTP request against the backend and returns the
// response body. Non-2xx responses come back as *APIError; transport
// failures as *NetworkError or *TimeoutError depending on whether the
// context deadline expired. Content-Type is always application/json;
// identity headers are applied from the client's configuration.
func (c *Client) do(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader *bytes.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userID != "" {
		request.Header.Set("X-User-ID", c.userID)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Err: err}
		}
		return nil, &NetworkError{Err: err}
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	c.logger.Warn("request failed",
		"method", method,
		"path", path,
		"status", response.StatusCode)

	return responseBody, parseAPIError(response.StatusCode, responseBody)
}

// parseAPIError builds an *APIError from a non-2xx response body. The
// backend uses both {"error": ...} and {"message": ...} shapes; a body
// that is neither still produces an APIError with the bare status.
func parseAPIError(status int, body []byte) *APIError {
	var shape struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &shape); err == nil {
		message = shape.Error
		if message == "" {
			message = shape.Message
		}
	}
	return &APIError{StatusCode: status, Message: message}
}
