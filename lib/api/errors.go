// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a structured error response from the backend:
// the request reached the server and the server said no. Callers can
// use errors.As to extract the status code:
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.StatusCode == http.StatusNotFound { ... }
//	}
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
	// Message is the human-readable error description from the server.
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (%d)", e.Message, e.StatusCode)
}

// ValidationError represents input rejected locally, before any
// request was issued: missing required ticket fields, an out-of-range
// rating, an unknown status. The server never sees these.
type ValidationError struct {
	// Fields names the offending fields.
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("api: invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS failure, reset).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError represents a request abandoned because its deadline
// expired. Only the AI chat endpoint carries a client-imposed
// deadline; everything else waits as long as the caller's context
// allows.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("api: request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a client-side request timeout.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsNetwork reports whether err is a transport-level failure (the
// request never reached the server).
func IsNetwork(err error) bool {
	var networkErr *NetworkError
	return errors.As(err, &networkErr)
}

// IsRateLimited reports whether err is an HTTP 429 from the server.
func IsRateLimited(err error) bool {
	return IsStatus(err, http.StatusTooManyRequests)
}

// IsNotFound reports whether err is an HTTP 404 from the server.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an HTTP 401 from the server,
// typically a missing or expired admin token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsStatus checks whether err is an *APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
