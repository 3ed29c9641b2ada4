// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicSession holds the anonymous identity used by the public portal.
// Created locally on first use (no server round-trip, explicitly not
// real authentication) and stored at the well-known path returned by
// PublicSessionFilePath. The server trusts the identity as presented
// via the X-User-ID header.
type PublicSession struct {
	// UserID is the synthesized anonymous identifier
	// (e.g., "user_1b4e28ba2fa1...").
	UserID string `json:"user_id"`

	// UserName is the generated display name (e.g., "User_1b4e28ba").
	UserName string `json:"user_name"`
}

// AdminUser describes the authenticated administrator as reported by
// the login endpoint.
type AdminUser struct {
	ID                 int    `json:"id"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}

// AdminSession holds the administrator's authentication state: the
// bearer token plus the user record returned by login. Stored at the
// well-known path returned by AdminSessionFilePath and loaded
// automatically by commands that require admin access (admin, ticket
// status, ticket delete).
type AdminSession struct {
	// Token is the bearer token proving the administrator's identity.
	Token string `json:"token"`

	// User is the administrator record from the login response.
	User AdminUser `json:"user"`
}

// NewPublicSession synthesizes a fresh anonymous identity. The ID is
// "user_" plus a random UUID (hyphens stripped); the display name is
// "User_" plus the first eight characters of that random part.
func NewPublicSession() *PublicSession {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return &PublicSession{
		UserID:   "user_" + random,
		UserName: "User_" + random[:8],
	}
}

// PublicSessionFilePath returns the path to the public portal session
// file. Checks the ICT_SESSION_FILE environment variable first, then
// falls back to ~/.config/ictsupport/session.json.
func PublicSessionFilePath() string {
	if envPath := os.Getenv("ICT_SESSION_FILE"); envPath != "" {
		return envPath
	}
	return filepath.Join(configDirectory(), "ictsupport", "session.json")
}

// AdminSessionFilePath returns the path to the admin session file.
// Checks the ICT_ADMIN_SESSION_FILE environment variable first, then
// falls back to ~/.config/ictsupport/admin-session.json.
func AdminSessionFilePath() string {
	if envPath := os.Getenv("ICT_ADMIN_SESSION_FILE"); envPath != "" {
		return envPath
	}
	return filepath.Join(configDirectory(), "ictsupport", "admin-session.json")
}

func configDirectory() string {
	directory := os.Getenv("XDG_CONFIG_HOME")
	if directory != "" {
		return directory
	}
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		// Fallback — this should rarely happen.
		return "/tmp"
	}
	return filepath.Join(homeDirectory, ".config")
}

// LoadPublicSession reads the public session from the well-known path.
// A missing or partially-populated file means "not logged in": callers
// get an error and are expected to synthesize a fresh session.
func LoadPublicSession() (*PublicSession, error) {
	return LoadPublicSessionFrom(PublicSessionFilePath())
}

// LoadPublicSessionFrom reads a public session from a specific file path.
func LoadPublicSessionFrom(path string) (*PublicSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no portal session at %s", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session PublicSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	// Partial state is treated as absent state: both fields or nothing.
	if session.UserID == "" {
		return nil, fmt.Errorf("session file %s has no user_id", path)
	}
	if session.UserName == "" {
		return nil, fmt.Errorf("session file %s has no user_name", path)
	}

	return &session, nil
}

// SavePublicSession writes the public session to the well-known path.
func SavePublicSession(session *PublicSession) error {
	return writeSessionFile(session, PublicSessionFilePath())
}

// LoadAdminSession reads the admin session from the well-known path.
// Returns a clear error directing the user to "ictsupport login" if no
// session exists. A session with a missing token or user record is
// treated the same as a missing file.
func LoadAdminSession() (*AdminSession, error) {
	return LoadAdminSessionFrom(AdminSessionFilePath())
}

// LoadAdminSessionFrom reads an admin session from a specific file path.
func LoadAdminSessionFrom(path string) (*AdminSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no admin session found at %s — run \"ictsupport login\" first", path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var session AdminSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}

	if session.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}
	if session.User.Username == "" {
		return nil, fmt.Errorf("session file %s has no user record", path)
	}

	return &session, nil
}

// SaveAdminSession writes the admin session to the well-known path.
// The file is written with mode 0600 (owner-only read/write) since it
// contains a bearer token.
func SaveAdminSession(session *AdminSession) error {
	return writeSessionFile(session, AdminSessionFilePath())
}

// RemovePublicSession deletes the public session file. A file that is
// already absent is not an error.
func RemovePublicSession() error {
	return removeSessionFile(PublicSessionFilePath())
}

// RemoveAdminSession deletes the admin session file. A file that is
// already absent is not an error.
func RemoveAdminSession() error {
	return removeSessionFile(AdminSessionFilePath())
}

// writeSessionFile marshals a session to indented JSON and writes it
// with mode 0600, creating the parent directory with mode 0700 first.
func writeSessionFile(session any, path string) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}

	return nil
}

func removeSessionFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
