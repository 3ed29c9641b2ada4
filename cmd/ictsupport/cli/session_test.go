// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPublicSessionRoundTrip(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()
	path := filepath.Join(directory, "session.json")

	original := NewPublicSession()

	if err := writeSessionFile(original, path); err != nil {
		t.Fatalf("writeSessionFile: %v", err)
	}

	loaded, err := LoadPublicSessionFrom(path)
	if err != nil {
		t.Fatalf("LoadPublicSessionFrom: %v", err)
	}

	if loaded.UserID != original.UserID {
		t.Errorf("UserID = %q, want %q", loaded.UserID, original.UserID)
	}
	if loaded.UserName != original.UserName {
		t.Errorf("UserName = %q, want %q", loaded.UserName, original.UserName)
	}
}

func TestNewPublicSessionShape(t *testing.T) {
	t.Parallel()

	session := NewPublicSession()

	if !strings.HasPrefix(session.UserID, "user_") {
		t.Errorf("UserID = %q, want user_ prefix", session.UserID)
	}
	if !strings.HasPrefix(session.UserName, "User_") {
		t.Errorf("UserName = %q, want User_ prefix", session.UserName)
	}

	// The display name carries the first eight characters of the random
	// part of the ID.
	random := strings.TrimPrefix(session.UserID, "user_")
	if len(random) < 8 {
		t.Fatalf("random part %q too short", random)
	}
	if want := "User_" + random[:8]; session.UserName != want {
		t.Errorf("UserName = %q, want %q", session.UserName, want)
	}

	// Two sessions must not collide.
	other := NewPublicSession()
	if other.UserID == session.UserID {
		t.Errorf("two sessions share UserID %q", session.UserID)
	}
}

func TestAdminSessionRoundTrip(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()
	path := filepath.Join(directory, "admin-session.json")

	original := &AdminSession{
		Token: "tok_test_12345",
		User: AdminUser{
			ID:                 7,
			Username:           "admin",
			Role:               "admin",
			MustChangePassword: true,
		},
	}

	if err := writeSessionFile(original, path); err != nil {
		t.Fatalf("writeSessionFile: %v", err)
	}

	loaded, err := LoadAdminSessionFrom(path)
	if err != nil {
		t.Fatalf("LoadAdminSessionFrom: %v", err)
	}

	if loaded.Token != original.Token {
		t.Errorf("Token = %q, want %q", loaded.Token, original.Token)
	}
	if loaded.User != original.User {
		t.Errorf("User = %+v, want %+v", loaded.User, original.User)
	}
}

func TestSessionFilePermissions(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()
	path := filepath.Join(directory, "subdir", "admin-session.json")

	session := &AdminSession{
		Token: "secret-token",
		User:  AdminUser{ID: 1, Username: "admin", Role: "admin"},
	}

	if err := writeSessionFile(session, path); err != nil {
		t.Fatalf("writeSessionFile: %v", err)
	}

	// Verify the session file has mode 0600.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}

	// Verify the parent directory has mode 0700.
	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Stat directory: %v", err)
	}
	if mode := dirInfo.Mode().Perm(); mode != 0700 {
		t.Errorf("directory mode = %o, want 0700", mode)
	}
}

func TestLoadPartialSessionFails(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()

	// Partial public session: id without name.
	publicPath := filepath.Join(directory, "session.json")
	data, _ := json.Marshal(map[string]string{"user_id": "user_abc"})
	if err := os.WriteFile(publicPath, data, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadPublicSessionFrom(publicPath); err == nil {
		t.Error("LoadPublicSessionFrom accepted a session without user_name")
	}

	// Partial admin session: token without user record.
	adminPath := filepath.Join(directory, "admin-session.json")
	data, _ = json.Marshal(map[string]string{"token": "tok"})
	if err := os.WriteFile(adminPath, data, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadAdminSessionFrom(adminPath); err == nil {
		t.Error("LoadAdminSessionFrom accepted a session without a user")
	}
}

func TestLoadMissingSession(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.json")

	if _, err := LoadAdminSessionFrom(path); err == nil {
		t.Error("LoadAdminSessionFrom succeeded on a missing file")
	} else if !strings.Contains(err.Error(), "ictsupport login") {
		t.Errorf("missing-session error %q does not mention ictsupport login", err)
	}
}

func TestRemoveSessionIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := removeSessionFile(path); err != nil {
		t.Errorf("removeSessionFile on absent file: %v", err)
	}
}
