// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
)

func TestValidateNewPassword(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		confirmation string
		wantErr      bool
	}{
		{"matching", "s3cret", "s3cret", false},
		{"mismatch", "s3cret", "s3cre", true},
		{"both empty", "", "", true},
		{"confirmation empty", "s3cret", "", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validateNewPassword(test.password, test.confirmation)
			if (err != nil) != test.wantErr {
				t.Fatalf("validateNewPassword(%q, %q) = %v, wantErr %v",
					test.password, test.confirmation, err, test.wantErr)
			}
			if err != nil {
				var toolErr *cli.ToolError
				if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
					t.Fatalf("error %v should be a validation error", err)
				}
			}
		})
	}
}

func TestReadLoginPasswordFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("hunter2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	password, err := readLoginPassword(path)
	if err != nil {
		t.Fatalf("readLoginPassword: %v", err)
	}
	if password != "hunter2" {
		t.Fatalf("password = %q, want %q (trailing newline stripped)", password, "hunter2")
	}
}

func TestReadLoginPasswordRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := readLoginPassword(path); err == nil {
		t.Fatal("empty password file should be rejected")
	}
}
