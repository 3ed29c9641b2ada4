// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "portal"},
		{Name: "admin"},
		{Name: "ticket"},
		{Name: "login"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"tickte", "ticket"},
		{"protal", "portal"},
		{"lgin", "login"},
		{"completely-unrelated", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("building", "", "")
	flagSet.String("priority", "", "")
	flagSet.BoolP("yes", "y", false, "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--bulding", "library"}, "--building"},
		{[]string{"--priorty=high"}, "--priority"},
		{[]string{"--building", "library"}, ""},
		{[]string{"positional"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ticket", "", 6},
		{"ticket", "ticket", 0},
		{"ticket", "tickte", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := editDistance(test.a, test.b); got != test.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
