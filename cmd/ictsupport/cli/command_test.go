// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestExecute_DispatchesSubcommand(t *testing.T) {
	var ran bool
	root := &Command{
		Name: "ictsupport",
		Subcommands: []*Command{
			{
				Name: "ticket",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							ran = true
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"ticket", "list"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Error("nested subcommand did not run")
	}
}

func TestExecute_UnknownSubcommandSuggests(t *testing.T) {
	root := &Command{
		Name: "ictsupport",
		Subcommands: []*Command{
			{Name: "ticket", Run: noopRun},
			{Name: "portal", Run: noopRun},
		},
	}

	err := root.Execute(context.Background(), []string{"tickte"})
	if err == nil {
		t.Fatal("Execute should fail on an unknown subcommand")
	}
	if !strings.Contains(err.Error(), `"ticket"`) {
		t.Errorf("error %q should suggest the close match %q", err, "ticket")
	}
}

func TestExecute_PassesRemainingArgsAfterFlags(t *testing.T) {
	type params struct {
		Yes bool `flag:"yes" desc:"skip confirmation"`
	}
	var p params
	var got []string

	command := &Command{
		Name:   "delete",
		Params: func() any { return &p },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			got = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--yes", "42"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !p.Yes {
		t.Error("--yes flag was not bound")
	}
	if len(got) != 1 || got[0] != "42" {
		t.Errorf("positional args = %v, want [42]", got)
	}
}

func TestExecute_UnknownFlagSuggests(t *testing.T) {
	type params struct {
		Building string `flag:"building" desc:"building id"`
	}
	var p params
	command := &Command{
		Name:   "create",
		Params: func() any { return &p },
		Run:    noopRun,
	}

	err := command.Execute(context.Background(), []string{"--bulding", "library"})
	if err == nil {
		t.Fatal("Execute should fail on an unknown flag")
	}
	if !strings.Contains(err.Error(), "--building") {
		t.Errorf("error %q should suggest --building", err)
	}
}

func TestExecute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "ictsupport",
		Subcommands: []*Command{{Name: "ticket", Run: noopRun}},
	}

	err := root.Execute(context.Background(), nil)
	if err == nil {
		t.Fatal("Execute with no args and no Run should fail")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want mention of subcommand required", err)
	}
}

func TestPrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "ictsupport",
		Summary: "Campus IT support client",
		Subcommands: []*Command{
			{Name: "portal", Summary: "Open the self-service portal"},
			{Name: "ticket", Summary: "Manage tickets from the command line"},
		},
		Examples: []Example{
			{Description: "Open the portal", Command: "ictsupport portal"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)
	help := out.String()

	for _, want := range []string{"portal", "Manage tickets", "ictsupport portal", "Commands:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestFullName_WalksParentChain(t *testing.T) {
	leaf := &Command{Name: "list", Run: noopRun}
	mid := &Command{Name: "ticket", Subcommands: []*Command{leaf}}
	root := &Command{Name: "ictsupport", Subcommands: []*Command{mid}}

	// Dispatch sets parent pointers.
	if err := root.Execute(context.Background(), []string{"ticket", "list"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := leaf.fullName(); got != "ictsupport ticket list" {
		t.Errorf("fullName() = %q, want %q", got, "ictsupport ticket list")
	}
}

func noopRun(ctx context.Context, args []string, logger *slog.Logger) error {
	return nil
}
