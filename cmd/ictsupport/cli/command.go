// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the CLI tree: either a group dispatching to
// Subcommands or a leaf with a Run function.
type Command struct {
	// Name is what the user types, e.g. "ticket" or "login".
	Name string

	// Summary is the one-liner shown in the parent's command listing.
	Summary string

	// Description is the long help text; falls back to Summary.
	Description string

	// Usage overrides the synthesized usage line when set.
	Usage string

	// Examples are appended to the help output.
	Examples []Example

	// Params returns a pointer to the parameter struct whose tagged
	// fields become flags (see BindFlags). Ignored when Flags is set.
	Params func() any

	// Flags builds the flag set directly, for commands whose flags
	// cannot be expressed as struct tags.
	Flags func() *pflag.FlagSet

	// Subcommands dispatch on the first positional argument.
	Subcommands []*Command

	// Run executes a leaf command with post-flag-parsing args and a
	// logger scoped to the command path.
	Run func(ctx context.Context, args []string, logger *slog.Logger) error

	// parent links back up the tree; set during dispatch so help and
	// errors can print the full command path.
	parent *Command
}

// Example is one worked invocation shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and either descends into a subcommand or runs
// this command. It is the entry point for the whole tree.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return c.dispatch(ctx, args)
	}
	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(os.Stderr)
		if len(args) > 0 {
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
		return fmt.Errorf("subcommand required")
	}

	args, err := c.parseFlags(args)
	if err != nil {
		return err
	}

	if c.Run == nil {
		c.PrintHelp(os.Stderr)
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	logger := NewCommandLogger().With("command", c.fullName())
	return c.Run(ctx, args, logger)
}

// dispatch routes args[0] to the matching subcommand, with a typo
// suggestion when nothing matches.
func (c *Command) dispatch(ctx context.Context, args []string) error {
	name := args[0]
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(ctx, args[1:])
		}
	}

	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
			name, suggestion, c.fullName())
	}
	return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.",
		name, c.fullName())
}

// parseFlags runs the command's flag set over args and returns the
// remaining positional arguments. Parse errors get our own formatting
// (with flag suggestions) instead of pflag's usage dump.
func (c *Command) parseFlags(args []string) ([]string, error) {
	flagSet := c.flagSet()
	if flagSet == nil {
		return args, nil
	}
	flagSet.SetOutput(io.Discard)

	err := flagSet.Parse(args)
	if err == nil {
		return flagSet.Args(), nil
	}

	if strings.Contains(err.Error(), "unknown flag") {
		// A fresh flag set: the failed parse may have consumed state.
		if suggestion := suggestFlag(args, c.flagSet()); suggestion != "" {
			return nil, fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
				err, suggestion, c.fullName())
		}
	}
	return nil, fmt.Errorf("%s\n\nRun '%s --help' for usage.", err, c.fullName())
}

func (c *Command) flagSet() *pflag.FlagSet {
	switch {
	case c.Flags != nil:
		return c.Flags()
	case c.Params != nil:
		return FlagsFromParams(c.Name, c.Params())
	default:
		return nil
	}
}

// PrintHelp writes the command's help text: description, usage,
// subcommand table, flags, and examples.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if flagSet := c.flagSet(); flagSet != nil {
		var flagHelp strings.Builder
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName is the space-joined path from the root, e.g.
// "ictsupport ticket list".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
