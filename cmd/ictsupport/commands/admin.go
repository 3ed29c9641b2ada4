// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
	"github.com/Deon62/MSP-ictSupport/lib/helpdeskui"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

type adminParams struct {
	LogFile string `flag:"log-file" desc:"append structured logs to this file (default: discard)"`
}

// AdminCommand returns the "admin" command: the administrator console
// TUI. Requires a saved admin session ("ictsupport login").
func AdminCommand() *cli.Command {
	var params adminParams

	return &cli.Command{
		Name:    "admin",
		Summary: "Open the administrator console",
		Description: `Open the interactive administrator console.

Work the ticket queue (status, assignment, deletion), file tickets on
behalf of walk-ups, and browse the department, building, and user
registries. Requires "ictsupport login" first.`,
		Usage:  "ictsupport admin [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) (err error) {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			logger, closer, err := cli.NewTUILogger(params.LogFile)
			if err != nil {
				return cli.Internal("open log file: %w", err)
			}
			defer closer.Close()

			// bubbletea restores the terminal and re-panics; catch it
			// here so the user sees a sentence instead of a stack trace.
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("admin console panicked", "panic", recovered)
					err = cli.Internal("unexpected error, please restart (details in the log file)")
				}
			}()

			client, session, err := adminClient(logger)
			if err != nil {
				return err
			}
			if session.User.MustChangePassword {
				return cli.Forbidden("password change required: run \"ictsupport login %s\" again", session.User.Username)
			}

			model := helpdeskui.NewAdminModel(ctx, helpdeskui.AdminConfig{
				Service:  client,
				Username: session.User.Username,
				Role:     session.User.Role,
				Theme:    tui.DefaultTheme,
				Keys:     helpdeskui.DefaultKeyMap,
				Logger:   logger,
			})

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return cli.Internal("admin console: %w", err)
			}
			return nil
		},
	}
}
