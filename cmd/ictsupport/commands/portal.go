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

type portalParams struct {
	LogFile string `flag:"log-file" desc:"append structured logs to this file (default: discard)"`
}

// PortalCommand returns the "portal" command: the public helpdesk
// TUI. No login is needed; an anonymous session is created on first
// use so the server can associate tickets with the same visitor.
func PortalCommand() *cli.Command {
	var params portalParams

	return &cli.Command{
		Name:    "portal",
		Summary: "Open the public helpdesk portal",
		Description: `Open the interactive helpdesk portal.

Browse the dashboard, view and file tickets, talk to the AI assistant,
and look up emergency contacts. Navigation uses the number keys; q
quits.`,
		Usage:  "ictsupport portal [flags]",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) (err error) {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			// The TUI owns the terminal; logs go to a file (or nowhere),
			// never to stderr.
			logger, closer, err := cli.NewTUILogger(params.LogFile)
			if err != nil {
				return cli.Internal("open log file: %w", err)
			}
			defer closer.Close()

			// bubbletea restores the terminal and re-panics; catch it
			// here so the user sees a sentence instead of a stack trace.
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("portal panicked", "panic", recovered)
					err = cli.Internal("unexpected error, please restart (details in the log file)")
				}
			}()

			client, session, err := publicClient(logger)
			if err != nil {
				return err
			}

			model := helpdeskui.NewPortalModel(ctx, helpdeskui.PortalConfig{
				Service:  client,
				UserName: session.UserName,
				Theme:    tui.DefaultTheme,
				Keys:     helpdeskui.DefaultKeyMap,
				Logger:   logger,
			})

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return cli.Internal("portal: %w", err)
			}
			return nil
		},
	}
}
