// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete ictsupport CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
	"github.com/Deon62/MSP-ictSupport/lib/version"
)

// Root builds and returns the complete ictsupport command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "ictsupport",
		Description: `Campus ICT helpdesk client.

Browse and file support tickets from the terminal, talk to the AI
assistant, and (for administrators) manage the ticket queue. The
public portal needs no login; "ictsupport portal" creates an
anonymous session on first use.`,
		Subcommands: []*cli.Command{
			PortalCommand(),
			AdminCommand(),
			LoginCommand(),
			LogoutCommand(),
			WhoAmICommand(),
			TicketCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("ictsupport %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
