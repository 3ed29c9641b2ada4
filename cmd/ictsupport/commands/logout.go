// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
)

type logoutParams struct {
	All bool `flag:"all" desc:"also discard the anonymous portal session" default:"false"`
}

// LogoutCommand returns the "logout" command. It removes the saved
// admin session; with --all it also discards the anonymous portal
// identity, so the next portal run starts fresh.
func LogoutCommand() *cli.Command {
	var params logoutParams

	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the saved admin session",
		Usage:   "ictsupport logout [flags]",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			if err := cli.RemoveAdminSession(); err != nil {
				return cli.Internal("remove admin session: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Logged out.")

			if params.All {
				if err := cli.RemovePublicSession(); err != nil {
					return cli.Internal("remove portal session: %w", err)
				}
				fmt.Fprintln(os.Stderr, "Portal session discarded.")
			}
			return nil
		},
	}
}
