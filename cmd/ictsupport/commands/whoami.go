// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
)

// WhoAmICommand returns the "whoami" command, which reports both
// saved identities: the anonymous portal session and, when present,
// the admin session.
func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the saved helpdesk identities",
		Usage:   "ictsupport whoami",
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			public, err := cli.LoadPublicSession()
			if err != nil {
				fmt.Println("portal: no session (one is created when the portal first runs)")
			} else {
				fmt.Printf("portal: %s (%s)\n", public.UserName, public.UserID)
			}

			admin, err := cli.LoadAdminSession()
			if err != nil {
				fmt.Println("admin:  not logged in")
				return nil
			}
			fmt.Printf("admin:  %s (%s)\n", admin.User.Username, admin.User.Role)
			if admin.User.MustChangePassword {
				fmt.Println("        password change required at next login")
			}
			return nil
		},
	}
}
