// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
	"github.com/Deon62/MSP-ictSupport/lib/api"
)

// loginParams holds the parameters for the login command. All flags
// are credential handling and stay out of normal workflows.
type loginParams struct {
	PasswordFile   string `flag:"password-file" desc:"path to file containing the password, or - to prompt interactively (default: prompt)"`
	ChangePassword bool   `flag:"change-password" desc:"change the password after logging in" default:"false"`
}

// LoginCommand returns the "login" command for authenticating an
// administrator. The resulting token is saved to the well-known path;
// subsequent commands ("ictsupport admin", "ictsupport ticket") load
// it transparently.
func LoginCommand() *cli.Command {
	var params loginParams

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate as an administrator",
		Description: `Log in to the helpdesk backend and save the session locally.

After login, "ictsupport admin" and the ticket management commands use
the saved session transparently.

The session file is stored at ~/.config/ictsupport/admin-session.json
(or $ICT_ADMIN_SESSION_FILE if set, or $XDG_CONFIG_HOME/ictsupport/
admin-session.json). The file is written with mode 0600 (owner-only
read/write) since it contains an access token.

Accounts provisioned with a temporary password must change it at first
login; the prompt runs automatically when the server requires it.`,
		Usage: "ictsupport login <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "ictsupport login admin",
			},
			{
				Description: "Log in with password from file",
				Command:     "ictsupport login admin --password-file /path/to/password",
			},
			{
				Description: "Log in and change the password",
				Command:     "ictsupport login admin --change-password",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("username is required\n\nUsage: ictsupport login <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := readLoginPassword(params.PasswordFile)
			if err != nil {
				return err
			}

			config, err := cli.LoadConfig()
			if err != nil {
				return cli.Internal("load config: %w", err)
			}
			client, err := api.NewClient(api.Config{
				BaseURL: config.APIBaseURL,
				Logger:  logger,
			})
			if err != nil {
				return cli.Internal("create api client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			response, err := client.Login(ctx, username, password)
			if err != nil {
				if api.IsUnauthorized(err) {
					return cli.Forbidden("invalid username or password")
				}
				return cli.Internal("login failed: %w", err)
			}

			session := &cli.AdminSession{
				Token: response.Token,
				User: cli.AdminUser{
					ID:                 response.User.ID,
					Username:           response.User.Username,
					Role:               response.User.Role,
					MustChangePassword: response.User.MustChangePassword,
				},
			}

			// The password-change flow runs when the server demands it
			// (first login on a provisioned account) or when the user
			// asked for it with --change-password.
			if response.User.MustChangePassword || params.ChangePassword {
				if response.User.MustChangePassword {
					fmt.Fprintln(os.Stderr, "Your password must be changed before continuing.")
				}
				authed, err := api.NewClient(api.Config{
					BaseURL: config.APIBaseURL,
					Logger:  logger,
					Token:   response.Token,
				})
				if err != nil {
					return cli.Internal("create api client: %w", err)
				}
				if err := changePassword(ctx, authed, password); err != nil {
					return err
				}
				session.User.MustChangePassword = false
				fmt.Fprintln(os.Stderr, "Password changed.")
			}

			if err := cli.SaveAdminSession(session); err != nil {
				return cli.Internal("save session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", session.User.Username, session.User.Role)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", cli.AdminSessionFilePath())
			return nil
		},
	}
}

// changePassword runs the password change: prompt twice, reject a
// mismatch locally, and send only the confirmed password.
func changePassword(ctx context.Context, client *api.Client, current string) error {
	newPassword, err := promptPassword("New password: ")
	if err != nil {
		return err
	}
	confirmation, err := promptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if err := validateNewPassword(newPassword, confirmation); err != nil {
		return err
	}

	if err := client.ChangePassword(ctx, current, newPassword); err != nil {
		return cli.Internal("change password: %w", err)
	}
	return nil
}

// validateNewPassword enforces the local checks that must never reach
// the network: the confirmation has to match and the password must be
// non-empty.
func validateNewPassword(newPassword, confirmation string) error {
	if newPassword != confirmation {
		return cli.Validation("passwords do not match")
	}
	if newPassword == "" {
		return cli.Validation("password must not be empty")
	}
	return nil
}

// readLoginPassword reads a password for the login command. If
// passwordFile is empty or "-", prompts interactively; otherwise
// reads from the file path.
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", cli.Internal("reading %s: %w", passwordFile, err)
		}
		// Strip trailing newlines — files often end with one.
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return "", cli.Validation("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return string(data), nil
	}
	return promptPassword("Password: ")
}

// promptPassword reads a password from the terminal with echo
// disabled.
func promptPassword(prompt string) (string, error) {
	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", cli.Validation("no terminal available for interactive password prompt (use --password-file)")
	}
	fmt.Fprint(os.Stderr, prompt)
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", cli.Internal("reading password: %w", err)
	}
	return string(passwordBytes), nil
}
