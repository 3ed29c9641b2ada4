// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/Deon62/MSP-ictSupport/cmd/ictsupport/cli"
	"github.com/Deon62/MSP-ictSupport/lib/api"
)

// publicClient builds an API client for the anonymous portal session.
// A session is created and saved on first use, so the server sees a
// stable X-User-ID across invocations.
func publicClient(logger *slog.Logger) (*api.Client, *cli.PublicSession, error) {
	config, err := cli.LoadConfig()
	if err != nil {
		return nil, nil, cli.Internal("load config: %w", err)
	}

	session, err := cli.LoadPublicSession()
	if err != nil {
		session = cli.NewPublicSession()
		if err := cli.SavePublicSession(session); err != nil {
			return nil, nil, cli.Internal("save session: %w", err)
		}
		logger.Info("created anonymous session", "user_id", session.UserID)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: config.APIBaseURL,
		Logger:  logger,
		UserID:  session.UserID,
	})
	if err != nil {
		return nil, nil, cli.Internal("create api client: %w", err)
	}
	return client, session, nil
}

// adminClient builds an API client authenticated with the saved
// admin session token.
func adminClient(logger *slog.Logger) (*api.Client, *cli.AdminSession, error) {
	config, err := cli.LoadConfig()
	if err != nil {
		return nil, nil, cli.Internal("load config: %w", err)
	}

	session, err := cli.LoadAdminSession()
	if err != nil {
		return nil, nil, cli.Forbidden("%v", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL: config.APIBaseURL,
		Logger:  logger,
		Token:   session.Token,
	})
	if err != nil {
		return nil, nil, cli.Internal("create api client: %w", err)
	}
	return client, session, nil
}
