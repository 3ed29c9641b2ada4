// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the ictsupport
// unified CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct whose tagged
// fields become pflag flags, and a Run function. Commands are assembled
// into a tree in cmd/ictsupport/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing, and
// structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// The package also owns the two session files used by subcommands:
//
//   - [PublicSession] / [LoadPublicSession] / [SavePublicSession]: the
//     anonymous portal identity, synthesized locally on first use and
//     sent to the server via the X-User-ID header. Lives at
//     ~/.config/ictsupport/session.json.
//
//   - [AdminSession] / [LoadAdminSession] / [SaveAdminSession]: the
//     administrator's bearer token and user record from "ictsupport
//     login". Lives at ~/.config/ictsupport/admin-session.json.
//
// Both files are written with mode 0600; a partially-populated file is
// treated the same as a missing one.
package cli
