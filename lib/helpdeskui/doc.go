// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

// Package helpdeskui implements the interactive terminal interface for
// the ICT support helpdesk: the public portal (browse and file tickets,
// talk to the AI assistant, emergency contacts) and the admin console
// (ticket management, departments, buildings, users).
//
// The package is built on bubbletea. Two top-level models exist —
// [PortalModel] for the anonymous portal and [AdminModel] for the
// authenticated console — and both are composed from the same
// section router, collection store, and widget set.
//
// All network access goes through the [Service] interface, backed by
// lib/api in production and by fakes in tests. Mutations run as
// background tea commands and report back via result messages, so the
// UI never blocks on the network.
package helpdeskui
