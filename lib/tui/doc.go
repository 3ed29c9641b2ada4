// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the ictsupport interactive views. Built on bubbletea (Elm
// architecture), these components handle common patterns like dropdown
// overlays, text editing modals, change animation, scrollbars, and
// ANSI-aware overlay splicing.
//
// The portal and admin views in lib/helpdeskui import this package for
// consistent look and behavior: same theme, same keyboard conventions,
// same overlay mechanics. The views own their own data, layout, and
// domain-specific rendering.
package tui
