// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

func TestHealthOnlineRequiresOKStatus(t *testing.T) {
	var indicator HealthIndicator

	indicator.Apply(&api.AIHealth{Status: "ok", Model: "gemini"}, nil)
	if indicator.State != HealthOnline {
		t.Fatalf("state = %v, want online", indicator.State)
	}
	if indicator.Model != "gemini" {
		t.Fatalf("model = %q", indicator.Model)
	}

	// A reachable probe that is not "ok" is offline, with the
	// server's explanation carried as detail.
	indicator.Apply(&api.AIHealth{Status: "degraded", Error: "model quota exceeded"}, nil)
	if indicator.State != HealthOffline {
		t.Fatalf("state = %v, want offline", indicator.State)
	}
	if indicator.Detail != "model quota exceeded" {
		t.Fatalf("detail = %q", indicator.Detail)
	}
}

func TestHealthTransportFailure(t *testing.T) {
	var indicator HealthIndicator
	indicator.Apply(nil, errors.New("connection refused"))
	if indicator.State != HealthError {
		t.Fatalf("state = %v, want error", indicator.State)
	}
	if !strings.Contains(indicator.Render(tui.DefaultTheme), "Unreachable") {
		t.Fatal("transport failure badge missing")
	}
}

func TestHealthUnknownBeforeFirstProbe(t *testing.T) {
	var indicator HealthIndicator
	if indicator.State != HealthUnknown {
		t.Fatalf("zero value state = %v", indicator.State)
	}
	if !strings.Contains(indicator.Render(tui.DefaultTheme), "Checking") {
		t.Fatal("pre-probe badge missing")
	}
}
