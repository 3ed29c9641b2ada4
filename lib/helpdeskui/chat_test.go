// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Deon62/MSP-ictSupport/lib/api"
)

func TestChatSendAppendsThinkingPlaceholder(t *testing.T) {
	var panel ChatPanel
	if !panel.Send("my printer is on fire") {
		t.Fatal("send rejected on idle panel")
	}
	if len(panel.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(panel.Entries))
	}
	if panel.Entries[0].Sender != SenderUser {
		t.Fatal("first entry is not the user message")
	}
	placeholder := panel.Entries[1]
	if !placeholder.Thinking || placeholder.Sender != SenderAssistant {
		t.Fatalf("placeholder = %+v", placeholder)
	}
	if !panel.Waiting() {
		t.Fatal("panel not waiting after send")
	}

	// A second send while waiting is refused.
	if panel.Send("hello?") {
		t.Fatal("send accepted while a reply was pending")
	}
}

func TestChatResolveReplacesPlaceholder(t *testing.T) {
	var panel ChatPanel
	panel.Send("wifi is down in the library")
	panel.Resolve("Try forgetting the network and rejoining.", nil)

	if panel.Waiting() {
		t.Fatal("panel still waiting after resolve")
	}
	last := panel.Entries[len(panel.Entries)-1]
	if last.Thinking {
		t.Fatal("placeholder survived resolve")
	}
	if last.Text != "Try forgetting the network and rejoining." {
		t.Fatalf("reply text = %q", last.Text)
	}
}

func TestChatFallbackSelection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", &api.TimeoutError{}, ChatFallbackTimeout},
		{"rate limited", &api.APIError{StatusCode: http.StatusTooManyRequests}, ChatFallbackBusy},
		{"server error", &api.APIError{StatusCode: http.StatusInternalServerError}, ChatFallbackGeneric},
		{"network", &api.NetworkError{Err: errors.New("refused")}, ChatFallbackGeneric},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FallbackMessage(test.err); got != test.want {
				t.Fatalf("fallback = %q, want %q", got, test.want)
			}
		})
	}
}

func TestChatResolveWithErrorShowsFallback(t *testing.T) {
	var panel ChatPanel
	panel.Send("help")
	panel.Resolve("", &api.TimeoutError{})

	last := panel.Entries[len(panel.Entries)-1]
	if last.Text != ChatFallbackTimeout {
		t.Fatalf("fallback text = %q, want %q", last.Text, ChatFallbackTimeout)
	}
	if panel.Waiting() {
		t.Fatal("panel still waiting after failed reply")
	}
}
