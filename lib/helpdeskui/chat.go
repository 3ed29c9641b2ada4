// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Deon62/MSP-ictSupport/lib/api"
	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// Fallback texts shown in place of an assistant reply when the request
// fails. Timeout and overload get specific wording so the user knows
// retrying may help; everything else gets the generic apology.
const (
	ChatFallbackTimeout = "The assistant took too long to respond. Please try again."
	ChatFallbackBusy    = "The assistant is handling too many requests right now. Please wait a moment and try again."
	ChatFallbackGeneric = "Sorry, I encountered an error. Please try again."
)

// chatThinkingText is the placeholder shown while a reply is pending.
const chatThinkingText = "Thinking..."

// ChatSender identifies who produced a chat entry.
type ChatSender int

const (
	SenderUser ChatSender = iota
	SenderAssistant
)

// ChatEntry is one message in the conversation transcript.
type ChatEntry struct {
	Sender   ChatSender
	Text     string
	Thinking bool // Placeholder entry awaiting the real reply.
}

// ChatPanel is the AI assistant conversation. Sending a message
// appends the user's entry plus a thinking placeholder; Resolve
// replaces the placeholder with the reply or a fallback.
type ChatPanel struct {
	Entries []ChatEntry
	waiting bool
}

// Waiting reports whether a reply is pending. Input is disabled while
// waiting so at most one request is in flight.
func (p *ChatPanel) Waiting() bool {
	return p.waiting
}

// Send records the user's message and the thinking placeholder.
// Returns false when a reply is already pending.
func (p *ChatPanel) Send(message string) bool {
	if p.waiting {
		return false
	}
	p.Entries = append(p.Entries,
		ChatEntry{Sender: SenderUser, Text: message},
		ChatEntry{Sender: SenderAssistant, Text: chatThinkingText, Thinking: true},
	)
	p.waiting = true
	return true
}

// FallbackMessage maps a chat request error to the fallback text shown
// as the assistant's reply.
func FallbackMessage(err error) string {
	switch {
	case api.IsTimeout(err):
		return ChatFallbackTimeout
	case api.IsRateLimited(err):
		return ChatFallbackBusy
	default:
		return ChatFallbackGeneric
	}
}

// Resolve replaces the thinking placeholder with the assistant's
// reply, or with the fallback for err when the request failed.
func (p *ChatPanel) Resolve(reply string, err error) {
	text := reply
	if err != nil {
		text = FallbackMessage(err)
	}
	for index := len(p.Entries) - 1; index >= 0; index-- {
		if p.Entries[index].Thinking {
			p.Entries[index] = ChatEntry{Sender: SenderAssistant, Text: text}
			break
		}
	}
	p.waiting = false
}

// Render draws the transcript. Assistant replies render through the
// markdown pipeline; user messages are plain.
func (p *ChatPanel) Render(theme tui.Theme, width int) string {
	if len(p.Entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.FaintText)
		return empty.Render("Ask the assistant anything about campus IT — printers, Wi-Fi, accounts.")
	}

	userLabel := lipgloss.NewStyle().Foreground(theme.HotAccentPut).Bold(true)
	assistantLabel := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	thinking := lipgloss.NewStyle().Foreground(theme.FaintText).Italic(true)

	var b strings.Builder
	for _, entry := range p.Entries {
		switch {
		case entry.Sender == SenderUser:
			b.WriteString(userLabel.Render("You: "))
			b.WriteString(entry.Text)
		case entry.Thinking:
			b.WriteString(assistantLabel.Render("Assistant: "))
			b.WriteString(thinking.Render(entry.Text))
		default:
			b.WriteString(assistantLabel.Render("Assistant:"))
			b.WriteString("\n")
			b.WriteString(renderTerminalMarkdown(entry.Text, theme, width))
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
