// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"chatai/internal/model"
	"chatai/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer renders chat messages as styled bubbles. Assistant
// messages go through glamour so markdown replies read well in the
// terminal; user and error messages render as plain text.
type MessageRenderer struct {
	theme    *styles.Theme
	width    int
	markdown *glamour.TermRenderer
}

// NewMessageRenderer creates a renderer for the given theme and width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	wrap := width - 12
	if wrap < 20 {
		wrap = 20
	}

	style := "dark"
	if theme.Mode == "light" {
		style = "light"
	}

	// Glamour init can fail on exotic terminals; markdown stays nil and
	// assistant messages fall back to plain text.
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		md = nil
	}

	return &MessageRenderer{
		theme:    theme,
		width:    width,
		markdown: md,
	}
}

// Render draws a single message bubble with its sender label.
func (r *MessageRenderer) Render(msg *model.Message) string {
	t := r.theme

	label := t.Timestamp.Render(msg.Sender.DisplayName() + " · " + msg.Timestamp.Format("15:04"))

	switch {
	case msg.IsError:
		return label + "\n" + t.ErrorBubble.Render(msg.Content)
	case msg.Sender == model.SenderUser:
		return label + "\n" + t.UserBubble.Render(msg.Content)
	default:
		return label + "\n" + t.AIBubble.Render(r.renderMarkdown(msg.Content))
	}
}

// RenderAll draws a conversation transcript.
func (r *MessageRenderer) RenderAll(msgs []*model.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, r.Render(msg))
	}
	return strings.Join(parts, "\n\n")
}

func (r *MessageRenderer) renderMarkdown(content string) string {
	if r.markdown == nil {
		return content
	}
	out, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
