// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"chatai/internal/util"
)

// TitleMaxRunes is the number of leading characters of the first user
// message that become the chat title.
const TitleMaxRunes = 30

// =============================================================================
// CHAT TYPE
// =============================================================================

// Chat holds a single conversation thread.
//
// Title is derived once at creation and never recomputed. Folder is the
// folder the chat was created under; it is not rewritten if the user later
// switches folders. Timestamp is the last-modified time and the sort key for
// the sidebar list.
type Chat struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Folder    string     `json:"folder"`
	Messages  []*Message `json:"messages"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewChat creates a chat with a generated ID, a title derived from the first
// message text, and an empty message list.
func NewChat(firstText, folder string) *Chat {
	return &Chat{
		ID:        uuid.NewString(),
		Title:     DeriveTitle(firstText),
		Folder:    folder,
		Messages:  make([]*Message, 0),
		Timestamp: time.Now(),
	}
}

// DeriveTitle builds a chat title from message text: the first TitleMaxRunes
// characters, with a truncation ellipsis when the text is longer.
func DeriveTitle(text string) string {
	title := util.FirstRunes(text, TitleMaxRunes)
	if len([]rune(text)) > TitleMaxRunes {
		title += "..."
	}
	return title
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the chat and bumps the last-modified time.
// Messages are append-only; a chat is never reordered.
func (c *Chat) Append(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.Timestamp = time.Now()
}

// LastMessage returns the most recent message, or nil if the chat is empty.
func (c *Chat) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Chat) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Chat) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// HISTORY PROJECTION
// =============================================================================

// History is the conversation history shape consumed by the completion
// client: two parallel ordered lists of prior user inputs and prior
// generated responses.
type History struct {
	PastUserInputs     []string `json:"past_user_inputs"`
	GeneratedResponses []string `json:"generated_responses"`
}

// History projects the chat's messages into parallel history lists.
// Error-flagged messages are excluded; they are surfaced failures, not
// model output worth feeding back.
func (c *Chat) History() History {
	h := History{
		PastUserInputs:     make([]string, 0, len(c.Messages)),
		GeneratedResponses: make([]string, 0, len(c.Messages)),
	}
	for _, msg := range c.Messages {
		if msg.IsError {
			continue
		}
		switch msg.Sender {
		case SenderUser:
			h.PastUserInputs = append(h.PastUserInputs, msg.Content)
		case SenderAI:
			h.GeneratedResponses = append(h.GeneratedResponses, msg.Content)
		}
	}
	return h
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a deep copy of the chat.
func (c *Chat) Clone() *Chat {
	clone := &Chat{
		ID:        c.ID,
		Title:     c.Title,
		Folder:    c.Folder,
		Timestamp: c.Timestamp,
		Messages:  make([]*Message, len(c.Messages)),
	}
	for i, msg := range c.Messages {
		msgCopy := *msg
		clone.Messages[i] = &msgCopy
	}
	return clone
}

// Preview returns a short preview of the most recent message, or a default
// for an empty chat.
func (c *Chat) Preview(maxRunes int) string {
	last := c.LastMessage()
	if last == nil {
		return "Empty chat"
	}
	return last.Preview(maxRunes)
}
