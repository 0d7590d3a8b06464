// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"
	"time"

	"chatai/internal/model"
)

// Markdown exports the chat as a readable transcript.
type Markdown struct{}

// Render implements Exporter.
func (Markdown) Render(chat *model.Chat) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# " + chat.Title + "\n\n")
	sb.WriteString("Folder: " + chat.Folder + "\n\n")
	sb.WriteString("Updated: " + chat.Timestamp.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, msg := range chat.Messages {
		label := "**" + msg.Sender.DisplayName() + "**"
		if msg.IsError {
			label += " (error)"
		}
		sb.WriteString(label + " (" + msg.Timestamp.Format("15:04") + "):\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}

	return []byte(sb.String()), nil
}

// Ext implements Exporter.
func (Markdown) Ext() string { return ".md" }
