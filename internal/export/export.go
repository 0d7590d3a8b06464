// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"path/filepath"

	"chatai/internal/model"
	"chatai/internal/util"
)

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// Exporter renders a chat into a specific output format.
type Exporter interface {
	// Render produces the file contents for a chat.
	Render(chat *model.Chat) ([]byte, error)

	// Ext returns the file extension including the dot.
	Ext() string
}

// ForFormat returns the exporter for a format name ("json" or "markdown").
// Unknown formats fall back to JSON.
func ForFormat(format string) Exporter {
	switch format {
	case "markdown", "md":
		return Markdown{}
	default:
		return JSON{}
	}
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// FileName derives the export file name from a chat title.
// Whitespace runs become single underscores.
func FileName(chat *model.Chat, exporter Exporter) string {
	return util.CollapseWhitespace(chat.Title) + exporter.Ext()
}

// WriteChat renders a chat and writes it under dir, returning the full
// path of the written file.
func WriteChat(chat *model.Chat, exporter Exporter, dir string) (string, error) {
	data, err := exporter.Render(chat)
	if err != nil {
		return "", err
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, FileName(chat, exporter))
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}
