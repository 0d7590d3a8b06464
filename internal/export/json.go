// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"chatai/internal/model"
)

// JSON exports the chat exactly as it is persisted, pretty-printed.
type JSON struct{}

// Render implements Exporter.
func (JSON) Render(chat *model.Chat) ([]byte, error) {
	return json.MarshalIndent(chat, "", "  ")
}

// Ext implements Exporter.
func (JSON) Ext() string { return ".json" }
