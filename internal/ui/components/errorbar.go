// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "chatai/internal/ui/styles"

// =============================================================================
// ERROR BAR
// =============================================================================

// ErrorBar renders the dismissible error banner above the composer.
type ErrorBar struct {
	Theme *styles.Theme
	Width int
}

// Render draws the banner, or an empty string when there is no message.
func (e ErrorBar) Render(message string) string {
	if message == "" {
		return ""
	}
	return e.Theme.ErrorBar.Width(e.Width).Render("⚠ " + message + "  (esc to dismiss)")
}

// RenderWarning draws a warning banner, used for the missing API key hint.
func (e ErrorBar) RenderWarning(message string) string {
	if message == "" {
		return ""
	}
	return e.Theme.WarningBar.Width(e.Width).Render("⚠ " + message)
}
