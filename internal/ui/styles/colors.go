// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatai TUI.
// Colors come in explicit dark and light palettes; the active palette
// follows the persisted theme preference rather than terminal detection,
// so toggling the theme in-app takes effect immediately.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the raw colors for one theme mode.
type Palette struct {
	// Accents
	Accent    lipgloss.Color // brand green
	AccentAlt lipgloss.Color // links, selections

	// Semantic
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Surfaces
	Surface       lipgloss.Color
	SurfaceDim    lipgloss.Color
	SurfaceBright lipgloss.Color
	Overlay       lipgloss.Color

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color
}

// DarkPalette is the default theme.
var DarkPalette = Palette{
	Accent:    lipgloss.Color("#a3e635"),
	AccentAlt: lipgloss.Color("#38bdf8"),

	Error:   lipgloss.Color("#fb7185"),
	Warning: lipgloss.Color("#fbbf24"),
	Success: lipgloss.Color("#34d399"),

	Surface:       lipgloss.Color("#1e1e2e"),
	SurfaceDim:    lipgloss.Color("#181825"),
	SurfaceBright: lipgloss.Color("#313244"),
	Overlay:       lipgloss.Color("#45475a"),

	TextPrimary:   lipgloss.Color("#cdd6f4"),
	TextSecondary: lipgloss.Color("#a6adc8"),
	TextMuted:     lipgloss.Color("#6c7086"),
	TextInverse:   lipgloss.Color("#1e1e2e"),
}

// LightPalette mirrors the dark palette on a white surface.
var LightPalette = Palette{
	Accent:    lipgloss.Color("#65a30d"),
	AccentAlt: lipgloss.Color("#0284c7"),

	Error:   lipgloss.Color("#e11d48"),
	Warning: lipgloss.Color("#d97706"),
	Success: lipgloss.Color("#059669"),

	Surface:       lipgloss.Color("#ffffff"),
	SurfaceDim:    lipgloss.Color("#f5f5f5"),
	SurfaceBright: lipgloss.Color("#fafafa"),
	Overlay:       lipgloss.Color("#e5e5e5"),

	TextPrimary:   lipgloss.Color("#1f2937"),
	TextSecondary: lipgloss.Color("#6b7280"),
	TextMuted:     lipgloss.Color("#9ca3af"),
	TextInverse:   lipgloss.Color("#ffffff"),
}

// PaletteFor returns the palette for a theme mode ("dark" or "light").
func PaletteFor(mode string) Palette {
	if mode == "light" {
		return LightPalette
	}
	return DarkPalette
}
