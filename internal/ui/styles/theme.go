// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Mode is "dark" or "light".
	Mode string

	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Raw palette, for components that mix their own styles
	Palette Palette

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderModel lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar          lipgloss.Style
	SidebarTitle     lipgloss.Style
	FolderItem       lipgloss.Style
	FolderSelected   lipgloss.Style
	ChatItem         lipgloss.Style
	ChatItemSelected lipgloss.Style
	SearchBox        lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble  lipgloss.Style
	AIBubble    lipgloss.Style
	ErrorBubble lipgloss.Style
	Timestamp   lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeLogo      lipgloss.Style
	WelcomeTitle     lipgloss.Style
	WelcomeDesc      lipgloss.Style
	CategoryTab      lipgloss.Style
	CategorySelected lipgloss.Style
	TemplateCard     lipgloss.Style
	TemplateTitle    lipgloss.Style
	TemplatePrompt   lipgloss.Style

	// ==========================================================================
	// STATUS AND ERROR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorBar     lipgloss.Style
	WarningBar   lipgloss.Style
	Spinner      lipgloss.Style
}

// NewTheme creates a theme for the given mode ("dark" or "light").
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		Mode:         mode,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Palette:      PaletteFor(mode),
	}

	t.initStyles()
	return t
}

// Toggled returns a theme for the opposite mode.
func (t *Theme) Toggled() *Theme {
	if t.Mode == "light" {
		return NewTheme("dark")
	}
	return NewTheme("light")
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	p := t.Palette

	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	t.HeaderModel = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextSecondary)

	t.FolderItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	t.FolderSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.ChatItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	t.ChatItemSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Accent)

	t.SearchBox = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.AccentAlt).
		Padding(0, 2).
		MarginLeft(4)

	t.AIBubble = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(p.Error).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(0, 2).
		MarginRight(4)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	// Welcome screen
	t.WelcomeLogo = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.WelcomeTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	t.WelcomeDesc = lipgloss.NewStyle().
		Foreground(p.TextSecondary)

	t.CategoryTab = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.CategorySelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Accent).
		Padding(0, 1)

	t.TemplateCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1).
		MarginRight(1)

	t.TemplateTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextPrimary)

	t.TemplatePrompt = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Status and errors
	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.AccentAlt)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.ErrorBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Error).
		Padding(0, 1)

	t.WarningBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Warning).
		Padding(0, 1)

	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)
}
