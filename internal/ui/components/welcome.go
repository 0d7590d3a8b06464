// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chatai/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN
// =============================================================================

// Welcome renders the empty state shown before a chat is selected:
// the greeting, the category tabs and the starter prompt cards.
type Welcome struct {
	Theme *styles.Theme
	Width int

	ActiveFolder string
	Categories   []string
	Selected     string
}

// Render draws the welcome screen.
func (w Welcome) Render() string {
	t := w.Theme
	var b strings.Builder

	b.WriteString(t.WelcomeLogo.Render("🟢"))
	b.WriteString("\n\n")
	b.WriteString(t.WelcomeTitle.Render("How can i help you today?"))
	b.WriteString("\n")
	b.WriteString(t.WelcomeDesc.Render("Currently in " + w.ActiveFolder + ". Choose a category below to explore specialized templates."))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(w.Categories))
	for _, cat := range w.Categories {
		if cat == w.Selected {
			tabs = append(tabs, t.CategorySelected.Render(cat))
		} else {
			tabs = append(tabs, t.CategoryTab.Render(cat))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	cards := make([]string, 0, 3)
	cardWidth := (w.Width - 12) / 3
	if cardWidth < 18 {
		cardWidth = 18
	}

	for i, tpl := range TemplatesFor(w.Selected) {
		var card strings.Builder
		card.WriteString(tpl.Icon + " " + t.TemplateTitle.Render(tpl.Title))
		card.WriteString("\n")
		card.WriteString(t.TemplatePrompt.Width(cardWidth - 4).Render(tpl.Prompt))
		card.WriteString("\n")
		card.WriteString(t.ShortcutKey.Render("[" + strconv.Itoa(i+1) + "]"))

		cards = append(cards, t.TemplateCard.Width(cardWidth).Render(card.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	return b.String()
}
