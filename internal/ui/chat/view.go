// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chatai/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sidebar := m.renderSidebar()
	main := m.renderMain()

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

// =============================================================================
// PANES
// =============================================================================

func (m Model) renderSidebar() string {
	folders := make([]components.FolderEntry, 0, len(m.cfg.Folders))
	for _, f := range m.cfg.Folders {
		folders = append(folders, components.FolderEntry{Name: f.Name, Color: f.Color})
	}

	sel := m.sidebarSel
	if m.focus != focusSidebar {
		sel = -1
	}

	return components.Sidebar{
		Theme:        m.theme,
		Width:        sidebarWidth,
		Height:       m.height - 2,
		Folders:      folders,
		ActiveFolder: m.store.ActiveFolder(),
		SearchQuery:  m.search.Value(),
		Searching:    m.focus == focusSearch,
		Chats:        m.store.VisibleChats(),
		Selected:     sel,
	}.Render()
}

func (m Model) renderMain() string {
	mainWidth := m.width - sidebarWidth
	if mainWidth < 20 {
		mainWidth = 20
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(mainWidth))
	b.WriteString("\n")

	if chat := m.store.ActiveChat(); chat != nil {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(components.Welcome{
			Theme:        m.theme,
			Width:        mainWidth,
			ActiveFolder: m.store.ActiveFolder(),
			Categories:   m.cfg.Categories,
			Selected:     m.store.Category(),
		}.Render())
	}
	b.WriteString("\n")

	bar := components.ErrorBar{Theme: m.theme, Width: mainWidth - 2}
	if errText := m.store.LastError(); errText != "" {
		b.WriteString(bar.Render(errText))
		b.WriteString("\n")
	} else if !m.cfg.IsAPIKeyConfigured() {
		b.WriteString(bar.RenderWarning("API key missing. Run `chatai setup` or set HUGGINGFACE_API_KEY."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderComposer(mainWidth))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar(mainWidth))

	return lipgloss.NewStyle().Width(mainWidth).Render(b.String())
}

func (m Model) renderHeader(width int) string {
	title := m.theme.HeaderTitle.Render("chatai")
	model := m.theme.HeaderModel.Render(m.store.Model())

	if chat := m.store.ActiveChat(); chat != nil {
		title += m.theme.HeaderModel.Render(" · ") + m.theme.HeaderTitle.Render(chat.Title)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(model) - 4
	if gap < 1 {
		gap = 1
	}

	return m.theme.Header.Width(width - 2).Render(title + strings.Repeat(" ", gap) + model)
}

func (m Model) renderComposer(width int) string {
	if m.store.Loading() {
		return m.theme.InputContainer.Width(width - 2).Render(
			m.spin.View() + m.theme.InputPlaceholder.Render(" Thinking..."))
	}

	if !m.cfg.IsAPIKeyConfigured() {
		return m.theme.InputContainer.Width(width - 2).Render(
			m.theme.InputPlaceholder.Render("Composer disabled until an API key is configured."))
	}

	return m.theme.InputContainer.Width(width - 2).Render(m.composer.View())
}

func (m Model) renderStatusBar(width int) string {
	if m.statusMsg != "" {
		return m.theme.StatusBar.Width(width - 2).Render(m.statusMsg)
	}

	shortcuts := []struct{ k, desc string }{
		{"enter", "send"},
		{"tab", "sidebar"},
		{"ctrl+n", "new"},
		{"ctrl+f", "folder"},
		{"ctrl+e", "export"},
		{"ctrl+t", "theme"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts, m.theme.ShortcutKey.Render(s.k)+m.theme.ShortcutDesc.Render(" "+s.desc))
	}

	return m.theme.StatusBar.Width(width - 2).Render(strings.Join(parts, "  "))
}
