// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"chatai/internal/model"
	"chatai/internal/ui/styles"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// FolderEntry is one selectable folder in the sidebar.
type FolderEntry struct {
	Name  string
	Color string
}

// Sidebar renders the folder list, search box and chat list.
type Sidebar struct {
	Theme  *styles.Theme
	Width  int
	Height int

	Folders      []FolderEntry
	ActiveFolder string

	SearchQuery string
	Searching   bool

	Chats    []*model.Chat
	Selected int
}

// Render draws the sidebar at its configured width.
func (s Sidebar) Render() string {
	t := s.Theme
	var b strings.Builder

	inner := s.Width - 4
	if inner < 8 {
		inner = 8
	}

	b.WriteString(t.SidebarTitle.Render("Folders"))
	b.WriteString("\n")

	for _, f := range s.Folders {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color)).Render("●")
		name := truncate(f.Name, inner-2)
		if f.Name == s.ActiveFolder {
			b.WriteString(dot + " " + t.FolderSelected.Render(name))
		} else {
			b.WriteString(dot + " " + t.FolderItem.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	search := s.SearchQuery
	if search == "" && !s.Searching {
		search = t.InputPlaceholder.Render("Search chats...")
	}
	if s.Searching {
		search += t.InputPrompt.Render("▌")
	}
	b.WriteString(t.SearchBox.Width(inner).Render(search))
	b.WriteString("\n\n")

	b.WriteString(t.SidebarTitle.Render("Chats"))
	b.WriteString("\n")

	if len(s.Chats) == 0 {
		b.WriteString(t.InputPlaceholder.Render("No chats yet"))
		b.WriteString("\n")
	}

	for i, chat := range s.Chats {
		title := truncate(chat.Title, inner)
		if i == s.Selected {
			b.WriteString(t.ChatItemSelected.Render(title))
		} else {
			b.WriteString(t.ChatItem.Render(title))
		}
		b.WriteString("\n")
	}

	body := b.String()
	style := t.Sidebar.Width(s.Width)
	if s.Height > 0 {
		style = style.Height(s.Height)
	}
	return style.Render(body)
}

// truncate cuts s to the given display width, appending an ellipsis.
// Uses display width rather than rune count so CJK titles line up.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
